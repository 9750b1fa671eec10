package render

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltydk/fplot/config"
	"github.com/saltydk/fplot/expression"
)

func TestDefaultDomainSamples(t *testing.T) {
	xs := DefaultDomain.Samples()
	require.Len(t, xs, 4000)
	assert.Equal(t, -20.0, xs[0])
	assert.InDelta(t, 19.99, xs[len(xs)-1], 1e-9)
	assert.Less(t, xs[len(xs)-1], 20.0)
}

func TestDomainLen(t *testing.T) {
	tests := []struct {
		d    Domain
		want int
	}{
		{Domain{XMin: 0, XMax: 1, Step: 0.25}, 4},
		{Domain{XMin: 0, XMax: 1, Step: 0.3}, 4},
		{Domain{XMin: -1, XMax: 1, Step: 2}, 1},
		{Domain{XMin: 0, XMax: 1, Step: 0.1}, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.Len(), "%+v", tt.d)
	}
}

func TestDomainValidate(t *testing.T) {
	assert.NoError(t, DefaultDomain.Validate())
	assert.Error(t, Domain{XMin: 0, XMax: 1, Step: 0}.Validate())
	assert.Error(t, Domain{XMin: 0, XMax: 1, Step: -1}.Validate())
	assert.Error(t, Domain{XMin: 1, XMax: 1, Step: 0.1}.Validate())
	assert.Error(t, Domain{XMin: 0, XMax: 1, Step: math.NaN()}.Validate())
}

func TestRenderConstant(t *testing.T) {
	res, err := New().Render([]string{"5"})
	require.NoError(t, err)
	require.Len(t, res.Series, 1)

	ys := res.Series[0].Y
	require.Len(t, ys, 4000)
	for _, y := range ys {
		assert.Equal(t, 5.0, y)
	}
	assert.Equal(t, "5", res.Series[0].Label)
}

func TestRenderPreservesOrderAndLabels(t *testing.T) {
	in := []string{"x", "x*x", "sin(x)"}

	res, err := New().Render(in)
	require.NoError(t, err)
	assert.Equal(t, in, res.Labels())

	for i, x := range res.X {
		assert.InDelta(t, x, res.Series[0].Y[i], 1e-12)
		assert.InDelta(t, x*x, res.Series[1].Y[i], 1e-9)
		assert.InDelta(t, math.Sin(x), res.Series[2].Y[i], 1e-12)
	}
}

func TestRenderSkipsBlanks(t *testing.T) {
	res, err := New().Render([]string{"x", "  ", "2*x", "", "\t"})
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "2*x"}, res.Labels())
	assert.Equal(t, 3, res.Blank)
}

func TestRenderEmpty(t *testing.T) {
	res, err := New().Render(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Series)
	assert.Len(t, res.X, 4000)
}

func TestRenderAbortsOnFirstError(t *testing.T) {
	_, err := New().Render([]string{"x", "sin(", "undefined_name"})

	var evalErr *expression.EvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, "sin(", evalErr.Expression)
}

func TestRenderSkipInvalid(t *testing.T) {
	r := New()
	r.SkipInvalid = true

	res, err := r.Render([]string{"x", "sin(", "cos(x)", "y"})
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "cos(x)"}, res.Labels())
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, "sin(", res.Skipped[0].Expression)
	assert.Equal(t, "y", res.Skipped[1].Expression)
}

func TestRenderInvalidDomain(t *testing.T) {
	r := New()
	r.Domain.Step = 0

	_, err := r.Render([]string{"x"})
	assert.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Configuration{
		Domain: config.DomainConfig{XMin: 0, XMax: 1, Step: 0.5},
		Figure: config.FigureConfig{Title: "t", XLabel: "a", YLabel: "b", Legend: false},
		Render: config.RenderConfig{SkipInvalid: true},
	}

	r := FromConfig(cfg)
	res, err := r.Render([]string{"x"})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0.5}, res.X)
	assert.Equal(t, "t", res.Title)
	assert.Equal(t, "a", res.XLabel)
	assert.Equal(t, "b", res.YLabel)
	assert.False(t, res.Legend)
	assert.True(t, r.SkipInvalid)
}

func TestResultYRange(t *testing.T) {
	res := &Result{Series: []Series{
		{Y: []float64{1, math.NaN(), 3}},
		{Y: []float64{-2, math.Inf(1)}},
	}}

	lo, hi, ok := res.YRange()
	assert.True(t, ok)
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 3.0, hi)

	_, _, ok = (&Result{}).YRange()
	assert.False(t, ok)
}
