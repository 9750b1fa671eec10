package figure

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltydk/fplot/render"
)

func sample(t *testing.T, exprs ...string) *render.Result {
	t.Helper()

	r := render.New()
	r.Domain = render.Domain{XMin: -5, XMax: 5, Step: 0.05}

	res, err := r.Render(exprs)
	require.NoError(t, err)
	return res
}

func TestNiceStep(t *testing.T) {
	assert.Equal(t, 1.0, niceStep(0.9))
	assert.Equal(t, 2.0, niceStep(1.5))
	assert.Equal(t, 5.0, niceStep(4))
	assert.Equal(t, 10.0, niceStep(7))
	assert.InDelta(t, 0.05, niceStep(0.04), 1e-12)
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{-20, -15, -10, -5, 0, 5, 10, 15}, ticks(-20, 19.99, 8))
	assert.Nil(t, ticks(1, 1, 5))

	for _, v := range ticks(-1.05, 1.05, 8) {
		assert.GreaterOrEqual(t, v, -1.05)
		assert.LessOrEqual(t, v, 1.05)
	}
}

func TestBoundsOf(t *testing.T) {
	b := boundsOf(sample(t, "5"))
	assert.Equal(t, 4.0, b.yMin)
	assert.Equal(t, 6.0, b.yMax)
	assert.Equal(t, -5.0, b.xMin)

	b = boundsOf(&render.Result{})
	assert.Equal(t, bounds{xMin: -1, xMax: 1, yMin: -1, yMax: 1}, b)

	b = boundsOf(sample(t, "x"))
	assert.Less(t, b.yMin, -5.0)
	assert.Greater(t, b.yMax, 4.9)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, sample(t, "x", "sin(x)", "log(x)"), Options{Width: 320, Height: 240}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestImageWithoutSeries(t *testing.T) {
	img, err := Image(sample(t), Options{Width: 200, Height: 150})
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestDrawTooSmall(t *testing.T) {
	_, err := Draw(sample(t, "x"), Options{Width: 50, Height: 50})
	assert.Error(t, err)
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, sample(t, "x*x", "5"), Options{Width: 400, Height: 300}))
	assert.True(t, strings.Contains(buf.String(), "<svg"))

}

func TestWriteSVGWithoutSeries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, sample(t), DefaultOptions))
	assert.True(t, strings.Contains(buf.String(), "<svg"))

	buf.Reset()
	require.NoError(t, WriteSVG(&buf, sample(t, "", "  "), DefaultOptions))
	assert.True(t, strings.Contains(buf.String(), "<svg"))
}

func TestFinite(t *testing.T) {
	xs, ys := finite([]float64{1, 2, 3, 4}, []float64{1, math.NaN(), math.Inf(1), 4})
	assert.Equal(t, []float64{1, 4}, xs)
	assert.Equal(t, []float64{1, 4}, ys)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	res := sample(t, "x")

	for _, name := range []string{"plot.png", "plot.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(path, res, Options{Width: 300, Height: 200}))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	assert.Error(t, WriteFile(filepath.Join(dir, "plot.gif"), res, DefaultOptions))
	_, err := os.Stat(filepath.Join(dir, "plot.gif"))
	assert.True(t, os.IsNotExist(err))
}
