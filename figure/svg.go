package figure

import (
	"io"
	"math"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/saltydk/fplot/render"
)

// WriteSVG renders the figure as SVG through go-chart. NaN samples are
// dropped, so gaps are bridged by a straight segment. Without series only
// the empty axes are drawn.
func WriteSVG(w io.Writer, res *render.Result, opts Options) error {
	opts = opts.withDefaults()
	b := boundsOf(res)

	series := make([]chart.Series, 0, len(res.Series))
	for i, s := range res.Series {
		xs, ys := finite(res.X, s.Y)
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex(color(i)),
				StrokeWidth: lineWidth,
			},
		})
	}

	if len(series) == 0 {
		// go-chart refuses to render without a visible series
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{b.xMin, b.xMax},
			YValues: []float64{b.yMin, b.yMin},
			Style:   chart.Style{StrokeColor: drawing.ColorTransparent},
		})
	}

	graph := chart.Chart{
		Title:  res.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  res.XLabel,
			Range: &chart.ContinuousRange{Min: b.xMin, Max: b.xMax},
		},
		YAxis: chart.YAxis{
			Name:  res.YLabel,
			Range: &chart.ContinuousRange{Min: b.yMin, Max: b.yMax},
		},
		Series: series,
	}
	if res.Legend && len(res.Series) > 0 {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	return errors.Wrap(graph.Render(chart.SVG, w), "render svg")
}

func finite(xs, ys []float64) ([]float64, []float64) {
	outX := make([]float64, 0, len(ys))
	outY := make([]float64, 0, len(ys))
	for i, y := range ys {
		if i >= len(xs) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, y)
	}
	return outX, outY
}
