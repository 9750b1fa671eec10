// Package figure turns a render.Result into an image: PNG through the gg
// software canvas, SVG through go-chart.
package figure

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/saltydk/fplot/config"
	"github.com/saltydk/fplot/logger"
	"github.com/saltydk/fplot/render"
)

var log = logger.GetLogger("figure")

// Palette is the series colour cycle (matplotlib tab10).
var Palette = []string{
	"1f77b4", "ff7f0e", "2ca02c", "d62728", "9467bd",
	"8c564b", "e377c2", "7f7f7f", "bcbd22", "17becf",
}

type Options struct {
	Width  int
	Height int
}

var DefaultOptions = Options{Width: 960, Height: 720}

func FromConfig(cfg *config.Configuration) Options {
	return Options{Width: cfg.Figure.Width, Height: cfg.Figure.Height}
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultOptions.Height
	}
	return o
}

func color(i int) string {
	return Palette[i%len(Palette)]
}

// bounds is the data window shown on the axes.
type bounds struct {
	xMin, xMax float64
	yMin, yMax float64
}

func boundsOf(res *render.Result) bounds {
	b := bounds{xMin: -1, xMax: 1, yMin: -1, yMax: 1}
	if n := len(res.X); n > 0 {
		b.xMin, b.xMax = res.X[0], res.X[n-1]
		if b.xMax == b.xMin {
			b.xMin, b.xMax = b.xMin-1, b.xMax+1
		}
	}

	lo, hi, ok := res.YRange()
	switch {
	case !ok:
	case hi == lo:
		b.yMin, b.yMax = lo-1, hi+1
	default:
		pad := (hi - lo) * 0.05
		b.yMin, b.yMax = lo-pad, hi+pad
	}

	return b
}

// ticks returns round tick positions covering [lo, hi], about n of them.
func ticks(lo, hi float64, n int) []float64 {
	if !(hi > lo) || n < 1 {
		return nil
	}

	step := niceStep((hi - lo) / float64(n))
	out := make([]float64, 0, n+2)
	for v := math.Ceil(lo/step) * step; v <= hi+step*1e-9; v += step {
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)

	switch f := raw / base; {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// Write encodes the figure in the format named by ext (".png" or ".svg").
func Write(w io.Writer, ext string, res *render.Result, opts Options) error {
	switch strings.ToLower(ext) {
	case ".png":
		return WritePNG(w, res, opts)
	case ".svg":
		return WriteSVG(w, res, opts)
	default:
		return errors.Errorf("unsupported figure format %q", ext)
	}
}

// WriteFile writes the figure to path, choosing the format by extension.
func WriteFile(path string, res *render.Result, opts Options) (err error) {
	ext := filepath.Ext(path)
	if ext != ".png" && ext != ".svg" {
		return errors.Errorf("unsupported figure format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %q", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %q", path)
		}
	}()

	if err := Write(f, ext, res, opts); err != nil {
		return err
	}

	log.Debugf("Wrote %d series to %s", len(res.Series), path)
	return nil
}
