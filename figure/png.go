package figure

import (
	"image"
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/saltydk/fplot/render"
)

const (
	marginLeft   = 72.0
	marginRight  = 24.0
	marginTop    = 56.0
	marginBottom = 56.0
	lineWidth    = 1.5
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func fonts() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// canvas maps data coordinates onto the plot area of a gg context.
type canvas struct {
	dc   *gg.Context
	b    bounds
	x, y float64
	w, h float64
}

func (c *canvas) px(x float64) float64 {
	return c.x + (x-c.b.xMin)/(c.b.xMax-c.b.xMin)*c.w
}

func (c *canvas) py(y float64) float64 {
	return c.y + c.h - (y-c.b.yMin)/(c.b.yMax-c.b.yMin)*c.h
}

// Draw paints the figure onto a new software canvas.
func Draw(res *render.Result, opts Options) (*gg.Context, error) {
	opts = opts.withDefaults()

	src, err := fonts()
	if err != nil {
		return nil, errors.Wrap(err, "load font")
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(gg.White)

	c := &canvas{
		dc: dc,
		b:  boundsOf(res),
		x:  marginLeft,
		y:  marginTop,
		w:  float64(opts.Width) - marginLeft - marginRight,
		h:  float64(opts.Height) - marginTop - marginBottom,
	}
	if c.w <= 0 || c.h <= 0 {
		return nil, errors.Errorf("figure %dx%d is too small", opts.Width, opts.Height)
	}

	small, large := src.Face(11), src.Face(15)

	if err := c.grid(small); err != nil {
		return nil, err
	}

	for i, s := range res.Series {
		if err := c.series(s, res.X, color(i)); err != nil {
			return nil, errors.Wrapf(err, "draw series %q", s.Label)
		}
	}

	dc.SetHexColor("000000")
	dc.SetLineWidth(1)
	dc.DrawRectangle(c.x, c.y, c.w, c.h)
	if err := dc.Stroke(); err != nil {
		return nil, errors.Wrap(err, "draw frame")
	}

	dc.SetFont(large)
	dc.DrawStringAnchored(res.Title, float64(opts.Width)/2, marginTop/2, 0.5, 0.5)

	dc.SetFont(small)
	dc.DrawStringAnchored(res.XLabel, c.x+c.w/2, float64(opts.Height)-12, 0.5, 0)
	dc.DrawStringAnchored(res.YLabel, c.x, c.y-8, 0.5, 0)

	if res.Legend && len(res.Series) > 0 {
		if err := c.legend(res.Labels()); err != nil {
			return nil, err
		}
	}

	return dc, nil
}

func (c *canvas) grid(face text.Face) error {
	dc := c.dc
	dc.SetFont(face)
	dc.SetLineWidth(1)

	for _, v := range ticks(c.b.xMin, c.b.xMax, 8) {
		x := c.px(v)
		dc.SetHexColor("e6e6e6")
		dc.DrawLine(x, c.y, x, c.y+c.h)
		if err := dc.Stroke(); err != nil {
			return errors.Wrap(err, "draw x grid")
		}
		dc.SetHexColor("333333")
		dc.DrawStringAnchored(tickLabel(v), x, c.y+c.h+6, 0.5, 1)
	}

	for _, v := range ticks(c.b.yMin, c.b.yMax, 8) {
		y := c.py(v)
		dc.SetHexColor("e6e6e6")
		dc.DrawLine(c.x, y, c.x+c.w, y)
		if err := dc.Stroke(); err != nil {
			return errors.Wrap(err, "draw y grid")
		}
		dc.SetHexColor("333333")
		dc.DrawStringAnchored(tickLabel(v), c.x-6, y, 1, 0.5)
	}

	// zero axes
	dc.SetHexColor("999999")
	if c.b.xMin < 0 && c.b.xMax > 0 {
		dc.DrawLine(c.px(0), c.y, c.px(0), c.y+c.h)
	}
	if c.b.yMin < 0 && c.b.yMax > 0 {
		dc.DrawLine(c.x, c.py(0), c.x+c.w, c.py(0))
	}
	return errors.Wrap(dc.Stroke(), "draw axes")
}

// series strokes one line, lifting the pen across NaN gaps.
func (c *canvas) series(s render.Series, xs []float64, hex string) error {
	dc := c.dc
	dc.Push()
	defer dc.Pop()

	dc.ClipRect(c.x, c.y, c.w, c.h)
	dc.SetHexColor(hex)
	dc.SetLineWidth(lineWidth)

	// keep far off-screen values within a band the rasterizer handles well
	lo, hi := c.y-c.h, c.y+2*c.h

	pen := false
	for i, y := range s.Y {
		if i >= len(xs) || math.IsNaN(y) {
			pen = false
			continue
		}

		px, py := c.px(xs[i]), math.Max(lo, math.Min(hi, c.py(y)))
		if pen {
			dc.LineTo(px, py)
		} else {
			dc.MoveTo(px, py)
			pen = true
		}
	}

	return dc.Stroke()
}

func (c *canvas) legend(labels []string) error {
	dc := c.dc

	width := 0.0
	for _, label := range labels {
		if w, _ := dc.MeasureString(label); w > width {
			width = w
		}
	}

	const row, swatch, pad = 18.0, 24.0, 8.0
	boxW := pad*3 + swatch + width
	boxH := pad*2 + row*float64(len(labels))
	x0, y0 := c.x+c.w-boxW-pad, c.y+pad

	dc.SetRGBA(1, 1, 1, 0.85)
	dc.DrawRectangle(x0, y0, boxW, boxH)
	if err := dc.Fill(); err != nil {
		return errors.Wrap(err, "draw legend")
	}
	dc.SetHexColor("bbbbbb")
	dc.SetLineWidth(1)
	dc.DrawRectangle(x0, y0, boxW, boxH)
	if err := dc.Stroke(); err != nil {
		return errors.Wrap(err, "draw legend")
	}

	for i, label := range labels {
		y := y0 + pad + row*float64(i) + row/2
		dc.SetHexColor(color(i))
		dc.SetLineWidth(lineWidth * 1.5)
		dc.DrawLine(x0+pad, y, x0+pad+swatch, y)
		if err := dc.Stroke(); err != nil {
			return errors.Wrap(err, "draw legend")
		}
		dc.SetHexColor("000000")
		dc.DrawStringAnchored(label, x0+pad*2+swatch, y, 0, 0.35)
	}

	return nil
}

func tickLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Image renders the figure to an in-memory image.
func Image(res *render.Result, opts Options) (image.Image, error) {
	dc, err := Draw(res, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	return dc.Image(), nil
}

func WritePNG(w io.Writer, res *render.Result, opts Options) error {
	dc, err := Draw(res, opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	return errors.Wrap(dc.EncodePNG(w), "encode png")
}
