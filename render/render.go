package render

import (
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/saltydk/fplot/config"
	"github.com/saltydk/fplot/expression"
	"github.com/saltydk/fplot/logger"
)

var log = logger.GetLogger("render")

// Renderer evaluates expression lists over a fixed domain. It keeps no state
// between calls.
type Renderer struct {
	Domain Domain
	Title  string
	XLabel string
	YLabel string
	Legend bool
	// SkipInvalid drops expressions that fail to evaluate instead of
	// aborting the whole render.
	SkipInvalid bool
}

func New() *Renderer {
	return &Renderer{
		Domain: DefaultDomain,
		Title:  "Function plots",
		XLabel: "x",
		YLabel: "y",
		Legend: true,
	}
}

func FromConfig(cfg *config.Configuration) *Renderer {
	return &Renderer{
		Domain: Domain{
			XMin: cfg.Domain.XMin,
			XMax: cfg.Domain.XMax,
			Step: cfg.Domain.Step,
		},
		Title:       cfg.Figure.Title,
		XLabel:      cfg.Figure.XLabel,
		YLabel:      cfg.Figure.YLabel,
		Legend:      cfg.Figure.Legend,
		SkipInvalid: cfg.Render.SkipInvalid,
	}
}

// Render samples every non-blank expression over the domain, in input order.
// Unless SkipInvalid is set, the first *expression.EvaluationError aborts
// the render and no Result is returned.
func (r *Renderer) Render(expressions []string) (*Result, error) {
	if err := r.Domain.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid domain")
	}

	res := &Result{
		Title:  r.Title,
		XLabel: r.XLabel,
		YLabel: r.YLabel,
		Legend: r.Legend,
		X:      r.Domain.Samples(),
	}

	for _, source := range expressions {
		if expression.IsBlank(source) {
			res.Blank++
			continue
		}

		ys, err := r.sample(source, res.X)
		if err != nil {
			var evalErr *expression.EvaluationError
			if r.SkipInvalid && errors.As(err, &evalErr) {
				log.WithError(err).Warn("Skipping expression")
				res.Skipped = append(res.Skipped, evalErr)
				continue
			}
			return nil, err
		}

		res.Series = append(res.Series, Series{Label: source, Y: ys})
	}

	log.Debugf("Rendered %d series over %s points (%d blank, %d skipped)",
		len(res.Series), humanize.Comma(int64(len(res.X))), res.Blank, len(res.Skipped))

	return res, nil
}

func (r *Renderer) sample(source string, xs []float64) ([]float64, error) {
	exp, err := expression.Compile(source)
	if err != nil {
		return nil, err
	}

	return exp.Evaluate(xs)
}
