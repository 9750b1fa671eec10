package render

import (
	"math"

	"github.com/saltydk/fplot/expression"
)

// Series is one sampled expression. Label is the text as the user typed it.
type Series struct {
	Label string
	Y     []float64
}

// Result is the output of a single render pass. It is replaced, never
// merged, by the next pass.
type Result struct {
	Title  string
	XLabel string
	YLabel string
	Legend bool

	// X is the sampling domain shared by every series.
	X      []float64
	Series []Series

	// Blank is the number of blank rows skipped in this pass.
	Blank int
	// Skipped holds expressions dropped when skip-invalid is enabled.
	Skipped []*expression.EvaluationError
}

func (r *Result) Labels() []string {
	labels := make([]string, len(r.Series))
	for i, s := range r.Series {
		labels[i] = s.Label
	}
	return labels
}

// YRange returns the smallest and largest finite y over all series.
// ok is false when there is nothing finite to show.
func (r *Result) YRange() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, s := range r.Series {
		for _, y := range s.Y {
			if math.IsNaN(y) || math.IsInf(y, 0) {
				continue
			}
			if y < min {
				min = y
			}
			if y > max {
				max = y
			}
			ok = true
		}
	}
	return min, max, ok
}
