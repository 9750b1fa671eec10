package render

import (
	"math"

	"github.com/pkg/errors"
)

// Domain is the half-open sampling range [XMin, XMax) stepped by Step.
type Domain struct {
	XMin float64
	XMax float64
	Step float64
}

var DefaultDomain = Domain{XMin: -20, XMax: 20, Step: 0.01}

func (d Domain) Validate() error {
	if !(d.Step > 0) || math.IsInf(d.Step, 0) {
		return errors.Errorf("step must be a positive number, got %v", d.Step)
	}
	if !(d.XMax > d.XMin) {
		return errors.Errorf("x_max (%v) must be greater than x_min (%v)", d.XMax, d.XMin)
	}
	return nil
}

// Len is the number of samples, ceil((XMax-XMin)/Step).
func (d Domain) Len() int {
	n := (d.XMax - d.XMin) / d.Step
	// absorb rounding noise such as 40/0.01 = 4000.0000000000005
	return int(math.Ceil(n - 1e-9))
}

// Samples returns x_i = XMin + i*Step for every i in [0, Len()).
func (d Domain) Samples() []float64 {
	xs := make([]float64, d.Len())
	for i := range xs {
		xs[i] = d.XMin + float64(i)*d.Step
	}
	return xs
}
