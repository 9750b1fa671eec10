package expression

import (
	"errors"
	"fmt"
	"math"

	"github.com/expr-lang/expr/vm"
)

var errNoFinite = errors.New("no finite values over the sampling domain")

// Evaluate samples the expression at every x in xs.
// Constant expressions are evaluated once and broadcast to len(xs) values.
// Individual non-finite samples are kept as NaN; a series with no finite
// sample at all is an error.
func (e *Expression) Evaluate(xs []float64) ([]float64, error) {
	env := newEnv()
	ys := make([]float64, len(xs))

	var machine vm.VM

	if e.Constant {
		v, err := e.run(&machine, env)
		if err != nil {
			return nil, err
		}
		for i := range ys {
			ys[i] = v
		}
	} else {
		for i, x := range xs {
			env[Variable] = x

			v, err := e.run(&machine, env)
			if err != nil {
				return nil, err
			}
			ys[i] = v
		}
	}

	finite := 0
	for i, y := range ys {
		if math.IsInf(y, 0) || math.IsNaN(y) {
			ys[i] = math.NaN()
			continue
		}
		finite++
	}

	if finite == 0 && len(ys) > 0 {
		return nil, evalError(e.Source, errNoFinite)
	}

	return ys, nil
}

func (e *Expression) run(machine *vm.VM, env map[string]any) (float64, error) {
	out, err := machine.Run(e.program, env)
	if err != nil {
		return 0, evalError(e.Source, fmt.Errorf("run expression: %w", err))
	}

	if b, ok := out.(bool); ok {
		if b {
			return 1, nil
		}
		return 0, nil
	}

	v, err := toFloat(out)
	if err != nil {
		return 0, evalError(e.Source, fmt.Errorf("type assert expression result: %w", err))
	}

	return v, nil
}
