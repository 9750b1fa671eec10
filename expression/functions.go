package expression

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
)

// Names of expr builtins (abs, ceil, floor, round, min, max) are not
// redefined here.
var unary = map[string]func(float64) float64{
	"sin":     math.Sin,
	"cos":     math.Cos,
	"tan":     math.Tan,
	"asin":    math.Asin,
	"acos":    math.Acos,
	"atan":    math.Atan,
	"arcsin":  math.Asin,
	"arccos":  math.Acos,
	"arctan":  math.Atan,
	"sinh":    math.Sinh,
	"cosh":    math.Cosh,
	"tanh":    math.Tanh,
	"arcsinh": math.Asinh,
	"arccosh": math.Acosh,
	"arctanh": math.Atanh,
	"exp":     math.Exp,
	"expm1":   math.Expm1,
	"log":     math.Log,
	"log10":   math.Log10,
	"log2":    math.Log2,
	"log1p":   math.Log1p,
	"sqrt":    math.Sqrt,
	"sign":    sign,
}

var binary = map[string]func(float64, float64) float64{
	"atan2":   math.Atan2,
	"arctan2": math.Atan2,
	"pow":     math.Pow,
	"hypot":   math.Hypot,
	"mod":     mod,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return v
	}
}

// mod is the floored modulo: the result takes the sign of b.
func mod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

func functionOptions() []expr.Option {
	opts := make([]expr.Option, 0, len(unary)+len(binary))

	for name, fn := range unary {
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("%s: expected 1 argument, got %d", name, len(params))
			}

			v, err := toFloat(params[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}

			return fn(v), nil
		}))
	}

	for name, fn := range binary {
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 2 {
				return nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(params))
			}

			a, err := toFloat(params[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}

			b, err := toFloat(params[1])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}

			return fn(a, b), nil
		}))
	}

	return opts
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("non-numeric value %v (%T)", v, v)
	}
}
