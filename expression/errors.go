package expression

import "fmt"

// EvaluationError reports an expression that could not be compiled or
// evaluated over the sampling domain.
type EvaluationError struct {
	Expression string
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluate %q: %v", e.Expression, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

func evalError(source string, err error) *EvaluationError {
	return &EvaluationError{Expression: source, Err: err}
}
