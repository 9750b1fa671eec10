package expression

import "github.com/expr-lang/expr/vm"

// Variable is the only free identifier an expression may use.
const Variable = "x"

// Expression is a compiled function of x.
type Expression struct {
	// Source is the text the user typed, used for labels and errors.
	Source string
	// Constant is set when the syntax tree never references Variable;
	// such expressions are evaluated once and broadcast over the domain.
	Constant bool

	program *vm.Program
}
