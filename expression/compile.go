package expression

import (
	"errors"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

var errBlank = errors.New("blank expression")

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func newEnv() map[string]any {
	env := make(map[string]any, len(constants)+1)
	for name, v := range constants {
		env[name] = v
	}
	env[Variable] = 0.0

	return env
}

// Compile parses and type-checks source against the plotting environment.
// Syntax errors and unknown identifiers fail here as *EvaluationError.
func Compile(source string) (*Expression, error) {
	if IsBlank(source) {
		return nil, evalError(source, errBlank)
	}

	opts := append([]expr.Option{expr.Env(newEnv()), expr.Patch(modPatcher{})}, functionOptions()...)
	program, err := expr.Compile(source, opts...)
	if err != nil {
		return nil, evalError(source, err)
	}

	constant, err := isConstant(source)
	if err != nil {
		return nil, evalError(source, err)
	}

	return &Expression{
		Source:   source,
		Constant: constant,
		program:  program,
	}, nil
}

// CompileAll compiles every expression in order, stopping at the first failure.
func CompileAll(sources []string) ([]*Expression, error) {
	exps := make([]*Expression, 0, len(sources))
	for _, source := range sources {
		exp, err := Compile(source)
		if err != nil {
			return nil, err
		}
		exps = append(exps, exp)
	}

	return exps, nil
}

// modPatcher rewrites a % b into mod(a, b) so the operator works on floats.
type modPatcher struct{}

func (modPatcher) Visit(node *ast.Node) {
	if b, ok := (*node).(*ast.BinaryNode); ok && b.Operator == "%" {
		ast.Patch(node, &ast.CallNode{
			Callee:    &ast.IdentifierNode{Value: "mod"},
			Arguments: []ast.Node{b.Left, b.Right},
		})
	}
}

type variableFinder struct {
	found bool
}

func (v *variableFinder) Visit(node *ast.Node) {
	if id, ok := (*node).(*ast.IdentifierNode); ok && id.Value == Variable {
		v.found = true
	}
}

// isConstant reports whether the syntax tree of source never mentions x.
func isConstant(source string) (bool, error) {
	tree, err := parser.Parse(source)
	if err != nil {
		return false, err
	}

	finder := &variableFinder{}
	ast.Walk(&tree.Node, finder)

	return !finder.found, nil
}
