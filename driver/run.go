package driver

import (
	"fmt"

	"github.com/takoeight0821/calc/ast"
	"github.com/takoeight0821/calc/eval"
	"github.com/takoeight0821/calc/lexer"
	"github.com/takoeight0821/calc/parser"
)

// Runner drives a formula through the lexer, the parser and the evaluator.
// A Runner only holds options; every call builds its own tokens and tree,
// so one Runner may be shared between goroutines.
type Runner struct {
	parserOpts []parser.Option
}

func NewRunner(opts ...parser.Option) *Runner {
	return &Runner{parserOpts: opts}
}

// Parse lexes and parses source.
func (r *Runner) Parse(source string) (ast.Node, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}

	node, err := parser.NewParser(tokens, r.parserOpts...).ParseExpr()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return node, nil
}

// Evaluate computes the value of source.
// The error wraps a *lexer.LexError, *parser.ParseError or *eval.EvalError.
func (r *Runner) Evaluate(source string) (float64, error) {
	node, err := r.Parse(source)
	if err != nil {
		return 0, err
	}

	v, err := eval.NewEvaluator().Eval(node)
	if err != nil {
		return 0, fmt.Errorf("eval: %w", err)
	}

	return v, nil
}

// Evaluate computes the value of formula with the default parser options.
func Evaluate(formula string) (float64, error) {
	return NewRunner().Evaluate(formula)
}
