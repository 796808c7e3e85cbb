// Package eval computes the value of a parsed formula.
package eval

import (
	"fmt"
	"math"

	"github.com/takoeight0821/calc/ast"
	"github.com/takoeight0821/calc/token"
)

// Evaluator walks an expression tree. It holds no state, so one value may
// evaluate many trees, concurrently or repeatedly.
type Evaluator struct{}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Eval is a shorthand for NewEvaluator().Eval(node).
func Eval(node ast.Node) (float64, error) {
	return NewEvaluator().Eval(node)
}

// Eval returns the value of node. It never returns an infinity or NaN:
// an operation producing one fails with *EvalError at that operator.
func (ev *Evaluator) Eval(node ast.Node) (float64, error) {
	switch n := node.(type) {
	case *ast.Number:
		return n.Value, nil
	case *ast.Unary:
		operand, err := ev.Eval(n.Operand)
		if err != nil {
			return 0, err
		}
		return evalUnary(n.Op, operand)
	case *ast.Binary:
		left, err := ev.Eval(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := ev.Eval(n.Right)
		if err != nil {
			return 0, err
		}
		v, err := evalBinary(n.Op, left, right)
		if err != nil {
			return 0, err
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, evalError(n.Op, "result is not a finite number")
		}
		return v, nil
	case nil:
		return 0, &EvalError{Message: "no expression"}
	default:
		return 0, evalError(node.Base(), fmt.Sprintf("unexpected node: %v", n))
	}
}

func evalUnary(op token.Token, operand float64) (float64, error) {
	//exhaustive:ignore
	switch op.Kind {
	case token.MINUS:
		return -operand, nil
	case token.PLUS:
		return operand, nil
	default:
		return 0, evalError(op, fmt.Sprintf("unexpected prefix operator: %v", op))
	}
}

func evalBinary(op token.Token, left, right float64) (float64, error) {
	//exhaustive:ignore
	switch op.Kind {
	case token.PLUS:
		return left + right, nil
	case token.MINUS:
		return left - right, nil
	case token.MULTIPLY:
		return left * right, nil
	case token.DIVIDE:
		if right == 0 {
			return 0, evalError(op, "division by zero")
		}
		return left / right, nil
	case token.MODULO:
		if right == 0 {
			return 0, evalError(op, "modulo by zero")
		}
		return math.Mod(left, right), nil
	case token.POWER:
		return math.Pow(left, right), nil
	default:
		return 0, evalError(op, fmt.Sprintf("unexpected operator: %v", op))
	}
}

// EvalError reports a failure while computing the value of a well-formed tree.
// Offset points at the operator that failed.
type EvalError struct {
	Message string
	Offset  int
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
}

func evalError(where token.Token, msg string) error {
	return &EvalError{Message: msg, Offset: where.Offset}
}
