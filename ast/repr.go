package ast

import (
	"log"

	"github.com/takoeight0821/calc/token"
)

// Repr is a fold over the expression tree.
// Builder rebuilds nodes; Infix renders them.
type Repr[T any] interface {
	Number(tok token.Token, value float64) T
	Unary(op token.Token, operand T) T
	Binary(left T, op token.Token, right T) T
}

// Fold interprets n bottom-up with r.
func Fold[T any](n Node, r Repr[T]) T {
	switch n := n.(type) {
	case *Number:
		return r.Number(n.Token, n.Value)
	case *Unary:
		return r.Unary(n.Op, Fold(n.Operand, r))
	case *Binary:
		left := Fold(n.Left, r)
		right := Fold(n.Right, r)
		return r.Binary(left, n.Op, right)
	default:
		log.Panicf("invalid node %v", n)
	}
	panic("unreachable")
}

type Builder struct{}

var _ Repr[Node] = Builder{}

func (b Builder) Number(tok token.Token, value float64) Node {
	return &Number{Value: value, Token: tok}
}

func (b Builder) Unary(op token.Token, operand Node) Node {
	return &Unary{Op: op, Operand: operand}
}

func (b Builder) Binary(left Node, op token.Token, right Node) Node {
	return &Binary{Left: left, Op: op, Right: right}
}

type infixPrinter struct{}

var _ Repr[string] = infixPrinter{}

func (infixPrinter) Number(_ token.Token, value float64) string {
	return FormatValue(value)
}

func (infixPrinter) Unary(op token.Token, operand string) string {
	return "(" + op.Lexeme + operand + ")"
}

func (infixPrinter) Binary(left string, op token.Token, right string) string {
	return "(" + left + " " + op.Lexeme + " " + right + ")"
}

// Infix renders n as a fully parenthesized infix formula, e.g. `(2 + (3 * 4))`.
func Infix(n Node) string {
	return Fold[string](n, infixPrinter{})
}
