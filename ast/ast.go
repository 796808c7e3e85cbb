package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/takoeight0821/calc/token"
)

// AST

// Node is one of *Number, *Unary or *Binary.
// The set is closed: consumers switch on the concrete type.
type Node interface {
	fmt.Stringer
	Base() token.Token
	node()
}

// Number is a numeric literal. Value is converted from Token.Lexeme by the parser.
type Number struct {
	Value float64
	Token token.Token
}

func (n Number) String() string {
	return parenthesize("number", text(FormatValue(n.Value))).String()
}

func (n *Number) Base() token.Token {
	return n.Token
}

func (*Number) node() {}

var _ Node = &Number{}

// Unary is a prefix `-` or `+`.
type Unary struct {
	Op      token.Token
	Operand Node
}

func (u Unary) String() string {
	return parenthesize("unary", text(u.Op.Lexeme), u.Operand).String()
}

func (u *Unary) Base() token.Token {
	return u.Op
}

func (*Unary) node() {}

var _ Node = &Unary{}

// Binary always has both children.
type Binary struct {
	Left  Node
	Op    token.Token
	Right Node
}

func (b Binary) String() string {
	return parenthesize("binary", text(b.Op.Lexeme), b.Left, b.Right).String()
}

func (b *Binary) Base() token.Token {
	return b.Op
}

func (*Binary) node() {}

var _ Node = &Binary{}

// FormatValue renders a literal value in its shortest exact form.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type text string

func (t text) String() string {
	return string(t)
}

// parenthesize takes a head string and a variadic number of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is parenthesized and separated by a space.
// If the head string is not empty, it is added at the beginning of the string.
func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	elemsStr := concat(elems).String()
	if head != "" {
		b.WriteString(head)
	}
	if elemsStr != "" {
		if head != "" {
			b.WriteString(" ")
		}
		b.WriteString(elemsStr)
	}
	b.WriteString(")")
	return &b
}

// concat takes a slice of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is separated by a space.
func concat[T fmt.Stringer](elems []T) fmt.Stringer {
	var b strings.Builder
	for i, elem := range elems {
		// ignore empty string
		// e.g. concat({}) == ""
		str := elem.String()
		if str == "" {
			continue
		}
		if i != 0 {
			b.WriteString(" ")
		}
		b.WriteString(str)
	}
	return &b
}
