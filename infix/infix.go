package infix

import (
	"github.com/takoeight0821/calc/token"
)

// Every binary operator gets its precedence and associativity from a Table.
// The parser climbs precedence levels using Binds and NextPrec.

type Assoc int

const (
	Left Assoc = iota
	Right
)

func (a Assoc) String() string {
	if a == Right {
		return "infixr"
	}
	return "infixl"
}

type Fixity struct {
	Prec  int
	Assoc Assoc
}

// UnaryPrec is the binding power of prefix `-` and `+`.
// It sits between the multiplicative operators and `^`, so -2^2 is -(2^2).
const UnaryPrec = 30

type Table struct {
	decls map[token.Kind]Fixity
}

func NewTable() *Table {
	return &Table{decls: make(map[token.Kind]Fixity)}
}

// DefaultTable returns the usual arithmetic fixities.
func DefaultTable() *Table {
	t := NewTable()
	t.Declare(token.PLUS, 10, Left)
	t.Declare(token.MINUS, 10, Left)
	t.Declare(token.MULTIPLY, 20, Left)
	t.Declare(token.DIVIDE, 20, Left)
	t.Declare(token.MODULO, 20, Left)
	t.Declare(token.POWER, 40, Right)
	return t
}

// Declare sets the fixity of op, replacing any earlier declaration.
func (t *Table) Declare(op token.Kind, prec int, assoc Assoc) {
	t.decls[op] = Fixity{Prec: prec, Assoc: assoc}
}

func (t Table) Lookup(op token.Kind) (Fixity, bool) {
	f, ok := t.decls[op]
	return f, ok
}

// Binds reports whether op is a binary operator that binds at least as tightly as minPrec.
func (t Table) Binds(op token.Kind, minPrec int) bool {
	f, ok := t.decls[op]
	return ok && f.Prec >= minPrec
}

// NextPrec returns the minimum precedence for the right operand of an operator with fixity f.
func (t Table) NextPrec(f Fixity) int {
	if f.Assoc == Right {
		return f.Prec
	}
	return f.Prec + 1
}
