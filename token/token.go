package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	EOF Kind = iota

	// Literals.
	NUMBER

	// Operators.
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	MODULO
	POWER

	// Grouping.
	LEFTPAREN
	RIGHTPAREN
)

// Token is a single lexical unit of a formula.
// Offset is the byte offset of the first character of Lexeme in the source.
type Token struct {
	Kind   Kind
	Lexeme string
	Offset int
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d}", t.Kind, t.Lexeme, t.Offset)
}

// Pretty returns the token as it should appear in diagnostics.
func (t Token) Pretty() string {
	if t.Kind == EOF {
		return "end of input"
	}
	return "`" + t.Lexeme + "`"
}
