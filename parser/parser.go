package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/takoeight0821/calc/ast"
	"github.com/takoeight0821/calc/infix"
	"github.com/takoeight0821/calc/token"
)

// DefaultMaxDepth bounds the nesting of parentheses, prefix operators and
// right-associative operator chains, i.e. the recursion depth of the parser.
const DefaultMaxDepth = 256

// DefaultMaxHeight bounds the height of the tree, which also grows with long
// left-associative chains such as 1+1+...+1.
const DefaultMaxHeight = 100000

type Parser struct {
	tokens    []token.Token
	current   int
	err       error
	table     *infix.Table
	maxDepth  int
	maxHeight int
	depth     int
	builder   ast.Builder
}

type Option func(*Parser)

// WithTable replaces the operator fixities.
func WithTable(table *infix.Table) Option {
	return func(p *Parser) {
		p.table = table
	}
}

// WithMaxDepth limits the nesting depth. Zero disables the limit.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// WithMaxHeight limits the number of nodes on the longest path of the tree.
// Zero disables the limit.
func WithMaxHeight(n int) Option {
	return func(p *Parser) {
		p.maxHeight = n
	}
}

// NewParser creates a parser over tokens, which must end with an EOF token as produced by lexer.Lex.
func NewParser(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens:    tokens,
		table:     infix.DefaultTable(),
		maxDepth:  DefaultMaxDepth,
		maxHeight: DefaultMaxHeight,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is a shorthand for NewParser(tokens, opts...).ParseExpr().
func Parse(tokens []token.Token, opts ...Option) (ast.Node, error) {
	return NewParser(tokens, opts...).ParseExpr()
}

// ParseExpr parses the whole token sequence as one expression.
// Parsing stops at the first error; no partial tree is returned.
// Each call starts again from the first token.
func (p *Parser) ParseExpr() (ast.Node, error) {
	p.err = nil
	p.current = 0
	p.depth = 0
	if len(p.tokens) == 0 || p.IsAtEnd() {
		return nil, &ParseError{Message: "no expression", Offset: p.endOffset()}
	}

	node, _ := p.expr()
	if p.err == nil && !p.IsAtEnd() {
		if tok := p.peek(); tok.Kind == token.RIGHTPAREN {
			p.fail(tok, "unmatched `)`")
		} else {
			p.fail(tok, fmt.Sprintf("unexpected %s after expression", tok.Pretty()))
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	return node, nil
}

// expr = binary(0) ;
func (p *Parser) expr() (ast.Node, int) {
	return p.binary(0)
}

// binary(prec) = unary (OP binary(next(OP)))* ;   where prec(OP) >= prec
//
// Every recursive rule passes through binary, so the depth guard lives here.
// The second result is the height of the returned tree.
func (p *Parser) binary(minPrec int) (ast.Node, int) {
	if !p.enter() {
		return nil, 0
	}
	defer p.leave()

	left, height := p.unary()
	for p.err == nil && p.table.Binds(p.peek().Kind, minPrec) {
		op := p.advance()
		fixity, _ := p.table.Lookup(op.Kind)
		right, rightHeight := p.binary(p.table.NextPrec(fixity))
		if p.err != nil {
			return nil, 0
		}
		height = max(height, rightHeight) + 1
		if !p.checkHeight(op, height) {
			return nil, 0
		}
		left = p.builder.Binary(left, op, right)
	}

	return left, height
}

// unary = ("-" | "+") binary(UnaryPrec) | atom ;
func (p *Parser) unary() (ast.Node, int) {
	if p.match(token.MINUS) || p.match(token.PLUS) {
		op := p.advance()
		operand, height := p.binary(infix.UnaryPrec)
		if p.err != nil {
			return nil, 0
		}
		if !p.checkHeight(op, height+1) {
			return nil, 0
		}

		return p.builder.Unary(op, operand), height + 1
	}

	return p.atom()
}

// atom = NUMBER | "(" expr ")" ;
func (p *Parser) atom() (ast.Node, int) {
	//exhaustive:ignore
	switch tok := p.peek(); tok.Kind {
	case token.NUMBER:
		p.advance()
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				p.fail(tok, fmt.Sprintf("number out of range: %s", tok.Pretty()))
			} else {
				p.fail(tok, fmt.Sprintf("malformed number %s", tok.Pretty()))
			}

			return nil, 0
		}

		return p.builder.Number(tok, value), 1
	case token.LEFTPAREN:
		p.advance()
		expr, height := p.expr()
		if p.err != nil {
			return nil, 0
		}
		if !p.match(token.RIGHTPAREN) {
			if p.IsAtEnd() {
				p.fail(tok, "unmatched `(`")
			} else {
				p.fail(p.peek(), fmt.Sprintf("expected `)`, got %s", p.peek().Pretty()))
			}

			return nil, 0
		}
		p.advance()

		return expr, height
	default:
		p.fail(tok, fmt.Sprintf("expected operand, got %s", tok.Pretty()))

		return nil, 0
	}
}

func (p *Parser) enter() bool {
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		p.fail(p.peek(), fmt.Sprintf("expression nested too deeply (limit %d)", p.maxDepth))

		return false
	}
	p.depth++

	return true
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) checkHeight(op token.Token, height int) bool {
	if p.maxHeight > 0 && height > p.maxHeight {
		p.fail(op, fmt.Sprintf("expression too long (limit %d)", p.maxHeight))

		return false
	}

	return true
}

// fail records the first error only.
func (p *Parser) fail(where token.Token, msg string) {
	if p.err == nil {
		p.err = &ParseError{Message: msg, Offset: where.Offset}
	}
}

func (p Parser) endOffset() int {
	if len(p.tokens) == 0 {
		return 0
	}
	return p.tokens[len(p.tokens)-1].Offset
}

func (p Parser) peek() token.Token {
	if p.current >= len(p.tokens) {
		return token.Token{Kind: token.EOF, Offset: p.endOffset()}
	}
	return p.tokens[p.current]
}

func (p *Parser) advance() token.Token {
	if !p.IsAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p Parser) IsAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p Parser) match(kind token.Kind) bool {
	if p.IsAtEnd() {
		return false
	}

	return p.peek().Kind == kind
}

// ParseError reports a structurally invalid formula.
type ParseError struct {
	Message string
	Offset  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
}
