package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/takoeight0821/calc/token"
)

// Lex splits source into tokens. The result always ends with an EOF token.
// Lexing stops at the first unrecognized character.
func Lex(source string) ([]token.Token, error) {
	lexer := lexer{
		source:  source,
		tokens:  []token.Token{},
		start:   0,
		current: 0,
	}

	for !lexer.isAtEnd() {
		if err := lexer.scanToken(); err != nil {
			return nil, err
		}
	}

	lexer.tokens = append(lexer.tokens, token.Token{Kind: token.EOF, Lexeme: "", Offset: len(source)})

	return lexer.tokens, nil
}

type lexer struct {
	source string
	tokens []token.Token

	start   int // start of current lexeme
	current int // current position in source
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current:])

	return runeValue
}

func (l *lexer) advance() rune {
	runeValue, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width

	return runeValue
}

func (l *lexer) addToken(kind token.Kind) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: text, Offset: l.start})
}

// LexError reports a character that does not start any token.
type LexError struct {
	Char   rune
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Offset)
}

func (l *lexer) scanToken() error {
	l.start = l.current
	char := l.advance()
	switch char {
	case ' ', '\r', '\t', '\n':
		// ignore whitespace
		return nil
	default:
		if k, ok := getOperator(char); ok {
			l.addToken(k)

			return nil
		}
		if isDigit(char) || char == '.' {
			l.number(char == '.')

			return nil
		}
	}

	return &LexError{Char: char, Offset: l.start}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// number consumes digits and at most one decimal point.
// The lexeme is kept as written; the parser converts it.
func (l *lexer) number(seenDot bool) {
	for {
		c := l.peek()
		switch {
		case isDigit(c):
			l.advance()
		case c == '.' && !seenDot:
			seenDot = true
			l.advance()
		default:
			l.addToken(token.NUMBER)

			return
		}
	}
}

func getOperator(char rune) (token.Kind, bool) {
	operators := map[rune]token.Kind{
		'+': token.PLUS,
		'-': token.MINUS,
		'*': token.MULTIPLY,
		'/': token.DIVIDE,
		'%': token.MODULO,
		'^': token.POWER,
		'(': token.LEFTPAREN,
		')': token.RIGHTPAREN,
	}
	if k, ok := operators[char]; ok {
		return k, true
	}

	return token.EOF, false
}
