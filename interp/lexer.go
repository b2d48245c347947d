package interp

import (
	"fmt"
	"strings"
)

// Lexer turns one line of the expression language into tokens.
type Lexer struct {
	input string
	pos   int
	ch    byte
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, pos: -1}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	l.pos++
	if l.pos < len(l.input) {
		l.ch = l.input[l.pos]
	} else {
		l.ch = 0
	}
}

func (l *Lexer) peek() byte {
	if l.pos+1 < len(l.input) {
		return l.input[l.pos+1]
	}
	return 0
}

// Next returns the next token. After the input is exhausted it returns
// EOF forever.
func (l *Lexer) Next() (Token, error) {
	for l.ch == ' ' || l.ch == '\t' {
		l.advance()
	}
	col := l.pos

	switch {
	case l.ch == 0:
		return Token{Type: EOF, Col: col}, nil

	case isDigit(l.ch):
		return l.lexNumber(col)

	case l.ch == '"' || l.ch == '\'':
		return l.lexString(col)

	case isIdentStart(l.ch):
		start := l.pos
		for isIdentPart(l.ch) {
			l.advance()
		}
		lit := l.input[start:l.pos]
		if kw, ok := keywords[lit]; ok {
			return Token{Type: kw, Lit: lit, Col: col}, nil
		}
		return Token{Type: IDENT, Lit: lit, Col: col}, nil
	}

	two := func(t TokenType, lit string) (Token, error) {
		l.advance()
		l.advance()
		return Token{Type: t, Lit: lit, Col: col}, nil
	}
	one := func(t TokenType) (Token, error) {
		lit := string(l.ch)
		l.advance()
		return Token{Type: t, Lit: lit, Col: col}, nil
	}

	switch l.ch {
	case '+':
		return one(PLUS)
	case '-':
		return one(MINUS)
	case '*':
		return one(STAR)
	case '/':
		return one(SLASH)
	case '%':
		return one(PERCENT)
	case '(':
		return one(LPAREN)
	case ')':
		return one(RPAREN)
	case '[':
		return one(LBRACKET)
	case ']':
		return one(RBRACKET)
	case ',':
		return one(COMMA)
	case '=':
		if l.peek() == '=' {
			return two(EQ, "==")
		}
		return one(ASSIGN)
	case '!':
		if l.peek() == '=' {
			return two(NEQ, "!=")
		}
		return one(NOT)
	case '<':
		if l.peek() == '=' {
			return two(LTE, "<=")
		}
		return one(LT)
	case '>':
		if l.peek() == '=' {
			return two(GTE, ">=")
		}
		return one(GT)
	case '&':
		if l.peek() == '&' {
			return two(AND, "&&")
		}
	case '|':
		if l.peek() == '|' {
			return two(OR, "||")
		}
	}

	return Token{Type: ILLEGAL, Lit: string(l.ch), Col: col},
		fmt.Errorf("unexpected character %q at column %d", l.ch, col+1)
}

func (l *Lexer) lexNumber(col int) (Token, error) {
	start := l.pos
	isFloat := false
	for isDigit(l.ch) {
		l.advance()
	}
	if l.ch == '.' && isDigit(l.peek()) {
		isFloat = true
		l.advance()
		for isDigit(l.ch) {
			l.advance()
		}
	}
	lit := l.input[start:l.pos]
	if isFloat {
		return Token{Type: FLOAT, Lit: lit, Col: col}, nil
	}
	return Token{Type: INT, Lit: lit, Col: col}, nil
}

func (l *Lexer) lexString(col int) (Token, error) {
	quote := l.ch
	l.advance()
	var b strings.Builder
	for l.ch != 0 && l.ch != quote {
		if l.ch == '\\' {
			l.advance()
			switch l.ch {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\', '"', '\'':
				b.WriteByte(l.ch)
			case 0:
				return Token{}, fmt.Errorf("unterminated string at column %d", col+1)
			default:
				b.WriteByte('\\')
				b.WriteByte(l.ch)
			}
			l.advance()
			continue
		}
		b.WriteByte(l.ch)
		l.advance()
	}
	if l.ch != quote {
		return Token{}, fmt.Errorf("unterminated string at column %d", col+1)
	}
	l.advance()
	return Token{Type: STRING, Lit: b.String(), Col: col}, nil
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentPart(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }
