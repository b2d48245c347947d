package interp

import (
	"fmt"
	"strconv"
)

// Binding powers, lowest first.
const (
	precLowest = iota
	precOr
	precAnd
	precEquality
	precCompare
	precSum
	precProduct
	precUnary
	precPostfix
)

var precedences = map[TokenType]int{
	OR:       precOr,
	AND:      precAnd,
	EQ:       precEquality,
	NEQ:      precEquality,
	LT:       precCompare,
	LTE:      precCompare,
	GT:       precCompare,
	GTE:      precCompare,
	PLUS:     precSum,
	MINUS:    precSum,
	STAR:     precProduct,
	SLASH:    precProduct,
	PERCENT:  precProduct,
	LBRACKET: precPostfix,
}

// Parser builds an expression tree by precedence climbing.
type Parser struct {
	lex  *Lexer
	cur  Token
	next Token
}

func NewParser(input string) (*Parser, error) {
	p := &Parser{lex: NewLexer(input)}
	var err error
	if p.cur, err = p.lex.Next(); err != nil {
		return nil, err
	}
	if p.next, err = p.lex.Next(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	var err error
	p.cur = p.next
	p.next, err = p.lex.Next()
	return err
}

func (p *Parser) expect(t TokenType) error {
	if p.cur.Type != t {
		return fmt.Errorf("expected %s, got %q at column %d", t, p.cur.Lit, p.cur.Col+1)
	}
	return p.advance()
}

// ParseStatement parses either an assignment (`name = expr`) or a bare
// expression, and requires the whole input to be consumed.
func ParseStatement(input string) (Node, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}

	var n Node
	if p.cur.Type == IDENT && p.next.Type == ASSIGN {
		name := p.cur.Lit
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		n = Assign{Name: name, X: x}
	} else {
		if n, err = p.parseExpr(precLowest); err != nil {
			return nil, err
		}
	}

	if p.cur.Type != EOF {
		return nil, fmt.Errorf("unexpected %q at column %d", p.cur.Lit, p.cur.Col+1)
	}
	return n, nil
}

func (p *Parser) parseExpr(minPrec int) (Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		prec, ok := precedences[p.cur.Type]
		if !ok || prec <= minPrec {
			return left, nil
		}
		op := p.cur.Type

		if op == LBRACKET {
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseExpr(precLowest)
			if err != nil {
				return nil, err
			}
			if err := p.expect(RBRACKET); err != nil {
				return nil, err
			}
			left = Index{X: left, I: idx}
			continue
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpr(prec)
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, X: left, Y: right}
	}
}

func (p *Parser) parsePrefix() (Node, error) {
	switch p.cur.Type {
	case INT:
		v, err := strconv.ParseInt(p.cur.Lit, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", p.cur.Lit)
		}
		return Literal{Val: v}, p.advance()

	case FLOAT:
		v, err := strconv.ParseFloat(p.cur.Lit, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", p.cur.Lit)
		}
		return Literal{Val: v}, p.advance()

	case STRING:
		v := p.cur.Lit
		return Literal{Val: v}, p.advance()

	case TRUE:
		return Literal{Val: true}, p.advance()

	case FALSE:
		return Literal{Val: false}, p.advance()

	case NIL:
		return Literal{Val: nil}, p.advance()

	case MINUS, NOT:
		op := p.cur.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseExpr(precUnary)
		if err != nil {
			return nil, err
		}
		return Unary{Op: op, X: x}, nil

	case LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		return x, p.expect(RPAREN)

	case LBRACKET:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var elems []Node
		for p.cur.Type != RBRACKET {
			e, err := p.parseExpr(precLowest)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if p.cur.Type == COMMA {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
		return List{Elems: elems}, p.expect(RBRACKET)

	case IDENT:
		name := p.cur.Lit
		if p.next.Type == LPAREN {
			if err := p.advance(); err != nil { // onto (
				return nil, err
			}
			if err := p.advance(); err != nil { // past (
				return nil, err
			}
			var argNodes []Node
			for p.cur.Type != RPAREN {
				a, err := p.parseExpr(precLowest)
				if err != nil {
					return nil, err
				}
				argNodes = append(argNodes, a)
				if p.cur.Type == COMMA {
					if err := p.advance(); err != nil {
						return nil, err
					}
					continue
				}
				break
			}
			return Call{Name: name, Args: argNodes}, p.expect(RPAREN)
		}
		return Ident{Name: name}, p.advance()

	default:
		return nil, fmt.Errorf("unexpected %q at column %d", p.cur.Lit, p.cur.Col+1)
	}
}
