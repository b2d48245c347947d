package interp

import "fmt"

// TokenType classifies lexemes of the embedded expression language.
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	INT
	FLOAT
	STRING
	IDENT
	TRUE
	FALSE
	NIL

	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %

	EQ  // ==
	NEQ // !=
	LT  // <
	LTE // <=
	GT  // >
	GTE // >=

	AND // &&
	OR  // ||
	NOT // !

	ASSIGN   // =
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	COMMA    // ,
)

var tokenNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF",
	INT: "INT", FLOAT: "FLOAT", STRING: "STRING", IDENT: "IDENT",
	TRUE: "true", FALSE: "false", NIL: "nil",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%",
	EQ: "==", NEQ: "!=", LT: "<", LTE: "<=", GT: ">", GTE: ">=",
	AND: "&&", OR: "||", NOT: "!",
	ASSIGN: "=", LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]", COMMA: ",",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is one lexeme with its source column for error reporting.
type Token struct {
	Type TokenType
	Lit  string
	Col  int
}

var keywords = map[string]TokenType{
	"true":  TRUE,
	"false": FALSE,
	"nil":   NIL,
}
