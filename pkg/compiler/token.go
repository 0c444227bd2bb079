package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	IDENTIFIER // variable name
	INTEGER    // decimal integer literal
	FLOAT      // decimal literal with a single '.'
	STRING     // string literal "..."
	BOOL       // True / False

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Punctuation
	SEMICOLON // ;

	// Operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	ASSIGN  // =
	GREATER // >
	LESS    // <

	// Keywords
	IF     // "if"
	ELSE   // "else"
	FN     // "fn"
	LET    // "let"
	AND    // "and"
	OR     // "or"
	NOT    // "not"
	RETURN // "return"
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:        "EOF",
	IDENTIFIER: "IDENTIFIER",
	INTEGER:    "INTEGER",
	FLOAT:      "FLOAT",
	STRING:     "STRING",
	BOOL:       "BOOL",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	SEMICOLON:  "SEMICOLON",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
	ASSIGN:     "ASSIGN",
	GREATER:    "GREATER",
	LESS:       "LESS",
	IF:         "IF",
	ELSE:       "ELSE",
	FN:         "FN",
	LET:        "LET",
	AND:        "AND",
	OR:         "OR",
	NOT:        "NOT",
	RETURN:     "RETURN",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // matched text; string contents without the quotes
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}
