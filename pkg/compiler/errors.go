package compiler

import (
	"fmt"
	"strings"
)

// LexError is implemented by every error Lex can return.
type LexError interface {
	error
	LexLine() int
}

// InvalidCharacterError reports a character that starts no token.
type InvalidCharacterError struct {
	Char    rune
	Line    int
	Message string
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Message, e.Char)
}

func (e *InvalidCharacterError) LexLine() int { return e.Line }

// UnterminatedStringError reports end of input inside a string literal.
// Line is the line reached at end of input.
type UnterminatedStringError struct {
	Line    int
	Message string
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func (e *UnterminatedStringError) LexLine() int { return e.Line }

// InvalidNumberError reports a malformed numeric literal. Value holds the text
// accumulated before the offending character.
type InvalidNumberError struct {
	Value   string
	Line    int
	Message string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Message, e.Value)
}

func (e *InvalidNumberError) LexLine() int { return e.Line }

// ParseErrorKind classifies a ParseError.
type ParseErrorKind int

const (
	UnexpectedToken ParseErrorKind = iota
	UndefinedVariable
	DivisionByZero
	InvalidLiteral
)

var parseErrorKindNames = [...]string{
	UnexpectedToken:   "unexpected token",
	UndefinedVariable: "undefined variable",
	DivisionByZero:    "division by zero",
	InvalidLiteral:    "invalid literal",
}

func (k ParseErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(parseErrorKindNames) {
		return parseErrorKindNames[k]
	}
	return fmt.Sprintf("ParseErrorKind(%d)", int(k))
}

// ParseError is returned by the IR generator. Only the fields relevant to
// Kind are set: Expected/Found for UnexpectedToken, Name for UndefinedVariable,
// Lexeme for InvalidLiteral.
type ParseError struct {
	Kind     ParseErrorKind
	Expected []TokenType
	Found    TokenType
	Lexeme   string
	Name     string
	Line     int
	Message  string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		want := make([]string, len(e.Expected))
		for i, tt := range e.Expected {
			want[i] = tt.String()
		}
		return fmt.Sprintf("line %d: expected %s, got %s (%q)", e.Line, strings.Join(want, " or "), e.Found, e.Lexeme)
	case UndefinedVariable:
		return fmt.Sprintf("line %d: undefined variable %q", e.Line, e.Name)
	default:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
}
