package compiler

import (
	"strings"
	"unicode/utf8"
)

// keywords maps source text to its keyword TokenType. Anything not listed
// here lexes as an IDENTIFIER.
var keywords = map[string]TokenType{
	"if":     IF,
	"else":   ELSE,
	"and":    AND,
	"or":     OR,
	"not":    NOT,
	"return": RETURN,
	"fn":     FN,
	"let":    LET,
	"True":   BOOL,
	"False":  BOOL,
}

// singleChars maps the one-character tokens to their TokenType.
var singleChars = map[byte]TokenType{
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'=': ASSIGN,
	'>': GREATER,
	'<': LESS,
	';': SEMICOLON,
}

// lexState is the current state of the scanner.
type lexState int

const (
	stateDefault lexState = iota
	stateIdentifier
	stateString
	stateNumber
)

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src    string
	pos    int // index of the next byte to examine
	line   int // current 1-based source line
	state  lexState
	buf    strings.Builder
	hasDot bool // a '.' was seen in the current number
	tokens []Token
}

func newLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *Lexer) emit(tt TokenType, lexeme string) {
	l.tokens = append(l.tokens, Token{Type: tt, Lexeme: lexeme, Line: l.line})
}

// start clears the buffer and enters state s.
func (l *Lexer) start(s lexState) {
	l.buf.Reset()
	l.hasDot = false
	l.state = s
}

// flushIdent classifies the buffered identifier run and returns to Default.
func (l *Lexer) flushIdent() {
	lexeme := l.buf.String()
	tt := IDENTIFIER
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	l.emit(tt, lexeme)
	l.start(stateDefault)
}

// flushNumber classifies the buffered number run and returns to Default.
func (l *Lexer) flushNumber() {
	tt := INTEGER
	if l.hasDot {
		tt = FLOAT
	}
	l.emit(tt, l.buf.String())
	l.start(stateDefault)
}

// stepDefault handles one character in the Default state. It always consumes.
func (l *Lexer) stepDefault(c byte) error {
	switch {
	case c == '\n':
		l.line++
	case c == ' ' || c == '\t' || c == '\r':
	case c == '"':
		l.start(stateString)
	case isAlpha(c) || c == '_':
		l.start(stateIdentifier)
		l.buf.WriteByte(c)
	case isDigit(c):
		l.start(stateNumber)
		l.buf.WriteByte(c)
	default:
		tt, ok := singleChars[c]
		if !ok {
			r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
			return &InvalidCharacterError{Char: r, Line: l.line, Message: "invalid character"}
		}
		l.emit(tt, string(c))
	}
	l.pos++
	return nil
}

// step advances the state machine by one transition. The Identifier and
// Number states leave the terminating character in place so that Default
// examines it next.
func (l *Lexer) step() error {
	c := l.src[l.pos]
	switch l.state {
	case stateIdentifier:
		if isAlpha(c) || isDigit(c) || c == '_' {
			l.buf.WriteByte(c)
			l.pos++
			return nil
		}
		l.flushIdent()
		return nil

	case stateNumber:
		switch {
		case isDigit(c):
			l.buf.WriteByte(c)
			l.pos++
		case c == '.' && !l.hasDot:
			l.hasDot = true
			l.buf.WriteByte(c)
			l.pos++
		case c == '.':
			return &InvalidNumberError{
				Value:   l.buf.String(),
				Line:    l.line,
				Message: "number contains more than one '.'",
			}
		default:
			l.flushNumber()
		}
		return nil

	case stateString:
		if c == '"' {
			l.emit(STRING, l.buf.String())
			l.start(stateDefault)
		} else {
			if c == '\n' {
				l.line++
			}
			l.buf.WriteByte(c)
		}
		l.pos++
		return nil
	}
	return l.stepDefault(c)
}

// finish handles end of input: pending runs are flushed, an open string is
// an error, and the EOF token is appended.
func (l *Lexer) finish() error {
	switch l.state {
	case stateIdentifier:
		l.flushIdent()
	case stateNumber:
		l.flushNumber()
	case stateString:
		return &UnterminatedStringError{Line: l.line, Message: "unterminated string literal"}
	}
	l.emit(EOF, "")
	return nil
}

// Lex tokenises src and returns all tokens including the final EOF token.
// It stops at the first error and returns no tokens in that case; the error
// is always one of *InvalidCharacterError, *UnterminatedStringError or
// *InvalidNumberError.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	for l.pos < len(l.src) {
		if err := l.step(); err != nil {
			return nil, err
		}
	}
	if err := l.finish(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}
