package compiler

import (
	"strconv"
)

// Parser consumes the flat token slice produced by the Lexer and emits IR
// directly, with no intermediate AST.
//
// Grammar:
//
//	program = statement* EOF
//	statement = "let" IDENTIFIER "=" expr ";"
//	          | <any other token, skipped>
//	expr    = term
//	term    = factor (("+" | "-") factor)*
//	factor  = primary (("*" | "/") primary)*
//	primary = INTEGER | STRING | IDENTIFIER
//
// Every reduction yields a Value. Operations on two constants are folded at
// parse time; anything touching a register emits one instruction into a new
// register. String literals are never folded and always emit LOADSTR.
//
// A Parser is not safe for concurrent use. Load resets all per-pass state.
type Parser struct {
	tokens  []Token
	pos     int
	nextReg Reg
	instrs  []Instruction
	syms    *SymbolTable
}

func NewParser(tokens []Token) *Parser {
	p := &Parser{}
	p.Load(tokens)
	return p
}

// Load installs a fresh token stream and clears the cursor, register counter,
// emitted instructions and symbol table.
func (p *Parser) Load(tokens []Token) {
	p.tokens = tokens
	p.pos = 0
	p.nextReg = 0
	p.instrs = nil
	p.syms = NewSymbolTable()
}

// Symbols returns the symbol table populated by the last Generate call.
func (p *Parser) Symbols() *SymbolTable {
	return p.syms
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		line := 0
		if n := len(p.tokens); n > 0 {
			line = p.tokens[n-1].Line
		}
		return Token{Type: EOF, Line: line}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func unexpected(tok Token, want ...TokenType) *ParseError {
	return &ParseError{
		Kind:     UnexpectedToken,
		Expected: want,
		Found:    tok.Type,
		Lexeme:   tok.Lexeme,
		Line:     tok.Line,
	}
}

// expect consumes the current token if it matches tt, otherwise returns an error.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, unexpected(tok, tt)
	}
	return tok, nil
}

// emit appends an instruction defining a freshly minted register and returns
// that register.
func (p *Parser) emit(op OpCode, args ...Operand) Reg {
	r := p.nextReg
	p.nextReg++
	p.instrs = append(p.instrs, Instruction{Op: op, Dest: r, Args: args})
	return r
}

// binary combines two values with op, folding when both are constants.
func (p *Parser) binary(opTok Token, left, right Value) (Value, error) {
	a, lok := left.Int()
	b, rok := right.Int()
	if lok && rok {
		switch opTok.Type {
		case PLUS:
			return Constant(a + b), nil
		case MINUS:
			return Constant(a - b), nil
		case STAR:
			return Constant(a * b), nil
		case SLASH:
			if b == 0 {
				return Value{}, &ParseError{
					Kind:    DivisionByZero,
					Found:   opTok.Type,
					Line:    opTok.Line,
					Message: "division by zero in constant expression",
				}
			}
			return Constant(a / b), nil
		}
	}

	var op OpCode
	switch opTok.Type {
	case PLUS:
		op = Add
	case MINUS:
		op = Sub
	case STAR:
		op = Mul
	case SLASH:
		op = Div
	default:
		return Value{}, unexpected(opTok, PLUS, MINUS, STAR, SLASH)
	}
	return RuntimeReg(p.emit(op, left.Operand(), right.Operand())), nil
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Value, error) {
	return p.parseTerm()
}

// parseTerm handles + and -
func (p *Parser) parseTerm() (Value, error) {
	left, err := p.parseFactor()
	if err != nil {
		return Value{}, err
	}
	for p.peek().Type == PLUS || p.peek().Type == MINUS {
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return Value{}, err
		}
		left, err = p.binary(op, left, right)
		if err != nil {
			return Value{}, err
		}
	}
	return left, nil
}

// parseFactor handles * and /
func (p *Parser) parseFactor() (Value, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return Value{}, err
	}
	for p.peek().Type == STAR || p.peek().Type == SLASH {
		op := p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return Value{}, err
		}
		left, err = p.binary(op, left, right)
		if err != nil {
			return Value{}, err
		}
	}
	return left, nil
}

func (p *Parser) parsePrimary() (Value, error) {
	tok := p.advance()
	switch tok.Type {
	case INTEGER:
		n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return Value{}, &ParseError{
				Kind:    InvalidLiteral,
				Found:   tok.Type,
				Lexeme:  tok.Lexeme,
				Line:    tok.Line,
				Message: "integer literal " + strconv.Quote(tok.Lexeme) + " out of range",
			}
		}
		return Constant(n), nil

	case STRING:
		return RuntimeReg(p.emit(LoadString, StrLit(tok.Lexeme))), nil

	case IDENTIFIER:
		v, ok := p.syms.Lookup(tok.Lexeme)
		if !ok {
			return Value{}, &ParseError{
				Kind:  UndefinedVariable,
				Found: tok.Type,
				Name:  tok.Lexeme,
				Line:  tok.Line,
			}
		}
		return v, nil
	}
	return Value{}, unexpected(tok, INTEGER, STRING, IDENTIFIER)
}

// parseLet handles: let IDENTIFIER = expr ;
// The binding itself emits nothing.
func (p *Parser) parseLet() error {
	if _, err := p.expect(LET); err != nil {
		return err
	}
	name, err := p.expect(IDENTIFIER)
	if err != nil {
		return err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return err
	}
	v, err := p.parseExpression()
	if err != nil {
		return err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return err
	}
	p.syms.Bind(name.Lexeme, v)
	return nil
}

// Generate parses the loaded tokens to the end and returns the emitted IR.
// Tokens that cannot start a statement are skipped without a diagnostic.
// On error no instructions are returned.
func (p *Parser) Generate() ([]Instruction, error) {
	for p.peek().Type != EOF {
		if p.peek().Type != LET {
			p.advance()
			continue
		}
		if err := p.parseLet(); err != nil {
			return nil, err
		}
	}
	return p.instrs, nil
}

// Generate converts a token stream into IR and the symbol table of let
// bindings. All state is local to the call.
func Generate(tokens []Token) ([]Instruction, *SymbolTable, error) {
	p := NewParser(tokens)
	instrs, err := p.Generate()
	if err != nil {
		return nil, nil, err
	}
	return instrs, p.Symbols(), nil
}
