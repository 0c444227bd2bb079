package compiler

import "fmt"

// Program is the result of running the whole front end over one source text.
type Program struct {
	Tokens       []Token
	Instructions []Instruction
	Symbols      *SymbolTable
}

// Compile lexes src and generates IR from it. Errors are wrapped with the
// failing stage; the structured lexer and parser errors remain reachable
// through errors.As.
func Compile(src string) (*Program, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, fmt.Errorf("lex error: %w", err)
	}

	instrs, syms, err := Generate(tokens)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return &Program{Tokens: tokens, Instructions: instrs, Symbols: syms}, nil
}
