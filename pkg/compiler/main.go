// Package compiler is the Editron language front end: a state-machine lexer
// and a recursive-descent parser that emits flat three-address IR with
// constant folding and an unbounded virtual register file.
//
// Pipeline: source → Lex → Generate → []Instruction + SymbolTable
package compiler
