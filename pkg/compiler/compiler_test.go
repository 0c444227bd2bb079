package compiler

import (
	"errors"
	"strings"
	"testing"
)

func TestCompile(t *testing.T) {
	src := `
let greeting = "hello";
let n = 6 * 7;
let m = greeting + n;
`
	prog, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if last := prog.Tokens[len(prog.Tokens)-1]; last.Type != EOF || last.Line != 5 {
		t.Errorf("last token: expected EOF on line 5, got %v", last)
	}

	listing := FormatProgram(prog.Instructions)
	want := `   0  %r0 = LOADSTR "hello"
   1  %r1 = ADD %r0, 42
`
	if listing != want {
		t.Errorf("listing mismatch\nexpected:\n%s\ngot:\n%s", want, listing)
	}

	dump := prog.Symbols.String()
	for _, line := range []string{"greeting", "reg %r0", "const 42", "reg %r1"} {
		if !strings.Contains(dump, line) {
			t.Errorf("symbol dump missing %q:\n%s", line, dump)
		}
	}
}

func TestCompileErrorStages(t *testing.T) {
	t.Run("Lex", func(t *testing.T) {
		_, err := Compile(`let s = "open`)
		if err == nil || !strings.HasPrefix(err.Error(), "lex error: ") {
			t.Fatalf("expected lex error, got %v", err)
		}
		var us *UnterminatedStringError
		if !errors.As(err, &us) {
			t.Errorf("expected wrapped *UnterminatedStringError, got %T", errors.Unwrap(err))
		}
	})

	t.Run("Parse", func(t *testing.T) {
		_, err := Compile("let x = y;")
		if err == nil || !strings.HasPrefix(err.Error(), "parse error: ") {
			t.Fatalf("expected parse error, got %v", err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Kind != UndefinedVariable || pe.Name != "y" {
			t.Errorf("expected wrapped undefined-variable error, got %v", err)
		}
	})
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		in   Instruction
		want string
	}{
		{Instruction{Op: LoadString, Dest: 0, Args: []Operand{StrLit("a\"b")}}, `%r0 = LOADSTR "a\"b"`},
		{Instruction{Op: Div, Dest: 3, Args: []Operand{IntConst(-1), RegRef(2)}}, "%r3 = DIV -1, %r2"},
		{Instruction{Op: Print, Dest: NoReg, Args: []Operand{RegRef(1)}}, "PRINT %r1"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestValue(t *testing.T) {
	c := Constant(5)
	if !c.IsConstant() {
		t.Error("Constant(5) is not constant")
	}
	if _, ok := c.Reg(); ok {
		t.Error("Constant(5) reports a register")
	}
	if op := c.Operand(); op != IntConst(5) {
		t.Errorf("operand: expected IntConst(5), got %v", op)
	}

	r := RuntimeReg(4)
	if r.IsConstant() {
		t.Error("RuntimeReg(4) is constant")
	}
	if n, ok := r.Int(); ok || n != 0 {
		t.Errorf("RuntimeReg(4).Int(): got %d, %v", n, ok)
	}
	if op := r.Operand(); op != RegRef(4) {
		t.Errorf("operand: expected RegRef(4), got %v", op)
	}
}
