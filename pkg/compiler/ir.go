package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

// Reg is a virtual register id. Ids are handed out in increasing order and
// never reused within one Generate pass.
type Reg int

// NoReg is the Dest of an instruction that defines no register.
const NoReg Reg = -1

func (r Reg) String() string {
	if r == NoReg {
		return "_"
	}
	return "%r" + strconv.Itoa(int(r))
}

// Operand is one argument of an Instruction: IntConst, RegRef or StrLit.
type Operand interface {
	operand()
	String() string
}

// IntConst is an immediate signed 64-bit integer.
type IntConst int64

// RegRef reads a register defined by an earlier instruction.
type RegRef Reg

// StrLit is an immediate string.
type StrLit string

func (IntConst) operand() {}
func (RegRef) operand()   {}
func (StrLit) operand()   {}

func (c IntConst) String() string { return strconv.FormatInt(int64(c), 10) }
func (r RegRef) String() string   { return Reg(r).String() }
func (s StrLit) String() string   { return strconv.Quote(string(s)) }

// OpCode is the operation performed by an Instruction.
type OpCode int

const (
	LoadString OpCode = iota
	Add
	Sub
	Mul
	Div
	Print
)

var opNames = [...]string{
	LoadString: "LOADSTR",
	Add:        "ADD",
	Sub:        "SUB",
	Mul:        "MUL",
	Div:        "DIV",
	Print:      "PRINT",
}

func (op OpCode) String() string {
	if int(op) >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("OpCode(%d)", int(op))
}

// Instruction is one three-address IR instruction.
type Instruction struct {
	Op   OpCode
	Dest Reg // NoReg if the instruction defines nothing
	Args []Operand
}

func (in Instruction) String() string {
	var sb strings.Builder
	if in.Dest != NoReg {
		sb.WriteString(in.Dest.String())
		sb.WriteString(" = ")
	}
	sb.WriteString(in.Op.String())
	for i, a := range in.Args {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	return sb.String()
}

// FormatProgram renders instructions one per line, prefixed by their index.
func FormatProgram(instrs []Instruction) string {
	var sb strings.Builder
	for i, in := range instrs {
		fmt.Fprintf(&sb, "%4d  %s\n", i, in)
	}
	return sb.String()
}

// Value is what an expression evaluates to while generating IR: either a
// constant known now, or a register whose content is known only at run time.
// Values are plain data and are copied on assignment.
type Value struct {
	constant bool
	n        int64
	reg      Reg
}

// Constant returns a compile-time constant value.
func Constant(n int64) Value { return Value{constant: true, n: n, reg: NoReg} }

// RuntimeReg returns a value held in register r.
func RuntimeReg(r Reg) Value { return Value{reg: r} }

func (v Value) IsConstant() bool { return v.constant }

// Int returns the constant and true, or 0 and false for a register value.
func (v Value) Int() (int64, bool) { return v.n, v.constant }

// Reg returns the register and true, or NoReg and false for a constant.
func (v Value) Reg() (Reg, bool) {
	if v.constant {
		return NoReg, false
	}
	return v.reg, true
}

// Operand translates v into an instruction argument.
func (v Value) Operand() Operand {
	if v.constant {
		return IntConst(v.n)
	}
	return RegRef(v.reg)
}

func (v Value) String() string {
	if v.constant {
		return fmt.Sprintf("const %d", v.n)
	}
	return "reg " + v.reg.String()
}
