package ir

import (
	"fmt"
	"strings"

	"github.com/minic-lang/minic/compiler/types"
)

// BinOp is a binary opcode.
type BinOp string

const (
	OpAdd BinOp = "add"
	OpSub BinOp = "sub"
	OpMul BinOp = "mul"
	OpDiv BinOp = "div"
	OpMod BinOp = "mod"
	OpEq  BinOp = "eq"
	OpNe  BinOp = "ne"
	OpLt  BinOp = "lt"
	OpLe  BinOp = "le"
	OpGt  BinOp = "gt"
	OpGe  BinOp = "ge"
)

// UnOp is a unary opcode. NEG is the only one MiniC has.
type UnOp string

const OpNeg UnOp = "neg"

// BranchKind distinguishes the three branch shapes a Branch instruction
// can take.
type BranchKind int

const (
	BranchBT BranchKind = iota // branch-if-true, single target
	BranchBF                   // branch-if-false, single target
	BranchBC                   // branch-conditional, two targets
)

// Instruction is an ordered element of a function's linear IR.
type Instruction interface {
	String() string
}

// Label is a unique named point in the linear IR. Every Label
// appearing as a branch/goto target must be emitted exactly once in
// its Function's instruction sequence.
type Label struct {
	Name string
}

func (l *Label) String() string { return l.Name + ":" }

// Entry marks the start of a function's code.
type Entry struct{}

func (Entry) String() string { return "entry" }

// Exit marks the end of a function's code. Value is nil for a void
// function.
type Exit struct {
	Value Value
}

func (e Exit) String() string {
	if e.Value == nil {
		return "exit"
	}
	return "exit " + e.Value.IRName()
}

// Move copies Src into Dst. Move does not "produce" a result the way
// Binary/Unary/FuncCall do, but it implements Value (delegating to
// Dst) so that node.Val can reference it directly the way an
// assignment expression's value is its destination.
type Move struct {
	Dst Value
	Src Value
}

func (m Move) Type() *types.Type { return m.Dst.Type() }
func (m Move) IRName() string    { return m.Dst.IRName() }

func (m Move) String() string {
	return fmt.Sprintf("%s = %s", m.Dst.IRName(), m.Src.IRName())
}

// Binary is a two-operand arithmetic or relational instruction. It is
// itself a Value: its result is the instruction.
type Binary struct {
	name string
	Op   BinOp
	L, R Value
	Typ  *types.Type
}

// NewBinary constructs a Binary instruction with the given result IR
// name. Callers (the module, which owns name allocation) pick the name.
func NewBinary(name string, op BinOp, l, r Value, typ *types.Type) *Binary {
	return &Binary{name: name, Op: op, L: l, R: r, Typ: typ}
}

func (b *Binary) Type() *types.Type { return b.Typ }
func (b *Binary) IRName() string    { return b.name }
func (b *Binary) String() string {
	return fmt.Sprintf("%s = %s %s %s", b.name, b.L.IRName(), string(b.Op), b.R.IRName())
}

// Unary is a one-operand instruction (NEG). It is itself a Value.
type Unary struct {
	name string
	Op   UnOp
	X    Value
	Typ  *types.Type
}

// NewUnary constructs a Unary instruction with the given result IR name.
func NewUnary(name string, op UnOp, x Value, typ *types.Type) *Unary {
	return &Unary{name: name, Op: op, X: x, Typ: typ}
}

func (u *Unary) Type() *types.Type { return u.Typ }
func (u *Unary) IRName() string    { return u.name }
func (u *Unary) String() string {
	return fmt.Sprintf("%s = %s %s", u.name, string(u.Op), u.X.IRName())
}

// Branch is a conditional jump. For BT/BF, Target is the single
// destination and True/False are nil. For BC, True and False are both
// set and Target is nil.
type Branch struct {
	Kind        BranchKind
	Cond        Value
	Target      *Label
	True, False *Label
}

func (b Branch) String() string {
	switch b.Kind {
	case BranchBT:
		return fmt.Sprintf("bt %s, %s", b.Cond.IRName(), b.Target.Name)
	case BranchBF:
		return fmt.Sprintf("bf %s, %s", b.Cond.IRName(), b.Target.Name)
	case BranchBC:
		return fmt.Sprintf("bc %s, %s, %s", b.Cond.IRName(), b.True.Name, b.False.Name)
	default:
		return "bad-branch"
	}
}

// Goto is an unconditional jump.
type Goto struct {
	Target *Label
}

func (g Goto) String() string { return "goto " + g.Target.Name }

// FuncCall is a call instruction. It is itself a Value when Typ is
// non-void; callers that ignore a void call's (nonexistent) value
// simply never reference it as an operand.
type FuncCall struct {
	name   string
	Callee *Function
	Args   []Value
	Typ    *types.Type
}

// NewFuncCall constructs a FuncCall instruction with the given result
// IR name; name is unused when typ is void.
func NewFuncCall(name string, callee *Function, args []Value, typ *types.Type) *FuncCall {
	return &FuncCall{name: name, Callee: callee, Args: args, Typ: typ}
}

func (c *FuncCall) Type() *types.Type { return c.Typ }
func (c *FuncCall) IRName() string    { return c.name }
func (c *FuncCall) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.IRName()
	}

	call := fmt.Sprintf("%s(%s)", c.Callee.Name, strings.Join(args, ", "))

	if c.Typ.IsVoid() {
		return call
	}

	return fmt.Sprintf("%s = %s %s", c.name, c.Typ.String(), call)
}
