package ir

import (
	"strings"

	"github.com/minic-lang/minic/compiler/types"
)

// Function is one function's complete linear IR. It is
// created when FUNC_DEF dispatch begins, populated during traversal,
// and sealed — no further instructions appended — when FUNC_DEF
// dispatch returns.
type Function struct {
	Name       string
	ReturnType *types.Type
	Params     []*FormalParameter

	// InterCode is the ordered instruction sequence.
	InterCode []Instruction

	// ExitLabel is the label return statements jump to; created when
	// the function is opened, emitted once when the body is closed.
	ExitLabel *Label

	// ReturnValue is the local holding the return value, or nil for a
	// void function.
	ReturnValue Value

	// ExistFuncCall records whether this function performs any call.
	ExistFuncCall bool

	// MaxFuncCallArgCnt is the maximum argument count of any call this
	// function performs.
	MaxFuncCallArgCnt int
}

// Add appends one instruction to the function's linear IR. It is the
// only mutator used once a function has been opened, so "no
// instructions follow Exit" is a property of call order, not
// of this method.
func (f *Function) Add(inst Instruction) {
	f.InterCode = append(f.InterCode, inst)
}

// String renders the function as the textual IR form used by dumps
// and tests.
func (f *Function) String() string {
	var b strings.Builder

	b.WriteString("func ")
	b.WriteString(f.Name)
	b.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.IRName())
	}
	b.WriteString(") ")
	b.WriteString(f.ReturnType.String())
	b.WriteString(" {\n")

	for _, inst := range f.InterCode {
		if _, isLabel := inst.(*Label); isLabel {
			b.WriteString(inst.String())
		} else {
			b.WriteString("\t")
			b.WriteString(inst.String())
		}
		b.WriteString("\n")
	}

	b.WriteString("}")

	return b.String()
}
