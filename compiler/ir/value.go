// Package ir is the IR instruction model: the concrete instruction
// variants and the Value variants they operate on, plus their
// textual dump form.
package ir

import (
	"fmt"

	"github.com/minic-lang/minic/compiler/types"
)

// Value is a polymorphic SSA-like name: an operand or a result.
// Instructions that produce a result (Binary, Unary, FuncCall)
// implement Value themselves, so an instruction can be referenced
// directly as the operand of a later one.
type Value interface {
	Type() *types.Type
	IRName() string
}

// ConstInt is an immutable integer literal.
type ConstInt struct {
	Val int32
}

func (c *ConstInt) Type() *types.Type { return types.Int32() }
func (c *ConstInt) IRName() string    { return fmt.Sprintf("%d", c.Val) }

// LocalVariable is either a user-declared local or a compiler-generated
// temporary, distinguished only by the shape of IRName.
type LocalVariable struct {
	Typ  *types.Type
	Name string // IR name, e.g. "%a" or "%t3"
}

func (l *LocalVariable) Type() *types.Type { return l.Typ }
func (l *LocalVariable) IRName() string    { return l.Name }

// GlobalVariable is a module-scope variable.
type GlobalVariable struct {
	Typ  *types.Type
	Name string
}

func (g *GlobalVariable) Type() *types.Type { return g.Typ }
func (g *GlobalVariable) IRName() string    { return g.Name }

// FormalParameter is one parameter of the enclosing function.
type FormalParameter struct {
	Typ   *types.Type
	Name  string
	Index int
}

func (p *FormalParameter) Type() *types.Type { return p.Typ }
func (p *FormalParameter) IRName() string    { return p.Name }
