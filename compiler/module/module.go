// Package module is the process-wide-per-translation-unit symbol
// environment: the registry of declared functions, the
// stack of lexical scopes, the integer constant pool, the
// "current function" slot, and the counters that name locals and
// temporaries.
package module

import (
	"fmt"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/minic-lang/minic/compiler/ir"
	"github.com/minic-lang/minic/compiler/types"
)

// scope is one lexical environment frame: identifier -> Value.
// Introduced by a block or a function definition.
type scope struct {
	vars map[string]ir.Value
}

func newScope() *scope {
	return &scope{vars: make(map[string]ir.Value)}
}

// Module is the sole mutable authority for function registration, the
// scope stack, and the constant pool; every mutation happens on the
// single traversal thread.
type Module struct {
	funcs   map[string]*ir.Function
	order   []*ir.Function
	scopes  []*scope
	consts  map[int32]*ir.ConstInt
	globals []*ir.GlobalVariable
	current *ir.Function

	tempCount  int
	labelCount int
}

// New returns an empty Module with one enclosing (file) scope already
// pushed, matching the invariant that the scope stack is never empty
// while translation is in progress.
func New() *Module {
	return &Module{
		funcs:  make(map[string]*ir.Function),
		consts: make(map[int32]*ir.ConstInt),
		scopes: []*scope{newScope()},
	}
}

// Functions returns the declared functions in declaration order.
func (m *Module) Functions() []*ir.Function { return m.order }

// Globals returns the declared top-level variables in declaration order.
func (m *Module) Globals() []*ir.GlobalVariable { return m.globals }

// CurrentFunction returns the function currently being translated, or
// nil when translating a top-level item.
func (m *Module) CurrentFunction() *ir.Function { return m.current }

// SetCurrentFunction sets or clears (with nil) the function currently
// being translated. irCompileUnit calls this with nil before it
// processes the top-level items, and irFuncDef calls it with nil when
// it returns.
func (m *Module) SetCurrentFunction(f *ir.Function) {
	m.current = f
}

// NewFunction registers a new function. It fails with
// DuplicateFunctionError if the name is already taken.
func (m *Module) NewFunction(name string, retType *types.Type) (*ir.Function, error) {
	if _, ok := m.funcs[name]; ok {
		err := &DuplicateFunctionError{Name: name}
		tlog.Printw("semantic error", "err", err, "from", loc.Caller(1), "", tlog.Error)
		return nil, err
	}

	f := &ir.Function{Name: name, ReturnType: retType}
	m.funcs[name] = f
	m.order = append(m.order, f)

	tlog.V("module").Printw("new function", "name", name, "ret", retType.String())

	return f, nil
}

// FindFunction looks up a declared function by name.
func (m *Module) FindFunction(name string) (*ir.Function, bool) {
	f, ok := m.funcs[name]
	return f, ok
}

// EnterScope pushes a new lexical scope frame.
func (m *Module) EnterScope() {
	m.scopes = append(m.scopes, newScope())

	tlog.V("scope").Printw("enter scope", "depth", len(m.scopes))
}

// LeaveScope pops the innermost lexical scope frame. It panics if
// called with only the root scope remaining, which would indicate a
// generator bug (mismatched EnterScope/LeaveScope), not a user error.
func (m *Module) LeaveScope() {
	if len(m.scopes) <= 1 {
		panic("module: LeaveScope called with no scope to leave")
	}

	tlog.V("scope").Printw("leave scope", "depth", len(m.scopes))

	m.scopes = m.scopes[:len(m.scopes)-1]
}

// ScopeDepth reports how many scope frames are currently pushed,
// including the root. Tests use this to verify scope hygiene.
func (m *Module) ScopeDepth() int { return len(m.scopes) }

// Declare binds name to val in the innermost scope. It does not check
// for shadowing: an inner declaration is allowed to hide an outer one,
// the same way a nested C block can redeclare a name.
func (m *Module) Declare(name string, val ir.Value) {
	m.scopes[len(m.scopes)-1].vars[name] = val

	tlog.V("vars").Printw("declare", "name", name, "ir_name", val.IRName())
}

// FindVarValue scans scope frames from innermost outward; the first
// hit wins. It returns (nil, false) if name is not found in any
// enclosing scope.
func (m *Module) FindVarValue(name string) (ir.Value, bool) {
	for i := len(m.scopes) - 1; i >= 0; i-- {
		if v, ok := m.scopes[i].vars[name]; ok {
			return v, true
		}
	}

	return nil, false
}

// NewConstInt returns the canonical ConstInt Value for v, creating it
// on first use. Identical literals therefore share one Value.
func (m *Module) NewConstInt(v int32) *ir.ConstInt {
	if c, ok := m.consts[v]; ok {
		return c
	}

	c := &ir.ConstInt{Val: v}
	m.consts[v] = c

	return c
}

// NewTemp allocates a fresh compiler-generated temporary of typ, named
// "%t<n>".
func (m *Module) NewTemp(typ *types.Type) *ir.LocalVariable {
	name := fmt.Sprintf("%%t%d", m.tempCount)
	m.tempCount++

	return &ir.LocalVariable{Typ: typ, Name: name}
}

// NewVarValue creates a fresh local variable for a user-declared name,
// deriving a stable IR name from the source identifier.
// It does not itself bind the name into scope; callers that want the
// declaration visible to lookups must also call Declare.
func (m *Module) NewVarValue(typ *types.Type, name string) *ir.LocalVariable {
	return &ir.LocalVariable{Typ: typ, Name: "%" + name}
}

// NewGlobalValue creates a fresh module-scope variable for a
// top-level, user-declared name and records it in declaration order.
// The "@" prefix keeps its IR name from ever colliding with a
// LocalVariable or FormalParameter, which use "%". It does not itself
// bind the name into scope; callers must also call Declare.
func (m *Module) NewGlobalValue(typ *types.Type, name string) *ir.GlobalVariable {
	g := &ir.GlobalVariable{Typ: typ, Name: "@" + name}
	m.globals = append(m.globals, g)

	return g
}

// NewFormalParameter allocates the Value representing the index-th
// formal parameter of the function currently being defined, named
// "%a<index>".
func (m *Module) NewFormalParameter(typ *types.Type, index int) *ir.FormalParameter {
	return &ir.FormalParameter{Typ: typ, Name: fmt.Sprintf("%%a%d", index), Index: index}
}

// NewLabel allocates a fresh, module-wide-unique label "L<n>".
// Scoping the counter at the Module rather than per Function is
// simpler and still satisfies the per-Function uniqueness invariant,
// since a superset of unique names is still unique within any subset.
func (m *Module) NewLabel() *ir.Label {
	name := fmt.Sprintf("L%d", m.labelCount)
	m.labelCount++

	return &ir.Label{Name: name}
}
