package module

import (
	"testing"

	"github.com/minic-lang/minic/compiler/types"
)

func TestScopeStack(t *testing.T) {
	m := New()

	if m.ScopeDepth() != 1 {
		t.Fatalf("fresh Module has ScopeDepth() = %d, want 1", m.ScopeDepth())
	}

	m.Declare("x", m.NewTemp(types.Int32()))
	m.EnterScope()

	if _, ok := m.FindVarValue("x"); !ok {
		t.Errorf("inner scope should see outer declaration of x")
	}

	m.Declare("x", m.NewTemp(types.Int32()))
	inner, _ := m.FindVarValue("x")

	m.LeaveScope()

	outer, _ := m.FindVarValue("x")
	if inner == outer {
		t.Errorf("inner declaration of x should shadow, not alias, the outer one")
	}

	if m.ScopeDepth() != 1 {
		t.Errorf("ScopeDepth() after matching Enter/Leave = %d, want 1", m.ScopeDepth())
	}
}

func TestLeaveScopePanicsOnRootScope(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("LeaveScope on the root scope should panic")
		}
	}()

	New().LeaveScope()
}

func TestNewFunctionDuplicate(t *testing.T) {
	m := New()

	if _, err := m.NewFunction("f", types.Void()); err != nil {
		t.Fatalf("first NewFunction(f) failed: %v", err)
	}

	_, err := m.NewFunction("f", types.Int32())
	if err == nil {
		t.Fatalf("second NewFunction(f) should fail")
	}

	if _, ok := err.(*DuplicateFunctionError); !ok {
		t.Errorf("error is not a *DuplicateFunctionError: %v", err)
	}
}

func TestNewTempAndLabelAreUnique(t *testing.T) {
	m := New()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		name := m.NewTemp(types.Int32()).IRName()
		if seen[name] {
			t.Fatalf("NewTemp produced duplicate name %q", name)
		}
		seen[name] = true
	}

	labels := make(map[string]bool)
	for i := 0; i < 10; i++ {
		name := m.NewLabel().Name
		if labels[name] {
			t.Fatalf("NewLabel produced duplicate name %q", name)
		}
		labels[name] = true
	}
}

func TestConstIntPooled(t *testing.T) {
	m := New()

	a := m.NewConstInt(7)
	b := m.NewConstInt(7)
	c := m.NewConstInt(8)

	if a != b {
		t.Errorf("NewConstInt(7) should return the same pooled Value both times")
	}
	if a == c {
		t.Errorf("NewConstInt(7) and NewConstInt(8) must not alias")
	}
}

func TestNewVarValueDoesNotDeclare(t *testing.T) {
	m := New()

	m.NewVarValue(types.Int32(), "x")

	if _, ok := m.FindVarValue("x"); ok {
		t.Errorf("NewVarValue must not itself bind the name into scope")
	}
}

func TestNewGlobalValueNameAndOrder(t *testing.T) {
	m := New()

	a := m.NewGlobalValue(types.Int32(), "a")
	b := m.NewGlobalValue(types.Int32(), "b")

	if a.IRName() != "@a" || b.IRName() != "@b" {
		t.Errorf("global IR names must be '@'-prefixed, got %q, %q", a.IRName(), b.IRName())
	}

	globals := m.Globals()
	if len(globals) != 2 || globals[0] != a || globals[1] != b {
		t.Errorf("Globals must report declarations in declaration order")
	}

	if _, ok := m.FindVarValue("a"); ok {
		t.Errorf("NewGlobalValue must not itself bind the name into scope")
	}
}
