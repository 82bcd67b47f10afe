package ir

import (
	"testing"

	"github.com/minic-lang/minic/compiler/types"
)

func TestBinaryString(t *testing.T) {
	l := &ConstInt{Val: 1}
	r := &ConstInt{Val: 2}
	b := NewBinary("%t0", OpAdd, l, r, types.Int32())

	if got, want := b.String(), "%t0 = 1 add 2"; got != want {
		t.Errorf("Binary.String() = %q, want %q", got, want)
	}
	if b.IRName() != "%t0" {
		t.Errorf("Binary.IRName() = %q, want %%t0", b.IRName())
	}
}

func TestBranchString(t *testing.T) {
	target := &Label{Name: "L1"}
	cond := &ConstInt{Val: 0}

	bf := Branch{Kind: BranchBF, Cond: cond, Target: target}
	if got, want := bf.String(), "bf 0, L1"; got != want {
		t.Errorf("Branch(BF).String() = %q, want %q", got, want)
	}

	bt := Branch{Kind: BranchBT, Cond: cond, Target: target}
	if got, want := bt.String(), "bt 0, L1"; got != want {
		t.Errorf("Branch(BT).String() = %q, want %q", got, want)
	}

	bc := Branch{Kind: BranchBC, Cond: cond, True: &Label{Name: "L2"}, False: &Label{Name: "L3"}}
	if got, want := bc.String(), "bc 0, L2, L3"; got != want {
		t.Errorf("Branch(BC).String() = %q, want %q", got, want)
	}
}

func TestExitString(t *testing.T) {
	if got, want := (Exit{}).String(), "exit"; got != want {
		t.Errorf("Exit{}.String() = %q, want %q", got, want)
	}

	ret := &LocalVariable{Typ: types.Int32(), Name: "%ret"}
	if got, want := (Exit{Value: ret}).String(), "exit %ret"; got != want {
		t.Errorf("Exit{Value}.String() = %q, want %q", got, want)
	}
}

func TestMoveIsValue(t *testing.T) {
	dst := &LocalVariable{Typ: types.Int32(), Name: "%x"}
	src := &ConstInt{Val: 3}
	mov := Move{Dst: dst, Src: src}

	var v Value = mov
	if v.IRName() != "%x" {
		t.Errorf("Move as Value has IRName() = %q, want %%x", v.IRName())
	}
	if got, want := mov.String(), "%x = 3"; got != want {
		t.Errorf("Move.String() = %q, want %q", got, want)
	}
}

func TestFuncCallStringVoidVsNonVoid(t *testing.T) {
	voidFn := &Function{Name: "printint", ReturnType: types.Void()}
	call := NewFuncCall("", voidFn, []Value{&ConstInt{Val: 5}}, types.Void())
	if got, want := call.String(), "printint(5)"; got != want {
		t.Errorf("void FuncCall.String() = %q, want %q", got, want)
	}

	intFn := &Function{Name: "square", ReturnType: types.Int32()}
	call2 := NewFuncCall("%t1", intFn, []Value{&ConstInt{Val: 5}}, types.Int32())
	if got, want := call2.String(), "%t1 = i32 square(5)"; got != want {
		t.Errorf("non-void FuncCall.String() = %q, want %q", got, want)
	}
}

func TestLabelString(t *testing.T) {
	l := &Label{Name: "L3"}
	if got, want := l.String(), "L3:"; got != want {
		t.Errorf("Label.String() = %q, want %q", got, want)
	}
}
