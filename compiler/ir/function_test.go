package ir

import (
	"strings"
	"testing"

	"github.com/minic-lang/minic/compiler/types"
)

func TestFunctionStringLayout(t *testing.T) {
	ret := &LocalVariable{Typ: types.Int32(), Name: "%ret"}
	exit := &Label{Name: "L0"}

	fn := &Function{Name: "main", ReturnType: types.Int32(), ExitLabel: exit, ReturnValue: ret}
	fn.Add(Entry{})
	fn.Add(Move{Dst: ret, Src: &ConstInt{Val: 0}})
	fn.Add(Goto{Target: exit})
	fn.Add(exit)
	fn.Add(Exit{Value: ret})

	got := fn.String()

	if !strings.HasPrefix(got, "func main() i32 {\n") {
		t.Errorf("unexpected header in:\n%s", got)
	}
	if !strings.Contains(got, "\tentry\n") {
		t.Errorf("entry line not indented in:\n%s", got)
	}
	if !strings.Contains(got, "\nL0:\n") {
		t.Errorf("label line unexpectedly indented in:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n}") {
		t.Errorf("missing closing brace in:\n%s", got)
	}
}

func TestFunctionStringParams(t *testing.T) {
	p0 := &FormalParameter{Typ: types.Int32(), Name: "%a0", Index: 0}
	p1 := &FormalParameter{Typ: types.Int32(), Name: "%a1", Index: 1}

	fn := &Function{Name: "add", ReturnType: types.Int32(), Params: []*FormalParameter{p0, p1}}

	if got, want := fn.String(), "func add(%a0, %a1) i32 {\n}"; got != want {
		t.Errorf("Function.String() = %q, want %q", got, want)
	}
}
