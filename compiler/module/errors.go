package module

import "fmt"

// The error kinds below are the taxonomy of semantic errors the
// generator can detect. Each kind is a distinct type so callers can
// recover the kind with errors.As even after the generator has wrapped
// it with context via tlog.app/go/errors.

// NestedFunctionDefinitionError: FUNC_DEF encountered while a function
// is already being translated.
type NestedFunctionDefinitionError struct {
	Outer, Inner string
}

func (e *NestedFunctionDefinitionError) Error() string {
	return fmt.Sprintf("nested function definition: %q inside %q", e.Inner, e.Outer)
}

// DuplicateFunctionError: a function name was already registered.
type DuplicateFunctionError struct {
	Name string
}

func (e *DuplicateFunctionError) Error() string {
	return fmt.Sprintf("function redefined: %q", e.Name)
}

// UndefinedFunctionError: a call names an unknown function.
type UndefinedFunctionError struct {
	Name   string
	LineNo int
}

func (e *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("undefined function %q (line %d)", e.Name, e.LineNo)
}

// ArityMismatchError: a call's argument count does not match the
// callee's formal parameter count.
type ArityMismatchError struct {
	Name     string
	LineNo   int
	Got      int
	Expected int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("call to %q (line %d): expected %d argument(s), got %d",
		e.Name, e.LineNo, e.Expected, e.Got)
}

// BreakOutsideLoopError: break with no enclosing loop.
type BreakOutsideLoopError struct{}

func (e *BreakOutsideLoopError) Error() string { return "break outside loop" }

// ContinueOutsideLoopError: continue with no enclosing loop.
type ContinueOutsideLoopError struct{}

func (e *ContinueOutsideLoopError) Error() string { return "continue outside loop" }

// UnresolvedIdentifierError: a LEAF_VAR_ID names nothing in scope.
type UnresolvedIdentifierError struct {
	Name string
}

func (e *UnresolvedIdentifierError) Error() string {
	return fmt.Sprintf("unresolved identifier: %q", e.Name)
}
