package types

import "testing"

func TestSingletonIdentity(t *testing.T) {
	if Int32() != Int32() {
		t.Errorf("Int32() is not a stable singleton")
	}
	if Void() == Int32() {
		t.Errorf("Void() and Int32() must be distinct")
	}
	if Bool().Kind() != KindBool {
		t.Errorf("Bool().Kind() = %v, want KindBool", Bool().Kind())
	}
}

func TestFromName(t *testing.T) {
	if FromName("int") != Int32() {
		t.Errorf(`FromName("int") did not resolve to Int32()`)
	}
	if FromName("void") != Void() {
		t.Errorf(`FromName("void") did not resolve to Void()`)
	}
	if FromName("float") != nil {
		t.Errorf(`FromName("float") = %v, want nil`, FromName("float"))
	}
}

func TestIsPredicates(t *testing.T) {
	if !Int32().IsInt32() || Int32().IsBool() || Int32().IsVoid() {
		t.Errorf("Int32() predicate mismatch")
	}
	if !Bool().IsBool() || Bool().IsInt32() {
		t.Errorf("Bool() predicate mismatch")
	}
	if !Void().IsVoid() {
		t.Errorf("Void() predicate mismatch")
	}
}
