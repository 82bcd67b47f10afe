// Package ast defines the input contract consumed by the IR generator:
// a tagged tree of source constructs together with the two
// translator-owned output fields (Insts, Val) that the generator fills
// in as it walks the tree.
//
// The lexer/parser that produces this tree is out of scope for this
// repository; the node constructors in builder.go exist only so the
// generator and its tests can construct trees without a real parser.
package ast

import (
	"github.com/minic-lang/minic/compiler/ir"
	"github.com/minic-lang/minic/compiler/types"
)

// Tag identifies the operator/construct a Node represents. The set
// mirrors the fixed AST-operator enumeration MiniC programs lower to.
type Tag int

const (
	CompileUnit Tag = iota
	FuncDef
	FuncFormalParams
	FuncCall
	Block
	DeclStmt
	VarDecl
	Assign
	Return
	If
	While
	Break
	Continue
	Add
	Sub
	Mul
	Div
	Mod
	Neg
	And
	Or
	Not
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	LeafLiteralUint
	LeafVarID
	LeafType
)

var tagNames = map[Tag]string{
	CompileUnit:      "COMPILE_UNIT",
	FuncDef:          "FUNC_DEF",
	FuncFormalParams: "FUNC_FORMAL_PARAMS",
	FuncCall:         "FUNC_CALL",
	Block:            "BLOCK",
	DeclStmt:         "DECL_STMT",
	VarDecl:          "VAR_DECL",
	Assign:           "ASSIGN",
	Return:           "RETURN",
	If:               "IF",
	While:            "WHILE",
	Break:            "BREAK",
	Continue:         "CONTINUE",
	Add:              "ADD",
	Sub:              "SUB",
	Mul:              "MUL",
	Div:              "DIV",
	Mod:              "MOD",
	Neg:              "NEG",
	And:              "AND",
	Or:               "OR",
	Not:              "NOT",
	Eq:               "EQ",
	Ne:               "NE",
	Lt:               "LT",
	Le:               "LE",
	Gt:               "GT",
	Ge:               "GE",
	LeafLiteralUint:  "LEAF_LITERAL_UINT",
	LeafVarID:        "LEAF_VAR_ID",
	LeafType:         "LEAF_TYPE",
}

func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return "UNKNOWN"
}

// Node is one element of the AST. Sons, IntegerVal, Name, Type, LineNo
// and NeedScope are set by whoever builds the tree; Insts and Val are
// filled in by the generator during translation (which also clears
// NeedScope on a function's body block).
type Node struct {
	Tag  Tag
	Sons []*Node

	IntegerVal int64
	Name       string
	Type       *types.Type
	LineNo     int

	// Insts is the node's blockInsts: the IR instructions produced by
	// this node's own execution, in evaluation order.
	Insts []ir.Instruction

	// Val is the node's result value, or nil for statements and for
	// expressions that have not yet been translated.
	Val ir.Value

	// NeedScope is consumed only by Block nodes.
	NeedScope bool

	// TrueLabel/FalseLabel are used only by the NOT pattern.
	TrueLabel, FalseLabel *ir.Label
}

// Emit appends insts to the node's own instruction buffer, preserving
// call order.
func (n *Node) Emit(insts ...ir.Instruction) {
	n.Insts = append(n.Insts, insts...)
}

// Splice appends another node's already-produced instructions to this
// node's buffer, the operation every handler performs when folding a
// child's translation into its own.
func (n *Node) Splice(child *Node) {
	n.Insts = append(n.Insts, child.Insts...)
}
