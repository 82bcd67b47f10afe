package ast

import "github.com/minic-lang/minic/compiler/types"

// The constructors below build well-formed nodes satisfying the
// shape the generator expects. They exist for tests and for any future
// parser package to target; this repository ships no parser.

func CompileUnitNode(items ...*Node) *Node {
	return &Node{Tag: CompileUnit, Sons: items}
}

func FuncDefNode(retType *Node, name string, params *Node, body *Node) *Node {
	return &Node{Tag: FuncDef, Sons: []*Node{retType, {Tag: LeafVarID, Name: name}, params, body}}
}

func FormalParamsNode(params ...*Node) *Node {
	return &Node{Tag: FuncFormalParams, Sons: params}
}

// ParamNode describes one formal parameter as a VAR_DECL-shaped node,
// the same two-child [type, name] layout DeclStmt children use.
func ParamNode(typ *Node, name string) *Node {
	return &Node{Tag: VarDecl, Sons: []*Node{typ, {Tag: LeafVarID, Name: name}}}
}

func BlockNode(needScope bool, stmts ...*Node) *Node {
	return &Node{Tag: Block, Sons: stmts, NeedScope: needScope}
}

func DeclStmtNode(decls ...*Node) *Node {
	return &Node{Tag: DeclStmt, Sons: decls}
}

func VarDeclNode(typ *Node, name string) *Node {
	return &Node{Tag: VarDecl, Sons: []*Node{typ, {Tag: LeafVarID, Name: name}}}
}

func AssignNode(lhs, rhs *Node) *Node {
	return &Node{Tag: Assign, Sons: []*Node{lhs, rhs}}
}

func ReturnNode(value *Node) *Node {
	if value == nil {
		return &Node{Tag: Return}
	}
	return &Node{Tag: Return, Sons: []*Node{value}}
}

func IfNode(cond, then, els *Node) *Node {
	sons := []*Node{cond, then}
	if els != nil {
		sons = append(sons, els)
	}
	return &Node{Tag: If, Sons: sons}
}

func WhileNode(cond, body *Node) *Node {
	return &Node{Tag: While, Sons: []*Node{cond, body}}
}

func BreakNode() *Node    { return &Node{Tag: Break} }
func ContinueNode() *Node { return &Node{Tag: Continue} }

func binOpNode(tag Tag, l, r *Node) *Node {
	return &Node{Tag: tag, Sons: []*Node{l, r}}
}

func AddNode(l, r *Node) *Node { return binOpNode(Add, l, r) }
func SubNode(l, r *Node) *Node { return binOpNode(Sub, l, r) }
func MulNode(l, r *Node) *Node { return binOpNode(Mul, l, r) }
func DivNode(l, r *Node) *Node { return binOpNode(Div, l, r) }
func ModNode(l, r *Node) *Node { return binOpNode(Mod, l, r) }
func EqNode(l, r *Node) *Node  { return binOpNode(Eq, l, r) }
func NeNode(l, r *Node) *Node  { return binOpNode(Ne, l, r) }
func LtNode(l, r *Node) *Node  { return binOpNode(Lt, l, r) }
func LeNode(l, r *Node) *Node  { return binOpNode(Le, l, r) }
func GtNode(l, r *Node) *Node  { return binOpNode(Gt, l, r) }
func GeNode(l, r *Node) *Node  { return binOpNode(Ge, l, r) }
func AndNode(l, r *Node) *Node { return binOpNode(And, l, r) }
func OrNode(l, r *Node) *Node  { return binOpNode(Or, l, r) }

func NegNode(x *Node) *Node { return &Node{Tag: Neg, Sons: []*Node{x}} }
func NotNode(x *Node) *Node { return &Node{Tag: Not, Sons: []*Node{x}} }

func FuncCallNode(name string, lineNo int, args ...*Node) *Node {
	nameLeaf := &Node{Tag: LeafVarID, Name: name, LineNo: lineNo}
	params := &Node{Tag: FuncFormalParams, Sons: args}
	return &Node{Tag: FuncCall, Sons: []*Node{nameLeaf, params}}
}

func LeafUintNode(v int64) *Node {
	return &Node{Tag: LeafLiteralUint, IntegerVal: v}
}

func LeafVarIDNode(name string) *Node {
	return &Node{Tag: LeafVarID, Name: name}
}

func LeafTypeNode(t *types.Type) *Node {
	return &Node{Tag: LeafType, Type: t}
}

func IntTypeNode() *Node  { return LeafTypeNode(types.Int32()) }
func VoidTypeNode() *Node { return LeafTypeNode(types.Void()) }
