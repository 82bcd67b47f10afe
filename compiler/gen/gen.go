// Package gen is the tree-directed IR generator: it
// dispatches on AST node tag to a per-tag handler, threads a Module
// (symbol table and lexical scoping) and a loop-context stack across
// the traversal, and on return each node carries an appended sequence
// of IR instructions and a nullable result value.
package gen

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/minic-lang/minic/compiler/ast"
	"github.com/minic-lang/minic/compiler/module"
)

// handler is the contract every AST-tag handler satisfies:
// it may recurse into children via Generator.visit, it must splice
// each visited child's instructions into its own, it must set
// node.Val, and it returns an error on semantic failure.
type handler func(g *Generator, ctx context.Context, node *ast.Node) error

// Generator is the tree-directed translator. It holds the dispatch
// table from AST-operator tag to handler.
type Generator struct {
	Module *module.Module

	handlers map[ast.Tag]handler
	loops    loopStack
}

// New returns a Generator wired to mod, with its dispatch table built.
func New(mod *module.Module) *Generator {
	g := &Generator{Module: mod}

	g.handlers = map[ast.Tag]handler{
		ast.LeafLiteralUint: irLeafLiteralUint,
		ast.LeafVarID:       irLeafVarID,
		ast.LeafType:        irLeafType,

		ast.Add: irAdd,
		ast.Sub: irSub,
		ast.Mul: irMul,
		ast.Div: irDiv,
		ast.Mod: irMod,
		ast.Neg: irNeg,

		ast.And: irAnd,
		ast.Or:  irOr,
		ast.Not: irNot,

		ast.Eq: irEq,
		ast.Ne: irNe,
		ast.Lt: irLt,
		ast.Le: irLe,
		ast.Gt: irGt,
		ast.Ge: irGe,

		ast.Assign: irAssign,
		ast.Return: irReturn,

		ast.If:       irIf,
		ast.While:    irWhile,
		ast.Break:    irBreak,
		ast.Continue: irContinue,

		ast.FuncCall: irFuncCall,

		ast.FuncDef:          irFuncDef,
		ast.FuncFormalParams: irFuncFormalParams,

		ast.DeclStmt: irDeclStmt,
		ast.VarDecl:  irVarDecl,

		ast.Block: irBlock,

		ast.CompileUnit: irCompileUnit,
	}

	return g
}

// Run translates root, a COMPILE_UNIT node, into the Module's
// functions. It returns the first error encountered; there is no
// partial-success mode: the produced IR is valid iff Run
// returns nil.
func (g *Generator) Run(ctx context.Context, root *ast.Node) (err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "gen: run")
	defer tr.Finish("err", &err)

	if err := g.visit(ctx, root); err != nil {
		return errors.Wrap(err, "translate compile unit")
	}

	return nil
}

// visit dispatches on node's tag. An unknown tag invokes the default
// handler, which logs and reports success.
func (g *Generator) visit(ctx context.Context, node *ast.Node) error {
	if node == nil {
		return nil
	}

	h, ok := g.handlers[node.Tag]
	if !ok {
		return irDefault(g, ctx, node)
	}

	return h(g, ctx, node)
}

// reportError logs err through the single ERROR-level sink and returns
// it unchanged, so every semantic-error detection site both reports to
// the environment and propagates the failure up through the traversal.
func reportError(err error) error {
	tlog.Printw("semantic error", "err", err, "", tlog.Error)
	return err
}

// irDefault handles any AST tag with no registered handler. It is
// non-fatal: an unrecognized node is something to warn about, not
// something that aborts the whole translation.
func irDefault(g *Generator, ctx context.Context, node *ast.Node) error {
	tlog.SpanFromContext(ctx).Printw("unknown node tag", "tag", node.Tag.String())
	return nil
}
