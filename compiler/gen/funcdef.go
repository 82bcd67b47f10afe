package gen

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/minic-lang/minic/compiler/ast"
	"github.com/minic-lang/minic/compiler/ir"
	"github.com/minic-lang/minic/compiler/module"
)

// irCompileUnit lowers COMPILE_UNIT: clears the
// current-function slot and sequentially visits children, each a
// FUNC_DEF or global declaration. The first child failure aborts
// translation.
func irCompileUnit(g *Generator, ctx context.Context, node *ast.Node) error {
	g.Module.SetCurrentFunction(nil)

	for i, child := range node.Sons {
		if err := g.visit(ctx, child); err != nil {
			return errors.Wrap(err, "top-level item %d", i)
		}
	}

	return nil
}

// irFuncDef lowers FUNC_DEF. Its four children are
// [return_type, name, formal_params, body_block].
func irFuncDef(g *Generator, ctx context.Context, node *ast.Node) error {
	typeNode, nameNode, paramNode, bodyNode := node.Sons[0], node.Sons[1], node.Sons[2], node.Sons[3]

	if outer := g.Module.CurrentFunction(); outer != nil {
		return reportError(&module.NestedFunctionDefinitionError{Outer: outer.Name, Inner: nameNode.Name})
	}

	fn, err := g.Module.NewFunction(nameNode.Name, typeNode.Type)
	if err != nil {
		return err
	}

	g.Module.SetCurrentFunction(fn)
	g.Module.EnterScope()

	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "gen: function", "name", nameNode.Name)
	defer tr.Finish("err", &err)

	fn.Add(ir.Entry{})

	exitLabel := g.Module.NewLabel()
	fn.ExitLabel = exitLabel

	if err = g.visit(ctx, paramNode); err != nil {
		g.Module.SetCurrentFunction(nil)
		g.Module.LeaveScope()
		return errors.Wrap(err, "formal parameters")
	}
	for _, inst := range paramNode.Insts {
		fn.Add(inst)
	}

	if !typeNode.Type.IsVoid() {
		fn.ReturnValue = g.Module.NewTemp(typeNode.Type)
	}

	bodyNode.NeedScope = false

	if err = g.visit(ctx, bodyNode); err != nil {
		g.Module.SetCurrentFunction(nil)
		g.Module.LeaveScope()
		return errors.Wrap(err, "function body")
	}
	for _, inst := range bodyNode.Insts {
		fn.Add(inst)
	}

	fn.Add(exitLabel)
	fn.Add(ir.Exit{Value: fn.ReturnValue})

	g.Module.SetCurrentFunction(nil)
	g.Module.LeaveScope()

	node.Val = nil

	return nil
}

// irFuncFormalParams lowers FUNC_FORMAL_PARAMS. For each
// formal (type, name) it creates a FormalParameter Value, a matching
// local variable in the current scope, and a Move copying the formal
// into the local; these moves are appended to the node's own block
// (and, by the caller, spliced before the body). The empty-parameter
// case is a no-op.
func irFuncFormalParams(g *Generator, ctx context.Context, node *ast.Node) error {
	fn := g.Module.CurrentFunction()

	for i, param := range node.Sons {
		typeNode, nameNode := param.Sons[0], param.Sons[1]

		formal := g.Module.NewFormalParameter(typeNode.Type, i)
		fn.Params = append(fn.Params, formal)

		local := g.Module.NewVarValue(typeNode.Type, nameNode.Name)
		g.Module.Declare(nameNode.Name, local)

		node.Emit(ir.Move{Dst: local, Src: formal})
	}

	return nil
}
