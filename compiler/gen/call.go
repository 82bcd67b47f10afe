package gen

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/minic-lang/minic/compiler/ast"
	"github.com/minic-lang/minic/compiler/ir"
	"github.com/minic-lang/minic/compiler/module"
)

// irFuncCall lowers FUNC_CALL. Its two children are a name
// leaf and a params list; arguments are evaluated left-to-right.
func irFuncCall(g *Generator, ctx context.Context, node *ast.Node) error {
	nameNode, paramsNode := node.Sons[0], node.Sons[1]

	callee, ok := g.Module.FindFunction(nameNode.Name)
	if !ok {
		return reportError(&module.UndefinedFunctionError{Name: nameNode.Name, LineNo: nameNode.LineNo})
	}

	current := g.Module.CurrentFunction()
	current.ExistFuncCall = true
	if n := len(paramsNode.Sons); n > current.MaxFuncCallArgCnt {
		current.MaxFuncCallArgCnt = n
	}

	args := make([]ir.Value, len(paramsNode.Sons))
	for i, argNode := range paramsNode.Sons {
		if err := g.visit(ctx, argNode); err != nil {
			return errors.Wrap(err, "call argument %d", i)
		}

		node.Splice(argNode)
		args[i] = argNode.Val
	}

	if len(args) != len(callee.Params) {
		return reportError(&module.ArityMismatchError{
			Name:     nameNode.Name,
			LineNo:   nameNode.LineNo,
			Got:      len(args),
			Expected: len(callee.Params),
		})
	}

	tlog.V("call").Printw("func call", "callee", callee.Name, "args", len(args))

	name := ""
	if !callee.ReturnType.IsVoid() {
		name = g.Module.NewTemp(callee.ReturnType).IRName()
	}

	call := ir.NewFuncCall(name, callee, args, callee.ReturnType)
	node.Emit(call)

	if !callee.ReturnType.IsVoid() {
		node.Val = call
	}

	return nil
}
