package gen

import (
	"context"

	"tlog.app/go/errors"

	"github.com/minic-lang/minic/compiler/ast"
	"github.com/minic-lang/minic/compiler/ir"
)

// irAssign lowers ASSIGN. LHS is visited before RHS, but RHS's
// instructions are spliced before LHS's: side effects evaluate
// right-to-left.
func irAssign(g *Generator, ctx context.Context, node *ast.Node) error {
	lhs, rhs := node.Sons[0], node.Sons[1]

	if err := g.visit(ctx, lhs); err != nil {
		return errors.Wrap(err, "assignment lhs")
	}
	if err := g.visit(ctx, rhs); err != nil {
		return errors.Wrap(err, "assignment rhs")
	}

	node.Splice(rhs)
	node.Splice(lhs)

	mov := ir.Move{Dst: lhs.Val, Src: rhs.Val}
	node.Emit(mov)
	node.Val = mov

	return nil
}

// irReturn lowers RETURN. A Goto to the function's exit
// label is emitted unconditionally, with or without a value.
func irReturn(g *Generator, ctx context.Context, node *ast.Node) error {
	fn := g.Module.CurrentFunction()

	if len(node.Sons) == 1 {
		value := node.Sons[0]

		if err := g.visit(ctx, value); err != nil {
			return errors.Wrap(err, "return value")
		}

		node.Splice(value)
		node.Emit(ir.Move{Dst: fn.ReturnValue, Src: value.Val})
	} else {
		node.Val = nil
	}

	node.Emit(ir.Goto{Target: fn.ExitLabel})

	return nil
}

// irBlock lowers BLOCK: enters a scope if NeedScope, visits
// each statement splicing instructions in order, then leaves the scope
// if it entered one. node.Val stays nil.
func irBlock(g *Generator, ctx context.Context, node *ast.Node) error {
	if node.NeedScope {
		g.Module.EnterScope()
	}

	for _, stmt := range node.Sons {
		if err := g.visit(ctx, stmt); err != nil {
			if node.NeedScope {
				g.Module.LeaveScope()
			}
			return errors.Wrap(err, "block statement")
		}

		node.Splice(stmt)
	}

	if node.NeedScope {
		g.Module.LeaveScope()
	}

	return nil
}

// irDeclStmt lowers DECL_STMT: visits every VAR_DECL child. Declarations
// emit no instructions of their own; storage is modeled at the Value
// level.
func irDeclStmt(g *Generator, ctx context.Context, node *ast.Node) error {
	for _, decl := range node.Sons {
		if err := g.visit(ctx, decl); err != nil {
			return errors.Wrap(err, "variable declaration")
		}
	}

	return nil
}

// irVarDecl lowers one VAR_DECL: [type, name]. Outside any function
// (CompileUnit visits it with the current-function slot cleared) it
// declares a GlobalVariable; inside a function body it declares a
// fresh LocalVariable via Module.NewVarValue.
func irVarDecl(g *Generator, ctx context.Context, node *ast.Node) error {
	typeNode, nameNode := node.Sons[0], node.Sons[1]

	var val ir.Value
	if g.Module.CurrentFunction() == nil {
		val = g.Module.NewGlobalValue(typeNode.Type, nameNode.Name)
	} else {
		val = g.Module.NewVarValue(typeNode.Type, nameNode.Name)
	}

	g.Module.Declare(nameNode.Name, val)

	node.Val = val

	return nil
}
