package gen

import (
	"context"

	"tlog.app/go/errors"

	"github.com/minic-lang/minic/compiler/ast"
	"github.com/minic-lang/minic/compiler/ir"
	"github.com/minic-lang/minic/compiler/module"
)

// irIf lowers IF:
//
//	<cond ir>
//	BF cond.val, Lfalse
//	Ltrue:
//	<then ir>
//	goto Lend
//	Lfalse:
//	<else ir or empty>
//	goto Lend
//	Lend:
func irIf(g *Generator, ctx context.Context, node *ast.Node) error {
	cond, then := node.Sons[0], node.Sons[1]
	var els *ast.Node
	if len(node.Sons) > 2 {
		els = node.Sons[2]
	}

	ltrue := g.Module.NewLabel()
	lfalse := g.Module.NewLabel()
	lend := g.Module.NewLabel()

	if err := g.visit(ctx, cond); err != nil {
		return errors.Wrap(err, "if condition")
	}
	node.Splice(cond)
	node.Emit(ir.Branch{Kind: ir.BranchBF, Cond: cond.Val, Target: lfalse})

	node.Emit(ltrue)
	if err := g.visit(ctx, then); err != nil {
		return errors.Wrap(err, "if then-branch")
	}
	node.Splice(then)
	node.Emit(ir.Goto{Target: lend})

	node.Emit(lfalse)
	if els != nil {
		if err := g.visit(ctx, els); err != nil {
			return errors.Wrap(err, "if else-branch")
		}
		node.Splice(els)
	}
	node.Emit(ir.Goto{Target: lend})

	node.Emit(lend)

	return nil
}

// irWhile lowers WHILE:
//
//	Lentry:
//	<cond ir>
//	BT cond.val, Lbody
//	Lexit:
//	Lbody:
//	<body ir>
//	goto Lentry
//
// The loop-context triple (Lentry, Lbody, Lexit) is pushed before the
// body is visited and popped after, regardless of outcome, so that a
// semantic error inside the body never leaves a stale frame behind.
func irWhile(g *Generator, ctx context.Context, node *ast.Node) error {
	cond, body := node.Sons[0], node.Sons[1]

	lentry := g.Module.NewLabel()
	lbody := g.Module.NewLabel()
	lexit := g.Module.NewLabel()

	node.Emit(lentry)

	if err := g.visit(ctx, cond); err != nil {
		return errors.Wrap(err, "while condition")
	}
	node.Splice(cond)
	node.Emit(ir.Branch{Kind: ir.BranchBT, Cond: cond.Val, Target: lbody})

	node.Emit(lexit)
	node.Emit(lbody)

	g.loops.push(lentry, lbody, lexit)
	bodyErr := g.visit(ctx, body)
	g.loops.pop()

	if bodyErr != nil {
		return errors.Wrap(bodyErr, "while body")
	}
	node.Splice(body)

	node.Emit(ir.Goto{Target: lentry})

	return nil
}

// irBreak lowers BREAK: fails with BreakOutsideLoopError
// if the loop-context stack is empty, otherwise emits a Goto to the
// innermost loop's exit label.
func irBreak(g *Generator, ctx context.Context, node *ast.Node) error {
	if g.loops.empty() {
		return reportError(&module.BreakOutsideLoopError{})
	}

	node.Emit(ir.Goto{Target: g.loops.top().exit})

	return nil
}

// irContinue lowers CONTINUE: fails with
// ContinueOutsideLoopError if the loop-context stack is empty,
// otherwise emits a Goto to the innermost loop's entry label.
func irContinue(g *Generator, ctx context.Context, node *ast.Node) error {
	if g.loops.empty() {
		return reportError(&module.ContinueOutsideLoopError{})
	}

	node.Emit(ir.Goto{Target: g.loops.top().entry})

	return nil
}
