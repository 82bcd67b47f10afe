package gen

import (
	"context"

	"tlog.app/go/errors"

	"github.com/minic-lang/minic/compiler/ast"
	"github.com/minic-lang/minic/compiler/ir"
	"github.com/minic-lang/minic/compiler/types"
)

// visitOperands visits l then r, left-to-right, and splices both
// children's instructions into node before node emits its own
// instruction. This is the shared shape of every arithmetic and
// relational handler.
func (g *Generator) visitOperands(ctx context.Context, node, l, r *ast.Node) error {
	if err := g.visit(ctx, l); err != nil {
		return errors.Wrap(err, "left operand")
	}
	if err := g.visit(ctx, r); err != nil {
		return errors.Wrap(err, "right operand")
	}

	node.Splice(l)
	node.Splice(r)

	return nil
}

func binaryArith(op ir.BinOp) handler {
	return func(g *Generator, ctx context.Context, node *ast.Node) error {
		l, r := node.Sons[0], node.Sons[1]

		if err := g.visitOperands(ctx, node, l, r); err != nil {
			return err
		}

		typ := types.Int32()
		temp := g.Module.NewTemp(typ)
		inst := ir.NewBinary(temp.IRName(), op, l.Val, r.Val, typ)

		node.Emit(inst)
		node.Val = inst

		return nil
	}
}

func binaryRel(op ir.BinOp) handler {
	return func(g *Generator, ctx context.Context, node *ast.Node) error {
		l, r := node.Sons[0], node.Sons[1]

		if err := g.visitOperands(ctx, node, l, r); err != nil {
			return err
		}

		typ := types.Bool()
		temp := g.Module.NewTemp(typ)
		inst := ir.NewBinary(temp.IRName(), op, l.Val, r.Val, typ)

		node.Emit(inst)
		node.Val = inst

		return nil
	}
}

var (
	irAdd = binaryArith(ir.OpAdd)
	irSub = binaryArith(ir.OpSub)
	irMul = binaryArith(ir.OpMul)
	irDiv = binaryArith(ir.OpDiv)
	irMod = binaryArith(ir.OpMod)

	irEq = binaryRel(ir.OpEq)
	irNe = binaryRel(ir.OpNe)
	irLt = binaryRel(ir.OpLt)
	irLe = binaryRel(ir.OpLe)
	irGt = binaryRel(ir.OpGt)
	irGe = binaryRel(ir.OpGe)
)

// irNeg lowers unary negation.
func irNeg(g *Generator, ctx context.Context, node *ast.Node) error {
	x := node.Sons[0]

	if err := g.visit(ctx, x); err != nil {
		return errors.Wrap(err, "operand")
	}

	node.Splice(x)

	typ := types.Int32()
	temp := g.Module.NewTemp(typ)
	inst := ir.NewUnary(temp.IRName(), ir.OpNeg, x.Val, typ)

	node.Emit(inst)
	node.Val = inst

	return nil
}

// materializeBool emits the symmetric explicit-materialization pattern
// shared by AND and OR (NOT in value context uses a Binary eq instead):
//
//	<firstLabel>:  result = <firstVal>; goto Lend
//	<secondLabel>: result = <secondVal>; goto Lend
//	Lend:
//
// firstLabel is the block that must be reached by fall-through when no
// guarding branch is taken, so callers must order (firstLabel,
// firstVal) to match whatever their branch chain falls through to on
// exhaustion, not just pick an arbitrary true/false order.
func (g *Generator) materializeBool(node *ast.Node, firstLabel *ir.Label, firstVal int32, secondLabel *ir.Label, secondVal int32, lend *ir.Label) ir.Value {
	result := g.Module.NewTemp(types.Int32())

	node.Emit(
		firstLabel,
		ir.Move{Dst: result, Src: g.Module.NewConstInt(firstVal)},
		ir.Goto{Target: lend},
		secondLabel,
		ir.Move{Dst: result, Src: g.Module.NewConstInt(secondVal)},
		ir.Goto{Target: lend},
		lend,
	)

	return result
}

// irAnd lowers short-circuit &&:
//
//	<left ir>
//	BF left.val, Lfalse
//	<right ir>
//	BF right.val, Lfalse
//	Ltrue: result = 1; goto Lend
//	Lfalse: result = 0; goto Lend
//	Lend:
//
// Both operands true is the only way control falls through the BF
// chain, so Ltrue (result = 1) must be the block that fall-through
// reaches; Lfalse is only reached by an explicit branch.
func irAnd(g *Generator, ctx context.Context, node *ast.Node) error {
	left, right := node.Sons[0], node.Sons[1]

	lfalse := g.Module.NewLabel()
	ltrue := g.Module.NewLabel()
	lend := g.Module.NewLabel()

	if err := g.visit(ctx, left); err != nil {
		return errors.Wrap(err, "left operand")
	}
	node.Splice(left)
	node.Emit(ir.Branch{Kind: ir.BranchBF, Cond: left.Val, Target: lfalse})

	if err := g.visit(ctx, right); err != nil {
		return errors.Wrap(err, "right operand")
	}
	node.Splice(right)
	node.Emit(ir.Branch{Kind: ir.BranchBF, Cond: right.Val, Target: lfalse})

	node.Val = g.materializeBool(node, ltrue, 1, lfalse, 0, lend)

	return nil
}

// irOr lowers short-circuit ||:
//
//	<left ir>
//	BT left.val, Ltrue
//	<right ir>
//	BT right.val, Ltrue
//	Lfalse: result = 0; goto Lend
//	Ltrue: result = 1; goto Lend
//	Lend:
//
// Both operands false is the only way control falls through the BT
// chain, so Lfalse (result = 0) must be the block fall-through
// reaches here, the mirror image of AND's block order. Getting this
// order wrong makes 0 || 0 materialize 1.
func irOr(g *Generator, ctx context.Context, node *ast.Node) error {
	left, right := node.Sons[0], node.Sons[1]

	ltrue := g.Module.NewLabel()
	lfalse := g.Module.NewLabel()
	lend := g.Module.NewLabel()

	if err := g.visit(ctx, left); err != nil {
		return errors.Wrap(err, "left operand")
	}
	node.Splice(left)
	node.Emit(ir.Branch{Kind: ir.BranchBT, Cond: left.Val, Target: ltrue})

	if err := g.visit(ctx, right); err != nil {
		return errors.Wrap(err, "right operand")
	}
	node.Splice(right)
	node.Emit(ir.Branch{Kind: ir.BranchBT, Cond: right.Val, Target: ltrue})

	node.Val = g.materializeBool(node, lfalse, 0, ltrue, 1, lend)

	return nil
}

// irNot implements the NOT pattern. IF, WHILE, AND and OR in this
// generator all lower their condition uniformly to a materialized
// boolean Value and branch on that, so TrueLabel/FalseLabel are never
// set by a caller today; the fields and the swap-and-recurse branch
// below exist so a caller that does set them (propagating its own
// branch targets into an operand instead of materializing twice) is
// honored correctly. Absent that, NOT falls back to an eager
// materialization: result = (operand == 0).
func irNot(g *Generator, ctx context.Context, node *ast.Node) error {
	operand := node.Sons[0]

	if node.TrueLabel != nil || node.FalseLabel != nil {
		operand.TrueLabel, operand.FalseLabel = node.FalseLabel, node.TrueLabel

		if err := g.visit(ctx, operand); err != nil {
			return errors.Wrap(err, "operand")
		}

		node.Splice(operand)
		node.Val = operand.Val

		return nil
	}

	if err := g.visit(ctx, operand); err != nil {
		return errors.Wrap(err, "operand")
	}
	node.Splice(operand)

	typ := types.Bool()
	temp := g.Module.NewTemp(typ)
	inst := ir.NewBinary(temp.IRName(), ir.OpEq, operand.Val, g.Module.NewConstInt(0), typ)

	node.Emit(inst)
	node.Val = inst

	return nil
}
