package gen

import (
	"context"

	"github.com/minic-lang/minic/compiler/ast"
	"github.com/minic-lang/minic/compiler/module"
)

// irLeafLiteralUint lowers LEAF_LITERAL_UINT.
func irLeafLiteralUint(g *Generator, ctx context.Context, node *ast.Node) error {
	node.Val = g.Module.NewConstInt(int32(node.IntegerVal))
	return nil
}

// irLeafVarID lowers LEAF_VAR_ID. Rather than let a missing
// variable surface only when a consumer tries to use a null Value,
// this surfaces UnresolvedIdentifier eagerly at the leaf.
func irLeafVarID(g *Generator, ctx context.Context, node *ast.Node) error {
	val, ok := g.Module.FindVarValue(node.Name)
	if !ok {
		return reportError(&module.UnresolvedIdentifierError{Name: node.Name})
	}

	node.Val = val

	return nil
}

// irLeafType lowers LEAF_TYPE: no instructions, the type is already
// carried on the node.
func irLeafType(g *Generator, ctx context.Context, node *ast.Node) error {
	return nil
}
