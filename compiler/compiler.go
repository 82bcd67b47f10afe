package compiler

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/minic-lang/minic/compiler/ast"
	"github.com/minic-lang/minic/compiler/gen"
	"github.com/minic-lang/minic/compiler/ir"
	"github.com/minic-lang/minic/compiler/module"
)

// Compile translates root, a COMPILE_UNIT ast.Node, into an ir.Package
// named name. It is the sole entry point most callers need: it wires a
// fresh Module, builds a Generator over it, and runs the translation.
func Compile(ctx context.Context, name string, root *ast.Node) (pkg *ir.Package, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "compiler: compile", "name", name)
	defer tr.Finish("err", &err)

	mod := module.New()
	g := gen.New(mod)

	if err = g.Run(ctx, root); err != nil {
		return nil, errors.Wrap(err, "generate ir")
	}

	pkg = &ir.Package{Name: name, Globals: mod.Globals(), Funcs: mod.Functions()}

	return pkg, nil
}
