package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/minic-lang/minic/compiler"
	"github.com/minic-lang/minic/compiler/ast"
)

func main() {
	dumpCmd := &cli.Command{
		Name:   "dump",
		Action: dumpAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "minic",
		Description: "minic is a tool for exercising the minic ir generator",
		Commands: []*cli.Command{
			dumpCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

// dumpAct runs the generator over a small built-in sample compile unit
// and prints the resulting textual IR. No parser ships in this module,
// so there is no source file to read: this command exists to exercise
// the generator and the textual renderer end to end.
func dumpAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	root := sampleCompileUnit()

	pkg, err := compiler.Compile(ctx, "dump", root)
	if err != nil {
		return errors.Wrap(err, "compile sample")
	}

	fmt.Print(pkg.String())

	return nil
}

// sampleCompileUnit builds:
//
//	int main() {
//	    int x;
//	    x = 1 + 2;
//	    return x;
//	}
func sampleCompileUnit() *ast.Node {
	body := ast.BlockNode(true,
		ast.DeclStmtNode(ast.VarDeclNode(ast.IntTypeNode(), "x")),
		ast.AssignNode(ast.LeafVarIDNode("x"), ast.AddNode(ast.LeafUintNode(1), ast.LeafUintNode(2))),
		ast.ReturnNode(ast.LeafVarIDNode("x")),
	)

	fn := ast.FuncDefNode(ast.IntTypeNode(), "main", ast.FormalParamsNode(), body)

	return ast.CompileUnitNode(fn)
}
