/*

Process of translation

Abstract Syntax Tree (ast) ->
	generate ->
Intermediate Representation (ir) ->
	render ->
Textual IR

This module implements only the generate stage: a tree-directed walk
over an already-built ast.Node tree that emits one ir.Function per
FUNC_DEF, each a flat sequence of Entry/Label/Move/Binary/Unary/
Branch/Goto/FuncCall/Exit instructions. No parser ships here; callers
construct the ast.Node tree themselves (see the constructors in
ast/builder.go, such as ast.FuncDefNode) or obtain one
from elsewhere.

*/
package compiler
