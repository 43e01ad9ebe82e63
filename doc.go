/*
Package treematch asserts the shape of tree-structured objects, e.g. the
syntax trees produced by a parser.

Overview

Test code describes the expected shape of a (sub-)tree as a nested script of
matcher calls, and the engine walks the real tree in lock-step with that
script. A script may pin down every child, skip over children it does not
care about, declare whole subtrees as ignored, or extract values from deep
inside the tree while matching. On the first divergence the engine reports a
single failure whose message carries the path from the root down to the
offending node, optionally followed by a rendering of the subtree around it.

The engine knows nothing about concrete node types. Access to a hierarchy is
channelled through an Adapter, which exposes the two facts the engine needs:
a node's ordered children and a display name. Hierarchies which maintain
parent back-links may provide a ParentAdapter instead, enabling opportunistic
parent-consistency checks during the match.

A typical script looks like this (using a hierarchy of AST nodes):

   cfg := treematch.NewConfig[ast.Node](astAdapter{})
   err := treematch.MatchSubtree[*ast.FuncDecl](cfg, root, false,
       func(fn *treematch.Cursor[ast.Node]) {
           treematch.Child[*ast.Ident](fn, false, func(name *treematch.Cursor[ast.Node]) {
               // arbitrary checks against name.Node()
           })
           fn.SkipChild()
           treematch.Child[*ast.BlockStmt](fn, true, nil) // subtree ignored
       })

Matching is synchronous and fail-fast: the first violated expectation aborts
the match and surfaces as the returned error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treematch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treematch'.
func tracer() tracing.Trace {
	return tracing.Select("treematch")
}
