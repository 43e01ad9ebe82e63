/*
Package sitteradapter exposes tree-sitter parse trees to the treematch
engine, so the concrete syntax produced by any tree-sitter grammar can be
asserted on directly.

The adapter is not parent-aware: tree-sitter may materialize a fresh node
handle on every accessor call, so a parent fetched through the C API need
not be identical to the node the engine descended from.
*/
package sitteradapter

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oowekyala/treematch"
)

// Adapter adapts *sitter.Node hierarchies. The zero value exposes every
// child; set Named to hide anonymous token nodes (keywords, punctuation)
// and match against the named tree only.
type Adapter struct {
	Named bool
}

var _ treematch.Adapter[*sitter.Node] = Adapter{}

// Name returns the node's grammar type, e.g. "source_file".
func (a Adapter) Name(node *sitter.Node) string {
	return node.Type()
}

// Children returns the node's children, honoring the Named setting.
func (a Adapter) Children(node *sitter.Node) []*sitter.Node {
	if a.Named {
		count := int(node.NamedChildCount())
		children := make([]*sitter.Node, count)
		for i := range children {
			children[i] = node.NamedChild(i)
		}
		return children
	}
	count := int(node.ChildCount())
	children := make([]*sitter.Node, count)
	for i := range children {
		children[i] = node.Child(i)
	}
	return children
}
