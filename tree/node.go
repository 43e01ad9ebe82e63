package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/oowekyala/treematch"
)

// Node is the base type our trees are built of. Nodes carry a payload of
// type parameter T and maintain parent back-links, so the hierarchy
// qualifies for the matcher's parent-consistency checks.
//
// Trees built from Nodes are mutable while under construction; the matcher
// contract assumes they are left alone for the duration of a match.
type Node[T comparable] struct {
	parent   *Node[T]
	children []*Node[T]
	Payload  T
}

// New creates a fresh, unconnected tree node with a given payload.
func New[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

// Branch creates a node with a given payload and attaches children to it.
// Handy for building fixtures in a single expression:
//
//	tree.Branch("Declaration",
//	    tree.Branch("Type", tree.New("Primitive")),
//	    tree.New("Declarator"))
func Branch[T comparable](payload T, children ...*Node[T]) *Node[T] {
	node := New(payload)
	for _, ch := range children {
		node.AddChild(ch)
	}
	return node
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends ch to node's children and connects it to node as its
// parent. It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		ch.parent = node
		node.children = append(node.children, ch)
	}
	return node
}

// Parent returns the parent node, or nil for the root of a tree.
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// ChildCount returns the number of children of node.
func (node *Node[T]) ChildCount() int {
	return len(node.children)
}

// Child returns the n-th child of node, if it exists.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || n >= len(node.children) {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a copy of node's list of children.
func (node *Node[T]) Children() []*Node[T] {
	return slices.Clone(node.children)
}

// IndexOfChild returns the position of ch among node's children, or -1 if it
// is not one of them.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	return slices.Index(node.children, ch)
}

// --- Matcher adapter -------------------------------------------------------

// Adapter returns a parent-aware matcher adapter for payload trees over T.
// Nodes are displayed by their payload's formatted value, so with string
// payloads a match path reads like "/Declaration/Type".
func Adapter[T comparable]() treematch.ParentAdapter[*Node[T]] {
	return adapter[T]{}
}

type adapter[T comparable] struct{}

func (adapter[T]) Name(node *Node[T]) string {
	return fmt.Sprint(node.Payload)
}

func (adapter[T]) Children(node *Node[T]) []*Node[T] {
	return node.Children()
}

func (adapter[T]) Parent(node *Node[T]) (*Node[T], bool) {
	p := node.Parent()
	return p, p != nil
}
