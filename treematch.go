package treematch

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"reflect"
)

// Adapter gives the engine structural access to an otherwise opaque node
// hierarchy H. Implementations must be stateless: for a given node, Children
// has to return the same sequence for the duration of one match (the tree is
// logically frozen while it is being matched).
//
// H will usually be an interface or pointer type. The engine compares nodes
// by identity, so node values must be comparable with ==.
type Adapter[H any] interface {
	// Name returns a display name for node, used in paths and messages.
	Name(node H) string
	// Children returns the ordered children of node.
	Children(node H) []H
}

// ParentAdapter is an optional extension of Adapter for hierarchies which
// maintain parent back-links. When the configured adapter implements it, the
// engine verifies for every matched child that the child's recorded parent is
// the node it was reached from. The root's own parent is never inspected.
type ParentAdapter[H any] interface {
	Adapter[H]
	// Parent returns the parent of node, or false if node has none.
	Parent(node H) (H, bool)
}

// Config bundles everything a match needs besides the tree itself: the
// adapter, an optional subtree renderer for failure messages, and an optional
// implicit assertion run against every matched node. A Config is immutable
// after construction and may be shared across a test suite.
type Config[H any] struct {
	adapter      Adapter[H]
	dump         func(node H, maxDepth int) string
	implicit     func(node H) error
	maxDumpDepth int
}

// Option configures a Config during construction.
type Option[H any] func(*Config[H])

// DumpWith installs a subtree renderer. When a match fails below the root,
// the failure message is extended with a rendering of the subtree around the
// failure, produced by dump. Package dump provides a ready-made renderer.
func DumpWith[H any](dump func(node H, maxDepth int) string) Option[H] {
	return func(cfg *Config[H]) {
		cfg.dump = dump
	}
}

// ImplicitlyAssert installs a check which the engine runs against every node
// it successfully matched, after the node's own children are done. Use it to
// centralize invariants that should hold everywhere in a hierarchy. A non-nil
// return fails the match at the node's path.
func ImplicitlyAssert[H any](check func(node H) error) Option[H] {
	return func(cfg *Config[H]) {
		cfg.implicit = check
	}
}

// MaxDumpDepth limits how deep the subtree renderer descends when a failure
// message is built. The default is unlimited.
func MaxDumpDepth[H any](depth int) Option[H] {
	return func(cfg *Config[H]) {
		cfg.maxDumpDepth = depth
	}
}

// NewConfig creates a matching configuration for a hierarchy accessed
// through adapter.
func NewConfig[H any](adapter Adapter[H], opts ...Option[H]) *Config[H] {
	cfg := &Config[H]{
		adapter:      adapter,
		maxDumpDepth: -1, // unlimited
	}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// MatchSubtree asserts that root has type M and the shape described by the
// assertions script. It is the entry point most callers use; everything else
// is reached through the Cursor handed to the script.
//
// If ignoreChildren is set, root's children are neither counted nor
// matchable from the script. A nil-shaped root (nil interface, nil pointer)
// fails immediately.
func MatchSubtree[M any, H any](cfg *Config[H], root H, ignoreChildren bool, assertions func(*Cursor[H])) error {
	_, err := ExtractSubtree[M](cfg, root, ignoreChildren, func(c *Cursor[H]) H {
		if assertions != nil {
			assertions(c)
		}
		return c.node
	})
	return err
}

// ExtractSubtree is the value-extracting variant of MatchSubtree: the script
// may compute an arbitrary result while matching, which is handed back to
// the caller together with the match outcome. MatchSubtree is a thin wrapper
// over this primitive.
func ExtractSubtree[M any, H any, R any](cfg *Config[H], root H, ignoreChildren bool, assertions func(*Cursor[H]) R) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Failure)
			if !ok {
				panic(r) // usage errors and unrelated panics stay fatal
			}
			err = f
		}
	}()
	if isNone(root) {
		failf("expected node of type %s, but was none", typeName[M]())
	}
	tracer().Debugf("matching subtree rooted at %s", cfg.adapter.Name(root))
	result = matchNode[M](cfg, nil, root, ignoreChildren, assertions)
	return result, nil
}

// isNone reports whether v is an absent node: a nil interface, or a nil value
// of a pointer-shaped type.
func isNone[H any](v H) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
