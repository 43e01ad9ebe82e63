package treematch

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Cursor wraps one node while it is being matched. It owns a positional
// cursor into the node's children: every call to Child, FromChild or
// SkipChildren consumes children left to right, and when the assertion
// script for the node returns, the number of consumed children must equal
// the node's real child count (unless the subtree was declared ignored).
//
// A Cursor is created by the engine for every node it visits and must not be
// retained after the assertion script on that node has returned.
type Cursor[H any] struct {
	cfg      *Config[H]
	node     H
	parent   *Cursor[H] // nil for the root of the match
	ignored  bool       // child-matching calls are forbidden
	children []H        // snapshotted once at construction
	next     int        // index of the next unconsumed child
}

// Node returns the wrapped node, for arbitrary checks outside the engine's
// control (e.g. a leaf's literal value). Fail such checks through Failf or
// Check so they are annotated with the node's path.
func (c *Cursor[H]) Node() H {
	return c.node
}

// ChildCount returns the real number of children of the wrapped node.
func (c *Cursor[H]) ChildCount() int {
	return len(c.children)
}

// SkipChildren advances the child cursor by count without inspecting the
// skipped children. It fails if that would move past the real child count.
func (c *Cursor[H]) SkipChildren(count int) {
	c.guardChildOps("SkipChildren")
	if count < 0 {
		usagePanic("SkipChildren called with negative count %d", count)
	}
	if c.next+count > len(c.children) {
		c.failf("expected at least %d children, actual %d", c.next+count, len(c.children))
	}
	c.next += count
}

// SkipChild advances the child cursor past the next child.
func (c *Cursor[H]) SkipChild() {
	c.SkipChildren(1)
}

// Failf aborts the match with a failure located at the cursor's node.
func (c *Cursor[H]) Failf(format string, args ...interface{}) {
	c.failf(format, args...)
}

// Check aborts the match at the cursor's node if err is non-nil.
func (c *Cursor[H]) Check(err error) {
	if err != nil {
		c.failf("%s", err)
	}
}

func (c *Cursor[H]) failf(format string, args ...interface{}) {
	f := &Failure{msg: fmt.Sprintf(format, args...)}
	annotate(f, c.cfg, c)
	panic(f)
}

// guardChildOps panics if the cursor was constructed for an ignored subtree.
// Matching children of an ignored subtree is a bug in the script, not a
// mismatch in the data, and is therefore not reported as a regular failure.
func (c *Cursor[H]) guardChildOps(op string) {
	if c.ignored {
		usagePanic("%s called on a cursor whose children are ignored", op)
	}
}

// path returns the chain of nodes from the root of the match down to and
// including the cursor's node. Used only to build diagnostic messages.
func (c *Cursor[H]) path() []H {
	if c == nil {
		return nil
	}
	return append(c.parent.path(), c.node)
}

// Child matches the next unconsumed child of c against type M and runs
// assertions on it, returning the matched child. M may be the concrete type
// of the expected node or an interface it has to implement. A nil assertions
// script checks the type (and, with ignoreChildren unset, that the child is
// a leaf) and nothing else.
//
// With ignoreChildren set, the child's subtree is declared ignored: its
// child count is not verified and the script must not match its children.
func Child[M any, H any](c *Cursor[H], ignoreChildren bool, assertions func(*Cursor[H])) H {
	return FromChild[M](c, ignoreChildren, func(child *Cursor[H]) H {
		if assertions != nil {
			assertions(child)
		}
		return child.node
	})
}

// FromChild is the value-extracting form of Child and the single primitive
// both are built on: the script runs against the matched child and its
// result is returned to the enclosing scope. Use it to pull leaf values out
// of the tree while matching.
func FromChild[M any, H any, R any](c *Cursor[H], ignoreChildren bool, assertions func(*Cursor[H]) R) R {
	c.guardChildOps("FromChild")
	if c.next >= len(c.children) {
		c.failf("expected at least %d children, actual %d", c.next+1, len(c.children))
	}
	child := c.children[c.next]
	c.next++
	return matchNode[M](c.cfg, c, child, ignoreChildren, assertions)
}

// matchNode is the recursive heart of the engine. It type-checks candidate,
// verifies parent consistency where the adapter allows it, runs the
// assertion script against a fresh cursor, then the implicit assertion, and
// finally the child-count check. Type and parent failures are located at the
// parent's path; everything later at the candidate's own.
func matchNode[M any, H any, R any](cfg *Config[H], parent *Cursor[H], candidate H, ignoreChildren bool, assertions func(*Cursor[H]) R) R {
	label := "root"
	if parent != nil {
		// identity lookup, not the cursor's bookkeeping
		label = fmt.Sprintf("child #%d", indexOf(parent.children, candidate))
	}
	if _, ok := any(candidate).(M); !ok {
		failAt(cfg, parent, "Expected %s to have type %s, actual %s",
			label, typeName[M](), valueTypeName(candidate))
	}
	if pa, ok := cfg.adapter.(ParentAdapter[H]); ok && parent != nil {
		p, hasParent := pa.Parent(candidate)
		if !hasParent {
			failAt(cfg, parent, "Expected %s to have parent %s, actual none",
				label, cfg.adapter.Name(parent.node))
		} else if !identical(p, parent.node) {
			failAt(cfg, parent, "Expected %s to have parent %s, actual %s",
				label, cfg.adapter.Name(parent.node), cfg.adapter.Name(p))
		}
	}
	c := &Cursor[H]{
		cfg:      cfg,
		node:     candidate,
		parent:   parent,
		ignored:  ignoreChildren,
		children: cfg.adapter.Children(candidate),
	}
	tracer().Debugf("matching %s = %s, %d children", label, cfg.adapter.Name(candidate), len(c.children))
	result := runAssertions(c, assertions)
	if cfg.implicit != nil {
		if err := cfg.implicit(candidate); err != nil {
			c.failf("%s", err)
		}
	}
	if !ignoreChildren && c.next != len(c.children) {
		c.failf("wrong number of children, expected %d, actual %d", c.next, len(c.children))
	}
	return result
}

// runAssertions executes the script against c and annotates any failure
// escaping it with c's path, unless a deeper frame annotated it already.
// A panic from a generic assertion helper unaware of tree structure is
// wrapped into a located Failure here, at the innermost frame, so it too
// gains its path exactly once. Usage errors stay fatal and pass untouched.
func runAssertions[H any, R any](c *Cursor[H], assertions func(*Cursor[H]) R) R {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch f := r.(type) {
		case *Failure:
			annotate(f, c.cfg, c)
			panic(f)
		case usageError:
			panic(f)
		default:
			wrapped := &Failure{msg: fmt.Sprintf("panic: %v", r)}
			annotate(wrapped, c.cfg, c)
			panic(wrapped)
		}
	}()
	return assertions(c)
}

// indexOf locates child among its siblings by identity.
func indexOf[H any](children []H, child H) int {
	for i, ch := range children {
		if identical(ch, child) {
			return i
		}
	}
	return -1
}

func identical[H any](a, b H) bool {
	return any(a) == any(b)
}
