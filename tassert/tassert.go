/*
Package tassert binds the treematch engine to Go's testing package (and to
anything else that can receive an Errorf call). The engine itself reports
through a single error-returning primitive; this package is the thin adapter
most test code will call instead.
*/
package tassert

import (
	"github.com/oowekyala/treematch"
)

// TestingT is the minimal testing surface the bindings report through.
// *testing.T implements it.
type TestingT interface {
	Errorf(format string, args ...interface{})
}

type tHelper interface {
	Helper()
}

// Subtree asserts that root has type M and the shape described by the
// assertions script. On mismatch the failure is reported through t and false
// is returned; the test keeps running, in the manner of testify's assert.
func Subtree[M any, H any](t TestingT, cfg *treematch.Config[H], root H, ignoreChildren bool, assertions func(*treematch.Cursor[H])) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := treematch.MatchSubtree[M](cfg, root, ignoreChildren, assertions); err != nil {
		t.Errorf("%s", err)
		return false
	}
	return true
}

// Extract is the value-extracting variant of Subtree. The second return is
// false (and the result the zero value) if the match failed.
func Extract[M any, H any, R any](t TestingT, cfg *treematch.Config[H], root H, ignoreChildren bool, assertions func(*treematch.Cursor[H]) R) (R, bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	result, err := treematch.ExtractSubtree[M](cfg, root, ignoreChildren, assertions)
	if err != nil {
		t.Errorf("%s", err)
		var zero R
		return zero, false
	}
	return result, true
}
