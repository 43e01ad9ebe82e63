package treematch_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tm "github.com/oowekyala/treematch"
)

func TestFailureExposesMessageAndPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch")
	defer teardown()
	//
	err := tm.MatchSubtree[*Declaration](declConfig(), declTree(), false, func(decl *tm.Cursor[node]) {
		tm.Child[*Type](decl, true, nil) // Declarator left unaccounted for
	})
	require.Error(t, err)
	var f *tm.Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, "/Declaration", f.Path())
	assert.Contains(t, f.Message(), "wrong number of children")
	assert.NotContains(t, f.Message(), "At /")
}

func TestFailureMessageSegmentsMatchDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch")
	defer teardown()
	//
	err := tm.MatchSubtree[*Declaration](declConfig(), declTree(), false, func(decl *tm.Cursor[node]) {
		tm.Child[*Type](decl, false, func(typ *tm.Cursor[node]) {
			tm.Child[*Primitive](typ, false, func(prim *tm.Cursor[node]) {
				prim.Failf("boom")
			})
		})
		decl.SkipChild()
	})
	require.Error(t, err)
	var f *tm.Failure
	require.True(t, errors.As(err, &f))
	segments := strings.Count(f.Path(), "/")
	assert.Equal(t, 3, segments, "failure at depth 3 should carry 3 path segments, path = %q", f.Path())
}

func TestFailureAppendsSubtreeDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch")
	defer teardown()
	//
	var dumped []string
	cfg := tm.NewConfig[node](declAdapter{},
		tm.DumpWith(func(n node, maxDepth int) string {
			dumped = append(dumped, label(n))
			return "(" + label(n) + " …)"
		}),
	)
	err := tm.MatchSubtree[*Declaration](cfg, declTree(), false, func(decl *tm.Cursor[node]) {
		tm.Child[*Type](decl, false, func(typ *tm.Cursor[node]) {
			typ.Failf("no primitive here")
		})
	})
	require.Error(t, err)
	// the deepest node of the failure's path is rendered, exactly once
	assert.Equal(t, []string{"Type"}, dumped)
	lines := strings.Split(err.Error(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "At /Declaration/Type: no primitive here", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "The error occurred in the following subtree:", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "(Type …)", lines[4])
}

func TestNoDumpAtEmptyPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch")
	defer teardown()
	//
	cfg := tm.NewConfig[node](declAdapter{},
		tm.DumpWith(func(n node, maxDepth int) string {
			t.Error("printer must not run for a failure with an empty path")
			return ""
		}),
	)
	err := tm.MatchSubtree[*Expression](cfg, declTree(), true, nil)
	require.Error(t, err)
	assert.Equal(t, "At <root>: Expected root to have type Expression, actual Declaration", err.Error())
}

func TestMaxDumpDepthForwardedToPrinter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch")
	defer teardown()
	//
	seen := -999
	cfg := tm.NewConfig[node](declAdapter{},
		tm.DumpWith(func(n node, maxDepth int) string {
			seen = maxDepth
			return "…"
		}),
		tm.MaxDumpDepth[node](2),
	)
	err := tm.MatchSubtree[*Declaration](cfg, declTree(), false, nil)
	require.Error(t, err)
	assert.Equal(t, 2, seen)
}
