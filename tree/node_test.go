package tree_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oowekyala/treematch"
	"github.com/oowekyala/treematch/tree"
)

func declFixture() *tree.Node[string] {
	return tree.Branch("Declaration",
		tree.Branch("Type", tree.New("Primitive")),
		tree.New("Declarator"))
}

func TestNodeConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch")
	defer teardown()
	//
	root := declFixture()
	if root.ChildCount() != 2 {
		t.Logf("root = %s", root)
		t.Errorf("expected root to have 2 children, has %d", root.ChildCount())
	}
	typ, ok := root.Child(0)
	require.True(t, ok)
	assert.Equal(t, "Type", typ.Payload)
	assert.Same(t, root, typ.Parent())
	assert.Equal(t, 0, root.IndexOfChild(typ))
	if _, ok := root.Child(2); ok {
		t.Error("expected child #2 to not exist")
	}
	assert.Equal(t, -1, root.IndexOfChild(tree.New("Stranger")))
}

func TestNodeChildrenIsACopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch")
	defer teardown()
	//
	root := declFixture()
	children := root.Children()
	children[0] = nil
	ch, ok := root.Child(0)
	require.True(t, ok)
	assert.NotNil(t, ch, "mutating the returned slice must not affect the node")
}

func TestAdapterMatchesPayloadTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch")
	defer teardown()
	//
	cfg := treematch.NewConfig[*tree.Node[string]](tree.Adapter[string]())
	root := declFixture()
	err := treematch.MatchSubtree[*tree.Node[string]](cfg, root, false, func(decl *treematch.Cursor[*tree.Node[string]]) {
		treematch.Child[*tree.Node[string]](decl, false, func(typ *treematch.Cursor[*tree.Node[string]]) {
			if typ.Node().Payload != "Type" {
				typ.Failf("expected payload Type, actual %s", typ.Node().Payload)
			}
			typ.SkipChild()
		})
		decl.SkipChild()
	})
	assert.NoError(t, err)
}

func TestAdapterPathUsesPayloads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch")
	defer teardown()
	//
	cfg := treematch.NewConfig[*tree.Node[string]](tree.Adapter[string]())
	err := treematch.MatchSubtree[*tree.Node[string]](cfg, declFixture(), false, func(decl *treematch.Cursor[*tree.Node[string]]) {
		treematch.Child[*tree.Node[string]](decl, false, func(typ *treematch.Cursor[*tree.Node[string]]) {
			typ.Failf("wrong type node")
		})
		decl.SkipChild()
	})
	require.Error(t, err)
	assert.Equal(t, "At /Declaration/Type: wrong type node", err.Error())
}

func TestAdapterDetectsForeignChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch")
	defer teardown()
	//
	// a child adopted by two parents keeps only the latest back-link
	shared := tree.New("Shared")
	left := tree.Branch("Left", shared)
	_ = tree.Branch("Right", shared)
	cfg := treematch.NewConfig[*tree.Node[string]](tree.Adapter[string]())
	err := treematch.MatchSubtree[*tree.Node[string]](cfg, left, false, func(l *treematch.Cursor[*tree.Node[string]]) {
		treematch.Child[*tree.Node[string]](l, true, nil)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected child #0 to have parent Left, actual Right")
}
