package dump

import (
	tp "github.com/xlab/treeprint"

	"github.com/oowekyala/treematch"
)

// Subtree renders node and its descendants, as seen through adapter, in the
// usual box-drawing tree notation. maxDepth limits how many levels below
// node are included; 0 renders node alone, a negative depth renders the
// whole subtree.
func Subtree[H any](adapter treematch.Adapter[H], node H, maxDepth int) string {
	printer := tp.NewWithRoot(adapter.Name(node))
	if maxDepth != 0 {
		addChildren(printer, adapter, node, maxDepth)
	}
	return printer.String()
}

func addChildren[H any](printer tp.Tree, adapter treematch.Adapter[H], node H, depth int) {
	for _, ch := range adapter.Children(node) {
		if depth == 1 || len(adapter.Children(ch)) == 0 {
			printer.AddNode(adapter.Name(ch))
			continue
		}
		branch := printer.AddBranch(adapter.Name(ch))
		addChildren(branch, adapter, ch, depth-1)
	}
}

// Printer adapts Subtree to the callback shape expected by
// treematch.DumpWith, fixing the adapter.
func Printer[H any](adapter treematch.Adapter[H]) func(node H, maxDepth int) string {
	return func(node H, maxDepth int) string {
		tracer().Debugf("rendering subtree at %s, maxDepth=%d", adapter.Name(node), maxDepth)
		return Subtree(adapter, node, maxDepth)
	}
}
