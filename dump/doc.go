/*
Package dump renders subtrees as ASCII art, for embedding into failure
messages produced by package treematch.
*/
package dump

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treematch.dump'.
func tracer() tracing.Trace {
	return tracing.Select("treematch.dump")
}
