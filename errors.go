package treematch

import (
	"fmt"
	"reflect"
	"strings"
)

// dumpBanner separates a failure message from the subtree rendering that may
// follow it.
const dumpBanner = "The error occurred in the following subtree:"

// Failure is the error every mismatch surfaces as. All mismatch kinds share
// this one type: the engine's purpose is a readable test failure, not
// programmatic error discrimination, so they differ only in message.
//
// A Failure is annotated with the path of the node it was detected at,
// exactly once, at the innermost point of detection. The annotated flag is
// structural so that a failure propagating through several recursion levels
// is never prefixed twice.
type Failure struct {
	msg       string // what went wrong, without location
	path      string // "<root>" or "/A/B/C"
	dump      string // optional rendering of the subtree around the failure
	annotated bool
}

func (f *Failure) Error() string {
	if !f.annotated {
		return f.msg
	}
	var sb strings.Builder
	sb.WriteString("At ")
	sb.WriteString(f.path)
	sb.WriteString(": ")
	sb.WriteString(f.msg)
	if f.dump != "" {
		sb.WriteString("\n\n")
		sb.WriteString(dumpBanner)
		sb.WriteString("\n\n")
		sb.WriteString(f.dump)
	}
	return sb.String()
}

// Message returns the failure description without its location prefix.
func (f *Failure) Message() string {
	return f.msg
}

// Path returns the formatted location of the failure, or the empty string
// for failures raised before any node was entered.
func (f *Failure) Path() string {
	return f.path
}

// failf raises an un-annotated failure. Used only where no node has been
// entered yet (an absent root).
func failf(format string, args ...interface{}) {
	panic(&Failure{msg: fmt.Sprintf(format, args...)})
}

// failAt raises a failure located at the node wrapped by at. A nil cursor
// stands for the empty path, i.e. a failure at the match's entry.
func failAt[H any](cfg *Config[H], at *Cursor[H], format string, args ...interface{}) {
	f := &Failure{msg: fmt.Sprintf(format, args...)}
	annotate(f, cfg, at)
	panic(f)
}

// annotate attaches the path of c (and, if configured, a dump of c's node)
// to f. It is a no-op for failures that already carry a location.
func annotate[H any](f *Failure, cfg *Config[H], c *Cursor[H]) {
	if f.annotated {
		return
	}
	path := c.path()
	f.path = formatPath(cfg.adapter, path)
	if cfg.dump != nil && len(path) > 0 {
		f.dump = cfg.dump(path[len(path)-1], cfg.maxDumpDepth)
	}
	f.annotated = true
}

// formatPath renders a chain of nodes as "/A/B/C", or "<root>" for the empty
// path.
func formatPath[H any](a Adapter[H], path []H) string {
	if len(path) == 0 {
		return "<root>"
	}
	var sb strings.Builder
	for _, node := range path {
		sb.WriteString("/")
		sb.WriteString(a.Name(node))
	}
	return sb.String()
}

// usageError is the panic value signalling fatal misuse of the matcher API.
// Unlike a Failure it is never converted into an error result: a script bug
// has to surface as a panic, not as a data mismatch a test could assert on.
type usageError string

func (e usageError) Error() string {
	return string(e)
}

func usagePanic(format string, args ...interface{}) {
	panic(usageError("treematch: " + fmt.Sprintf(format, args...)))
}

// typeName returns the display name of the expected type M.
func typeName[M any]() string {
	return displayName(reflect.TypeOf((*M)(nil)).Elem())
}

// valueTypeName returns the display name of v's runtime type.
func valueTypeName(v interface{}) string {
	if v == nil {
		return "none"
	}
	return displayName(reflect.TypeOf(v))
}

func displayName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
