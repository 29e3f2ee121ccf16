// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Store.
package bfs

import "errors"

// ErrStoreNil is returned if a nil store pointer is passed.
var ErrStoreNil = errors.New("bfs: store is nil")

// Option configures a traversal via functional arguments.
type Option func(*Options)

// Options holds the callbacks that customize a traversal.
type Options struct {
	// OnVisit is called when visiting a node. It may mutate the store: the
	// neighbors of the node are read after it returns, and queued nodes that
	// no longer exist are skipped. Returning an error aborts the search.
	OnVisit func(label string, depth int) error
}

// DefaultOptions returns Options with a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(string, int) error { return nil },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(label string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: labels visited, in visit sequence (skipped nodes excluded).
//   - Depth: label → distance in edges from its search root.
type Result struct {
	Order []string
	Depth map[string]int
}
