// Package bfs provides breadth-first traversal over a core.Store,
// returning hop distances and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/seqpattern/core"
)

// queueItem pairs a label with its depth below the current root.
type queueItem struct {
	label string
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	store   *core.Store
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Cover runs BFS from every live node not yet visited, in NodeID order, so
// every weakly reachable component is walked exactly once. Roots are taken
// from a snapshot of the labels; roots removed by an OnVisit hook are skipped.
//
// Returns ErrStoreNil or a wrapped OnVisit error, together with the partial
// Result gathered so far.
func Cover(s *core.Store, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrStoreNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := s.NodeCount()
	w := &walker{
		store:   s,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}

	for _, root := range s.Labels() {
		if w.visited[root] || !s.Has(root) {
			continue
		}
		w.enqueue(root, 0)
		if err := w.loop(); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// enqueue marks label visited at depth d and adds it to the queue.
func (w *walker) enqueue(label string, d int) {
	w.visited[label] = true
	w.res.Depth[label] = d
	w.queue = append(w.queue, queueItem{label: label, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		// absorbed by an earlier visit
		if !w.store.Has(item.label) {
			continue
		}
		w.res.Order = append(w.res.Order, item.label)
		if err := w.opts.OnVisit(item.label, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.label, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor. Neighbors are sorted, so
// the order is reproducible.
func (w *walker) enqueueNeighbors(item queueItem) {
	if !w.store.Has(item.label) {
		return
	}
	for _, nbr := range w.store.Neighbors(item.label) {
		if w.visited[nbr] {
			continue
		}
		w.enqueue(nbr, item.depth+1)
	}
}
