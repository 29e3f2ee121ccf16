// Package bfs provides breadth-first traversal over a core.Store along
// outgoing edges, returning hop distances and visit order.
//
// What
//
//   - Cover walks every weakly reachable component once, rooting a new search
//     at each unvisited live node in insertion order.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: label → distance (edges) from its root
//   - OnVisit runs on every visited node; it may mutate the store or abort
//     with an error.
//
// Mutation during traversal
//
//	OnVisit may merge nodes. Neighbors are read after the hook returns, so
//	edges redirected by a merge are followed, and queued nodes that were
//	merged away are skipped without being visited.
//
// Determinism
//
//	core.Store.Neighbors returns labels sorted, and roots follow NodeID order,
//	so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E log E) without hooks
//   - Memory: O(V)
//
// Usage
//
//	_, err := bfs.Cover(store,
//		bfs.WithOnVisit(func(label string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrStoreNil if the store pointer is nil.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
