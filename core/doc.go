// Package core provides the Graph Store of a sequence pattern graph: an arena of
// labelled nodes with directed, weighted adjacency kept in both directions.
//
// The Store S = (V,E) keeps:
//
//   - Nodes in an arena addressed by stable integer NodeIDs; labels map to IDs
//     through a single index, so merges are index rewrites.
//   - Outgoing adjacency out[from][to] = weight and its mirror in[to][from] = weight.
//     Both copies always agree (mirror consistency).
//   - Per-node frequency counters and the global maximum frequency.
//   - A start-state distribution: node → count (or probability once normalized).
//
// Arena
//
//   - A merged-away node is marked dead and its label released; survivors keep
//     their IDs. CheckMirror audits both adjacency copies.
//
// Core Methods:
//
//	// Node lifecycle
//	Ensure(label string) NodeID              // O(1)
//	Lookup(label string) (NodeID, bool)      // O(1)
//	IncrementFrequency(label string)         // O(1)
//	MergeNodes(target, source string) error  // O(deg(source))
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64)       // O(1)
//	RemoveEdge(from, to string) error              // O(1)
//	TryGetEdge(from, to string) (float64, bool)    // O(1)
//	Neighbors(label string) []string               // O(d·log d), sorted
//
//	// Start states
//	AddStart(label string, count float64)          // O(1)
//	StartWeight(label string) (float64, bool)      // O(1)
//
//	// Views
//	Snapshot() *Snapshot   // O(V+E), deterministic order
//	Clone() *Store         // O(V+E)
//	CheckMirror() error    // O(V+E)
//
// Errors:
//
//	ErrEmptyLabel    – zero-length node label
//	ErrNodeNotFound  – label not present in the store
//	ErrMissingEdge   – a mirrored edge entry is absent (see MissingEdgeError)
//	ErrMirrorBroken  – out/in copies disagree (CheckMirror)
//
// Concurrency: a Store is not safe for concurrent mutation; callers serialize
// writers. Concurrent readers are safe once mutation has stopped.
package core
