// File: view.go
// Role: Non-mutating views: Snapshot, Clone, String, and the CheckMirror audit.
// Determinism:
//   - Snapshot nodes follow NodeID order; edges are sorted by (From, To); start
//     states are sorted by label.
//   - String() lists nodes in NodeID order and neighbors lex asc.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// StartState is one entry of the start-state distribution.
type StartState struct {
	Label  string  `json:"label" yaml:"label"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// NodeView is the serializable form of a Node.
type NodeView struct {
	Label        string  `json:"label" yaml:"label"`
	Frequency    int     `json:"frequency" yaml:"frequency"`
	WildcardSpan float64 `json:"wildcard_span,omitempty" yaml:"wildcard_span,omitempty"`
}

// EdgeView is the serializable form of an Edge.
type EdgeView struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Snapshot is a read-only copy of the store for inspection and for persistence
// collaborators. It shares no memory with the store.
type Snapshot struct {
	MaxFrequency int          `json:"max_frequency" yaml:"max_frequency"`
	Nodes        []NodeView   `json:"nodes" yaml:"nodes"`
	Edges        []EdgeView   `json:"edges" yaml:"edges"`
	Start        []StartState `json:"start" yaml:"start"`
}

// Snapshot copies nodes, edges and start states in deterministic order.
// Complexity: O(V + E log E).
func (s *Store) Snapshot() *Snapshot {
	snap := &Snapshot{MaxFrequency: s.maxFrequency}
	for _, n := range s.Nodes() {
		snap.Nodes = append(snap.Nodes, NodeView{Label: n.Label, Frequency: n.Frequency, WildcardSpan: n.WildcardSpan})
	}
	for _, e := range s.Edges() {
		snap.Edges = append(snap.Edges, EdgeView{From: e.From, To: e.To, Weight: e.Weight})
	}
	for _, l := range s.StartLabels() {
		w, _ := s.StartWeight(l)
		snap.Start = append(snap.Start, StartState{Label: l, Weight: w})
	}

	return snap
}

// Clone returns a deep copy of the store. NodeIDs, dead slots and the logger
// are carried over so IDs stay stable across the copy.
// Complexity: O(V + E)
func (s *Store) Clone() *Store {
	c := &Store{
		vertices:     append([]vertex(nil), s.vertices...),
		index:        make(map[string]NodeID, len(s.index)),
		out:          make([]map[NodeID]float64, len(s.out)),
		in:           make([]map[NodeID]float64, len(s.in)),
		start:        make(map[NodeID]float64, len(s.start)),
		maxFrequency: s.maxFrequency,
		edgeCount:    s.edgeCount,
		logger:       s.logger,
	}
	for l, id := range s.index {
		c.index[l] = id
	}
	for i := range s.out {
		c.out[i] = copyWeights(s.out[i])
		c.in[i] = copyWeights(s.in[i])
	}
	for id, w := range s.start {
		c.start[id] = w
	}

	return c
}

// CheckMirror audits mirror consistency and node references.
// It returns an error wrapping ErrMirrorBroken for the first violation found,
// or ErrNodeNotFound when an edge or start state references a dead slot.
// Complexity: O(V + E).
func (s *Store) CheckMirror() error {
	for f, m := range s.out {
		for t, w := range m {
			if !s.vertices[f].alive || !s.vertices[t].alive {
				return fmt.Errorf("%w: edge %d→%d references a dead node", ErrNodeNotFound, f, t)
			}
			if iw, ok := s.in[t][NodeID(f)]; !ok || iw != w {
				return fmt.Errorf("%w: out[%s][%s]=%g in=%g present=%t",
					ErrMirrorBroken, s.vertices[f].label, s.vertices[t].label, w, iw, ok)
			}
		}
	}
	for t, m := range s.in {
		for f, w := range m {
			if ow, ok := s.out[f][NodeID(t)]; !ok || ow != w {
				return fmt.Errorf("%w: in[%s][%s]=%g out=%g present=%t",
					ErrMirrorBroken, s.vertices[t].label, s.vertices[f].label, w, ow, ok)
			}
		}
	}
	for id := range s.start {
		if !s.vertices[id].alive {
			return fmt.Errorf("%w: start state %d references a dead node", ErrNodeNotFound, id)
		}
	}

	return nil
}

// String dumps adjacency one node per line: "node -> (neigh, w) (neigh, w) ".
func (s *Store) String() string {
	var b strings.Builder
	for i := range s.vertices {
		if !s.vertices[i].alive || len(s.out[i]) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s -> ", s.vertices[i].label)
		ids := sortedIDs(s.out[i])
		sort.Slice(ids, func(a, c int) bool { return s.vertices[ids[a]].label < s.vertices[ids[c]].label })
		for _, t := range ids {
			fmt.Fprintf(&b, "(%s, %g) ", s.vertices[t].label, s.out[i][t])
		}
		b.WriteString("\n")
	}

	return b.String()
}

func copyWeights(m map[NodeID]float64) map[NodeID]float64 {
	if m == nil {
		return nil
	}
	out := make(map[NodeID]float64, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
