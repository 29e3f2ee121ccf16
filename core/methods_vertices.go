// File: methods_vertices.go
// Role: Node lifecycle & queries, frequency counters, start-state distribution.
//
// Determinism:
//   - Nodes() and Labels() enumerate live nodes in NodeID (insertion) order.
//   - StartStates() returns labels sorted lexicographically.

package core

import "sort"

// Ensure returns the ID of label, creating a node with frequency 0 if absent.
// Ensure panics on an empty label; use Lookup for untrusted input.
// Complexity: O(1) amortized.
func (s *Store) Ensure(label string) NodeID {
	if label == "" {
		panic(ErrEmptyLabel)
	}
	if id, ok := s.index[label]; ok {
		return id
	}
	id := NodeID(len(s.vertices))
	s.vertices = append(s.vertices, vertex{label: label, alive: true})
	s.out = append(s.out, nil)
	s.in = append(s.in, nil)
	s.index[label] = id

	return id
}

// Lookup reports the ID of a live node.
// Complexity: O(1).
func (s *Store) Lookup(label string) (NodeID, bool) {
	id, ok := s.index[label]
	return id, ok
}

// Has reports whether a live node with the given label exists.
func (s *Store) Has(label string) bool {
	_, ok := s.index[label]
	return ok
}

// Node returns the read view of a live node.
func (s *Store) Node(label string) (Node, bool) {
	id, ok := s.index[label]
	if !ok {
		return Node{}, false
	}

	return s.view(id), true
}

// Nodes returns all live nodes in NodeID order.
// Complexity: O(V)
func (s *Store) Nodes() []Node {
	out := make([]Node, 0, len(s.index))
	for i := range s.vertices {
		if s.vertices[i].alive {
			out = append(out, s.view(NodeID(i)))
		}
	}

	return out
}

// Labels returns the labels of all live nodes in NodeID order.
func (s *Store) Labels() []string {
	out := make([]string, 0, len(s.index))
	for i := range s.vertices {
		if s.vertices[i].alive {
			out = append(out, s.vertices[i].label)
		}
	}

	return out
}

// NodeCount returns the number of live nodes. O(1).
func (s *Store) NodeCount() int { return len(s.index) }

// IncrementFrequency bumps the frequency of label, creating the node if absent,
// and raises MaxFrequency when exceeded.
// Complexity: O(1).
func (s *Store) IncrementFrequency(label string) {
	id := s.Ensure(label)
	v := &s.vertices[id]
	v.frequency++
	if v.frequency > s.maxFrequency {
		s.maxFrequency = v.frequency
	}
}

// Frequency returns the frequency of label, 0 when absent.
func (s *Store) Frequency(label string) int {
	id, ok := s.index[label]
	if !ok {
		return 0
	}

	return s.vertices[id].frequency
}

// MaxFrequency returns the highest frequency ever reached by a node.
func (s *Store) MaxFrequency() int { return s.maxFrequency }

// SetWildcardSpan records the absorbed-node span of label.
// Returns ErrNodeNotFound if label is absent.
func (s *Store) SetWildcardSpan(label string, span float64) error {
	id, ok := s.index[label]
	if !ok {
		return ErrNodeNotFound
	}
	s.vertices[id].span = span

	return nil
}

// AddStart adds count to the start-state weight of label, creating the node if absent.
// Frequency is not touched.
func (s *Store) AddStart(label string, count float64) {
	id := s.Ensure(label)
	s.start[id] += count
}

// SetStartWeight overwrites the start-state weight of an existing start node.
// Returns ErrNodeNotFound if label is absent or not a start node.
func (s *Store) SetStartWeight(label string, w float64) error {
	id, ok := s.index[label]
	if !ok {
		return ErrNodeNotFound
	}
	if _, ok = s.start[id]; !ok {
		return ErrNodeNotFound
	}
	s.start[id] = w

	return nil
}

// StartWeight returns the start-state weight of label and whether it is a start node.
func (s *Store) StartWeight(label string) (float64, bool) {
	id, ok := s.index[label]
	if !ok {
		return 0, false
	}
	w, ok := s.start[id]

	return w, ok
}

// StartStates returns a copy of the start-state distribution keyed by label.
// Complexity: O(S).
func (s *Store) StartStates() map[string]float64 {
	out := make(map[string]float64, len(s.start))
	for id, w := range s.start {
		out[s.vertices[id].label] = w
	}

	return out
}

// StartLabels returns start-state labels sorted lexicographically.
func (s *Store) StartLabels() []string {
	out := make([]string, 0, len(s.start))
	for id := range s.start {
		out = append(out, s.vertices[id].label)
	}
	sort.Strings(out)

	return out
}

func (s *Store) view(id NodeID) Node {
	v := s.vertices[id]
	return Node{ID: id, Label: v.label, Frequency: v.frequency, WildcardSpan: v.span}
}
