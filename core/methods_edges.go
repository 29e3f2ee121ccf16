// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/TryGetEdge/HasEdge/Neighbors,
//       weight views and totals.
// Determinism:
//   - Neighbors() returns labels sorted lex asc.
//   - Edges() returns edges sorted by (From, To).
// Invariant:
//   - Every write touches out[from][to] and in[to][from] together.

package core

import (
	"errors"
	"log/slog"
	"sort"
)

// Edge is a read view of one directed edge.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// AddEdge adds weight to from→to, creating both nodes (frequency 0) if absent,
// and mirrors the result into the incoming map of to.
// Frequency counters are not touched.
//
// Complexity: O(1) amortized.
func (s *Store) AddEdge(from, to string, weight float64) {
	f := s.Ensure(from)
	t := s.Ensure(to)
	s.addEdge(f, t, weight)
}

// RemoveEdge deletes both mirrored entries of from→to.
// Returns ErrNodeNotFound for unknown labels and a *MissingEdgeError when
// either copy is absent; in that case any surviving copy is still removed
// and the inconsistency is logged at warn level.
//
// Complexity: O(1).
func (s *Store) RemoveEdge(from, to string) error {
	f, ok := s.index[from]
	if !ok {
		return ErrNodeNotFound
	}
	t, ok := s.index[to]
	if !ok {
		return ErrNodeNotFound
	}
	_, err := s.removeEdge(f, t)
	var me *MissingEdgeError
	if errors.As(err, &me) {
		s.logger.Warn("core: remove of missing edge",
			slog.String("from", me.From),
			slog.String("to", me.To),
			slog.Bool("out", me.OutPresent),
			slog.Bool("in", me.InPresent))
	}

	return err
}

// TryGetEdge returns the weight of from→to and whether the edge exists.
// Absence is a routine answer, not an error.
// Complexity: O(1).
func (s *Store) TryGetEdge(from, to string) (float64, bool) {
	f, ok := s.index[from]
	if !ok {
		return 0, false
	}
	t, ok := s.index[to]
	if !ok {
		return 0, false
	}
	w, ok := s.out[f][t]

	return w, ok
}

// HasEdge reports whether from→to exists.
func (s *Store) HasEdge(from, to string) bool {
	_, ok := s.TryGetEdge(from, to)
	return ok
}

// Neighbors returns the outgoing neighbor labels of label, sorted.
// Unknown labels and sink nodes yield an empty, non-nil slice.
// Complexity: O(d log d).
func (s *Store) Neighbors(label string) []string {
	id, ok := s.index[label]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(s.out[id]))
	for t := range s.out[id] {
		out = append(out, s.vertices[t].label)
	}
	sort.Strings(out)

	return out
}

// OutWeights returns a copy of the outgoing weights of label keyed by neighbor label.
func (s *Store) OutWeights(label string) map[string]float64 {
	id, ok := s.index[label]
	if !ok {
		return map[string]float64{}
	}

	return s.labelled(s.out[id])
}

// InWeights returns a copy of the incoming weights of label keyed by predecessor label.
func (s *Store) InWeights(label string) map[string]float64 {
	id, ok := s.index[label]
	if !ok {
		return map[string]float64{}
	}

	return s.labelled(s.in[id])
}

// SetEdgeWeight overwrites the weight of an existing edge on both mirrored copies.
// Returns a *MissingEdgeError if the edge is absent.
func (s *Store) SetEdgeWeight(from, to string, w float64) error {
	f, fok := s.index[from]
	t, tok := s.index[to]
	if !fok || !tok {
		return ErrNodeNotFound
	}
	_, outOK := s.out[f][t]
	_, inOK := s.in[t][f]
	if !outOK || !inOK {
		return &MissingEdgeError{From: from, To: to, OutPresent: outOK, InPresent: inOK}
	}
	s.out[f][t] = w
	s.in[t][f] = w

	return nil
}

// Edges returns every edge sorted by (From, To).
// Complexity: O(E log E).
func (s *Store) Edges() []Edge {
	out := make([]Edge, 0, s.edgeCount)
	for f, m := range s.out {
		for t, w := range m {
			out = append(out, Edge{From: s.vertices[f].label, To: s.vertices[t].label, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of distinct directed edges. O(1).
func (s *Store) EdgeCount() int { return s.edgeCount }

// TotalWeight returns the sum of all outgoing edge weights.
// Before normalization this is the number of ingested transitions.
// Complexity: O(E).
func (s *Store) TotalWeight() float64 {
	var total float64
	for _, m := range s.out {
		for _, w := range m {
			total += w
		}
	}

	return total
}

// addEdge adds w to f→t and mirrors it.
func (s *Store) addEdge(f, t NodeID, w float64) {
	if s.out[f] == nil {
		s.out[f] = make(map[NodeID]float64)
	}
	if s.in[t] == nil {
		s.in[t] = make(map[NodeID]float64)
	}
	if _, ok := s.out[f][t]; !ok {
		s.edgeCount++
	}
	s.out[f][t] += w
	s.in[t][f] = s.out[f][t]
}

// removeEdge deletes f→t from both maps and returns the removed weight.
// The outgoing copy is authoritative for the returned weight.
func (s *Store) removeEdge(f, t NodeID) (float64, error) {
	w, outOK := s.out[f][t]
	iw, inOK := s.in[t][f]
	if outOK {
		delete(s.out[f], t)
		s.edgeCount--
	}
	if inOK {
		delete(s.in[t], f)
	}
	if !outOK || !inOK {
		if !outOK {
			w = iw
		}
		return w, &MissingEdgeError{
			From:       s.vertices[f].label,
			To:         s.vertices[t].label,
			OutPresent: outOK,
			InPresent:  inOK,
		}
	}

	return w, nil
}

func (s *Store) labelled(m map[NodeID]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for id, w := range m {
		out[s.vertices[id].label] = w
	}

	return out
}
