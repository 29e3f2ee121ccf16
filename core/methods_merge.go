// File: methods_merge.go
// Role: MergeNodes, the rewriting primitive used by simplification.
// Invariants preserved:
//   - Mirror consistency: every moved edge is removed and re-added through removeEdge/addEdge.
//   - Weight conservation: the total outgoing weight of the store is unchanged by a merge.
// Determinism:
//   - Edges are moved in ascending NodeID order of the far endpoint.

package core

import (
	"errors"
	"log/slog"
	"sort"
)

// MergeNodes folds source into target and deletes source.
//
// Steps:
//  1. Snapshot source's outgoing and incoming neighbor IDs.
//  2. Move every source→x edge to target→x (x==source becomes target→target),
//     summing on conflict.
//  3. Move every y→source edge to y→target, summing on conflict. Entries already
//     folded by step 2 (source self-loops) surface as MissingEdgeError, which is
//     logged at debug level and skipped.
//  4. Transfer source's start count into target and add its frequency to target
//     (MaxFrequency stays an ingestion statistic and is not raised).
//  5. Mark source dead and release its label.
//
// Self-merge (target == source) is a no-op. WildcardSpan is left to the caller.
// Returns ErrEmptyLabel or ErrNodeNotFound for bad arguments.
//
// Complexity: O(deg(source) · log deg(source)).
func (s *Store) MergeNodes(target, source string) error {
	if target == "" || source == "" {
		return ErrEmptyLabel
	}
	t, ok := s.index[target]
	if !ok {
		return ErrNodeNotFound
	}
	src, ok := s.index[source]
	if !ok {
		return ErrNodeNotFound
	}
	if t == src {
		return nil
	}
	s.merge(t, src)

	return nil
}

func (s *Store) merge(t, src NodeID) {
	outs := sortedIDs(s.out[src])
	ins := sortedIDs(s.in[src])

	for _, x := range outs {
		w, err := s.removeEdge(src, x)
		if err != nil {
			s.logFolded(err)
			continue
		}
		if x == src {
			x = t
		}
		s.addEdge(t, x, w)
	}

	for _, y := range ins {
		w, err := s.removeEdge(y, src)
		if err != nil {
			s.logFolded(err)
			continue
		}
		s.addEdge(y, t, w)
	}

	if c, ok := s.start[src]; ok {
		s.start[t] += c
		delete(s.start, src)
	}

	sv := &s.vertices[src]
	tv := &s.vertices[t]
	tv.frequency += sv.frequency

	delete(s.index, sv.label)
	sv.alive = false
	s.out[src] = nil
	s.in[src] = nil
}

// logFolded reports an expected "already gone" entry during a merge cascade.
func (s *Store) logFolded(err error) {
	var me *MissingEdgeError
	if errors.As(err, &me) {
		s.logger.Debug("merge: edge already folded",
			slog.String("from", me.From),
			slog.String("to", me.To),
			slog.Bool("out", me.OutPresent),
			slog.Bool("in", me.InPresent))
		return
	}
	s.logger.Warn("merge: unexpected edge error", slog.Any("err", err))
}

func sortedIDs(m map[NodeID]float64) []NodeID {
	ids := make([]NodeID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
