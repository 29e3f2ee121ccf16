// SPDX-License-Identifier: MIT
// Package core_test verifies core.Store method-level contracts.

package core_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqpattern/core"
)

// TestStore_AddEdgeMirrors verifies AddEdge creates nodes, sums weights and mirrors them.
func TestStore_AddEdgeMirrors(t *testing.T) {
	s := core.NewStore()
	s.AddEdge(LabelA, LabelB, Weight1)
	s.AddEdge(LabelA, LabelB, Weight2)

	require.True(t, s.Has(LabelA))
	require.True(t, s.Has(LabelB))
	require.Equal(t, 0, s.Frequency(LabelA), "AddEdge must not touch frequency")

	w, ok := s.TryGetEdge(LabelA, LabelB)
	require.True(t, ok)
	require.Equal(t, Weight3, w)
	require.Equal(t, Weight3, s.InWeights(LabelB)[LabelA])
	require.Equal(t, 1, s.EdgeCount())
	MustMirror(t, s, "AddEdge")
}

// TestStore_TryGetEdgeAbsent verifies absence is reported without error.
func TestStore_TryGetEdgeAbsent(t *testing.T) {
	s := core.NewStore()
	s.AddEdge(LabelA, LabelB, Weight1)

	_, ok := s.TryGetEdge(LabelB, LabelA)
	require.False(t, ok)
	_, ok = s.TryGetEdge(LabelX, LabelA)
	require.False(t, ok)
	require.False(t, s.HasEdge(LabelA, LabelX))
}

// TestStore_RemoveEdge verifies removal of both mirrored entries and the MissingEdge signal.
func TestStore_RemoveEdge(t *testing.T) {
	s := core.NewStore()
	s.AddEdge(LabelA, LabelB, Weight1)

	require.NoError(t, s.RemoveEdge(LabelA, LabelB))
	require.False(t, s.HasEdge(LabelA, LabelB))
	require.Empty(t, s.InWeights(LabelB))
	require.Equal(t, 0, s.EdgeCount())

	err := s.RemoveEdge(LabelA, LabelB)
	require.ErrorIs(t, err, core.ErrMissingEdge)
	var me *core.MissingEdgeError
	require.True(t, errors.As(err, &me))
	require.Equal(t, LabelA, me.From)
	require.Equal(t, LabelB, me.To)
	require.False(t, me.OutPresent)
	require.False(t, me.InPresent)

	require.ErrorIs(t, s.RemoveEdge(LabelX, LabelA), core.ErrNodeNotFound)
	MustMirror(t, s, "RemoveEdge")
}

// TestStore_RemoveEdgeLogsMissing verifies a missing edge is reported on the store logger.
func TestStore_RemoveEdgeLogsMissing(t *testing.T) {
	var buf bytes.Buffer
	s := core.NewStore(core.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	s.AddEdge(LabelA, LabelB, Weight1)

	require.NoError(t, s.RemoveEdge(LabelA, LabelB))
	require.Empty(t, buf.String(), "a present edge is removed silently")

	require.ErrorIs(t, s.RemoveEdge(LabelA, LabelB), core.ErrMissingEdge)
	line := buf.String()
	require.Contains(t, line, "level=WARN")
	require.Contains(t, line, "remove of missing edge")
	require.Contains(t, line, "from="+LabelA)
	require.Contains(t, line, "to="+LabelB)
	require.Contains(t, line, "out=false")
	require.Contains(t, line, "in=false")
}

// TestStore_Neighbors verifies sorted outgoing labels and the empty-set contract.
func TestStore_Neighbors(t *testing.T) {
	s := core.NewStore()
	s.AddEdge(LabelA, LabelD, Weight1)
	s.AddEdge(LabelA, LabelB, Weight1)
	s.AddEdge(LabelA, LabelC, Weight1)

	require.Equal(t, []string{LabelB, LabelC, LabelD}, s.Neighbors(LabelA))
	require.NotNil(t, s.Neighbors(LabelB))
	require.Empty(t, s.Neighbors(LabelB))
	require.Empty(t, s.Neighbors(LabelX))
}

// TestStore_Frequency verifies counters and the running maximum.
func TestStore_Frequency(t *testing.T) {
	s := core.NewStore()
	s.IncrementFrequency(LabelA)
	s.IncrementFrequency(LabelA)
	s.IncrementFrequency(LabelB)

	require.Equal(t, 2, s.Frequency(LabelA))
	require.Equal(t, 1, s.Frequency(LabelB))
	require.Equal(t, 0, s.Frequency(LabelX))
	require.Equal(t, 2, s.MaxFrequency())
}

// TestStore_EnsureEmptyPanics verifies the empty-label guard.
func TestStore_EnsureEmptyPanics(t *testing.T) {
	s := core.NewStore()
	require.Panics(t, func() { s.Ensure(LabelEmpty) })
}

// TestStore_MergeNodes verifies redirection, summing, start transfer and deletion.
func TestStore_MergeNodes(t *testing.T) {
	s := core.NewStore()
	// a→c, b→c, c→d, a→b ; merge c into b
	s.AddEdge(LabelA, LabelC, Weight1)
	s.AddEdge(LabelB, LabelC, Weight2)
	s.AddEdge(LabelC, LabelD, Weight3)
	s.AddEdge(LabelA, LabelB, Weight1)
	s.AddStart(LabelC, Weight2)
	s.IncrementFrequency(LabelC)
	s.IncrementFrequency(LabelB)
	before := s.TotalWeight()

	require.NoError(t, s.MergeNodes(LabelB, LabelC))

	require.False(t, s.Has(LabelC))
	ab, _ := s.TryGetEdge(LabelA, LabelB)
	require.Equal(t, 2.0, ab, "a→c folded onto a→b")
	bb, _ := s.TryGetEdge(LabelB, LabelB)
	require.Equal(t, Weight2, bb, "b→c becomes a self-loop")
	bd, _ := s.TryGetEdge(LabelB, LabelD)
	require.Equal(t, Weight3, bd)
	sw, ok := s.StartWeight(LabelB)
	require.True(t, ok)
	require.Equal(t, Weight2, sw)
	require.Equal(t, 2, s.Frequency(LabelB))
	require.Equal(t, before, s.TotalWeight())
	MustMirror(t, s, "MergeNodes")
}

// TestStore_MergeSelfLoops verifies self-loops on the source fold onto the target.
func TestStore_MergeSelfLoops(t *testing.T) {
	s := core.NewStore()
	s.AddEdge(LabelC, LabelC, Weight2)
	s.AddEdge(LabelB, LabelC, Weight1)
	s.AddEdge(LabelC, LabelB, Weight1)

	require.NoError(t, s.MergeNodes(LabelB, LabelC))
	bb, ok := s.TryGetEdge(LabelB, LabelB)
	require.True(t, ok)
	require.Equal(t, 4.0, bb)
	require.Equal(t, 1, s.EdgeCount())
	MustMirror(t, s, "MergeNodes self-loop")
}

// TestStore_MergeEdgeCases verifies self-merge no-op and argument errors.
func TestStore_MergeEdgeCases(t *testing.T) {
	s := core.NewStore()
	s.AddEdge(LabelA, LabelB, Weight1)

	require.NoError(t, s.MergeNodes(LabelA, LabelA))
	require.True(t, s.Has(LabelA))
	require.ErrorIs(t, s.MergeNodes(LabelA, LabelX), core.ErrNodeNotFound)
	require.ErrorIs(t, s.MergeNodes(LabelX, LabelA), core.ErrNodeNotFound)
	require.ErrorIs(t, s.MergeNodes(LabelEmpty, LabelA), core.ErrEmptyLabel)
}

// TestStore_MergeLabelReuse verifies a merged-away label can be recreated as a fresh node.
func TestStore_MergeLabelReuse(t *testing.T) {
	s := core.NewStore()
	s.AddEdge(LabelA, LabelB, Weight1)
	oldID, _ := s.Lookup(LabelB)
	require.NoError(t, s.MergeNodes(LabelA, LabelB))

	newID := s.Ensure(LabelB)
	require.NotEqual(t, oldID, newID, "arena slots are never reused")
	require.Equal(t, 0, s.Frequency(LabelB))
}

// TestStore_MergeConservationProperty merges random node pairs on random graphs and
// checks mirror consistency and total weight after every merge.
func TestStore_MergeConservationProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		s, total := RandomStore(rng, 12, 40)
		for i := 0; i < 8; i++ {
			labels := s.Labels()
			if len(labels) < 2 {
				break
			}
			target := labels[rng.Intn(len(labels))]
			source := labels[rng.Intn(len(labels))]
			require.NoError(t, s.MergeNodes(target, source))
			MustMirror(t, s, "random merge")
			require.InDelta(t, total, s.TotalWeight(), 1e-9, "round %d merge %d", round, i)
		}
	}
}

// TestStore_SetEdgeWeight verifies both copies are overwritten.
func TestStore_SetEdgeWeight(t *testing.T) {
	s := core.NewStore()
	s.AddEdge(LabelA, LabelB, Weight2)
	require.NoError(t, s.SetEdgeWeight(LabelA, LabelB, 0.5))
	require.Equal(t, 0.5, s.OutWeights(LabelA)[LabelB])
	require.Equal(t, 0.5, s.InWeights(LabelB)[LabelA])
	require.ErrorIs(t, s.SetEdgeWeight(LabelB, LabelA, 1), core.ErrMissingEdge)
}

// TestStore_StartStates verifies start weights and their copies.
func TestStore_StartStates(t *testing.T) {
	s := core.NewStore()
	s.AddStart(LabelB, Weight1)
	s.AddStart(LabelA, Weight2)
	s.AddStart(LabelA, Weight1)

	require.Equal(t, []string{LabelA, LabelB}, s.StartLabels())
	w, ok := s.StartWeight(LabelA)
	require.True(t, ok)
	require.Equal(t, Weight3, w)
	_, ok = s.StartWeight(LabelX)
	require.False(t, ok)

	states := s.StartStates()
	states[LabelA] = 100
	w, _ = s.StartWeight(LabelA)
	require.Equal(t, Weight3, w, "StartStates must return a copy")

	require.NoError(t, s.SetStartWeight(LabelA, 0.75))
	require.ErrorIs(t, s.SetStartWeight(LabelX, 1), core.ErrNodeNotFound)
}
