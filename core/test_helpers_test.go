// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and assertion helpers for seqpattern/core.

package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqpattern/core"
)

// Common node labels used across core tests.
const (
	LabelEmpty = ""

	LabelA = "a"
	LabelB = "b"
	LabelC = "c"
	LabelD = "d"
	LabelX = "x"
)

// Common weights used across core tests.
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
)

// MustMirror fails the test if s violates mirror consistency.
func MustMirror(t *testing.T, s *core.Store, op string) {
	t.Helper()
	require.NoError(t, s.CheckMirror(), "%s: mirror check", op)
}

// RandomStore builds a store with n nodes and m random edges of weight 1,
// including self-loops and parallel insertions. It returns the total weight added.
func RandomStore(rng *rand.Rand, n, m int) (*core.Store, float64) {
	s := core.NewStore()
	for i := 0; i < n; i++ {
		s.Ensure(fmt.Sprintf("n%d", i))
	}
	var total float64
	for i := 0; i < m; i++ {
		from := fmt.Sprintf("n%d", rng.Intn(n))
		to := fmt.Sprintf("n%d", rng.Intn(n))
		s.AddEdge(from, to, Weight1)
		total += Weight1
	}
	for i := 0; i < n; i += 3 {
		s.AddStart(fmt.Sprintf("n%d", i), Weight1)
	}

	return s, total
}

// RandomStoreFixed is RandomStore with a fixed seed and size.
func RandomStoreFixed() (*core.Store, float64) {
	return RandomStore(rand.New(rand.NewSource(42)), 30, 200)
}
