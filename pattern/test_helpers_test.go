// Package pattern_test holds shared fixtures for the pattern tests.
package pattern_test

import (
	"math/rand"
	"strconv"
)

// Tolerance for normalized sums.
const eps = 1e-9

// Penalty used by most scoring tests.
const penalty = 0.1

// twoBranches is the smallest corpus with rare successors: c and d are seen
// once, a and b twice.
func twoBranches() [][]string {
	return [][]string{{"a", "b", "c"}, {"a", "b", "d"}}
}

// rareStart adds a rare start token q next to the anchored a-branch.
func rareStart() [][]string {
	return [][]string{{"a", "x"}, {"a", "y"}, {"q", "x"}}
}

// longRun has a three-token rare run between anchors a and b.
func longRun() [][]string {
	return [][]string{
		{"a", "b"}, {"a", "b"}, {"a", "b"},
		{"a", "r1", "r2", "r3", "b"},
	}
}

// randomSamples draws n sequences of length 0..maxLen over an alphabet of
// size k, skewed so low indices are frequent.
func randomSamples(rng *rand.Rand, n, k, maxLen int) [][]string {
	out := make([][]string, n)
	for i := range out {
		l := rng.Intn(maxLen + 1)
		seq := make([]string, l)
		for j := range seq {
			idx := rng.Intn(k)
			if rng.Intn(2) == 0 {
				idx = rng.Intn(k/3 + 1)
			}
			seq[j] = "t" + strconv.Itoa(idx)
		}
		out[i] = seq
	}

	return out
}

// transitions counts token-to-token pairs in samples.
func transitions(samples [][]string) float64 {
	var n int
	for _, s := range samples {
		if len(s) > 1 {
			n += len(s) - 1
		}
	}

	return float64(n)
}
