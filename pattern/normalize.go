package pattern

import (
	"fmt"
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Normalize converts raw counts into probabilities: start weights are divided
// by their sum and each node's outgoing weights by that node's outgoing total.
// Incoming copies are rewritten alongside, so mirror consistency holds.
//
// Normalize must be called exactly once on raw counts. A second call divides
// probabilities again and yields a degenerate distribution; it is not guarded.
// After Normalize the graph is read-only.
func (g *Graph) Normalize() error {
	starts := g.store.StartLabels()
	weights := make([]float64, len(starts))
	for i, l := range starts {
		weights[i], _ = g.store.StartWeight(l)
	}
	if total := floats.Sum(weights); total > 0 {
		for i, l := range starts {
			if err := g.store.SetStartWeight(l, weights[i]/total); err != nil {
				return fmt.Errorf("pattern: normalize start %q: %w", l, err)
			}
		}
	}

	rows := 0
	for _, from := range g.store.Labels() {
		out := g.store.OutWeights(from)
		if len(out) == 0 {
			continue
		}
		to := make([]string, 0, len(out))
		for l := range out {
			to = append(to, l)
		}
		sort.Strings(to)
		row := make([]float64, len(to))
		for i, l := range to {
			row[i] = out[l]
		}
		total := floats.Sum(row)
		if total == 0 {
			continue
		}
		for i, l := range to {
			if err := g.store.SetEdgeWeight(from, l, row[i]/total); err != nil {
				return fmt.Errorf("pattern: normalize edge %q→%q: %w", from, l, err)
			}
		}
		rows++
	}

	g.state = Normalized
	g.logger.Info("pattern: normalized",
		slog.Int("start_states", len(starts)),
		slog.Int("rows", rows))

	return nil
}
