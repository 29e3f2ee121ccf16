package pattern

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/seqpattern/core"
)

// Train builds a ready-to-score Graph from samples: ingest, simplify with th,
// normalize.
func Train(samples [][]string, th Threshold, opts ...Option) (*Graph, error) {
	g := New(opts...)
	if err := g.AddSamples(samples); err != nil {
		return nil, err
	}
	if _, err := g.Simplify(th); err != nil {
		return nil, err
	}
	if err := g.Normalize(); err != nil {
		return nil, err
	}

	return g, nil
}

// Clone returns an independent copy in the same lifecycle state, e.g. to
// simplify one corpus at several thresholds.
func (g *Graph) Clone() *Graph {
	return &Graph{store: g.store.Clone(), state: g.state, logger: g.logger}
}

// Snapshot returns a read-only copy of the graph for inspection or persistence.
func (g *Graph) Snapshot() *core.Snapshot { return g.store.Snapshot() }

// String dumps the adjacency one node per line.
func (g *Graph) String() string { return g.store.String() }

// Edge returns the weight (count or probability, depending on State) of from→to.
func (g *Graph) Edge(from, to string) (float64, bool) { return g.store.TryGetEdge(from, to) }

// Neighbors returns the sorted successor labels of label.
func (g *Graph) Neighbors(label string) []string { return g.store.Neighbors(label) }

// StartProbability returns the start weight of label and whether it is a start state.
func (g *Graph) StartProbability(label string) (float64, bool) { return g.store.StartWeight(label) }

// Node returns the read view of label.
func (g *Graph) Node(label string) (core.Node, bool) { return g.store.Node(label) }

// Nodes returns all live nodes in insertion order.
func (g *Graph) Nodes() []core.Node { return g.store.Nodes() }

// Wildcards returns the labels of wildcard nodes in insertion order.
func (g *Graph) Wildcards() []string {
	var out []string
	for _, l := range g.store.Labels() {
		if IsWildcard(l) {
			out = append(out, l)
		}
	}

	return out
}

// TotalWeight is the sum of all edge weights. Before Normalize it equals the
// number of ingested transitions and is unchanged by Simplify.
func (g *Graph) TotalWeight() float64 { return g.store.TotalWeight() }

// CheckInvariants verifies mirror consistency and, once normalized, that every
// outgoing row and the start distribution sum to 1 within tol.
func (g *Graph) CheckInvariants(tol float64) error {
	if err := g.store.CheckMirror(); err != nil {
		return err
	}
	if g.state != Normalized {
		return nil
	}
	starts := g.store.StartStates()
	if sum := floats.Sum(values(starts)); len(starts) > 0 && !scalar.EqualWithinAbs(sum, 1, tol) {
		return fmt.Errorf("pattern: start distribution sums to %g", sum)
	}
	for _, l := range g.store.Labels() {
		out := g.store.OutWeights(l)
		if len(out) == 0 {
			continue
		}
		if sum := floats.Sum(values(out)); !scalar.EqualWithinAbs(sum, 1, tol) {
			return fmt.Errorf("pattern: row %q sums to %g", l, sum)
		}
	}

	return nil
}

func values(m map[string]float64) []float64 {
	out := make([]float64, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}

	return out
}
