package pattern

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seqpattern/core"
	"github.com/katalvlaran/seqpattern/dijkstra"
)

// PathOption tunes a MostLikelyPath call.
type PathOption func(*pathConfig)

type pathConfig struct {
	minProb float64
	bounded bool
}

// WithMinProbability drops chains whose probability falls below p.
// A target reachable only through such chains reports dijkstra.ErrNoPath.
// p must lie in (0,1].
func WithMinProbability(p float64) PathOption {
	return func(c *pathConfig) {
		c.minProb = p
		c.bounded = true
	}
}

// MostLikelyPath returns the most probable chain of transitions from one node
// to another in the normalized graph, and the product of its probabilities.
// Wildcard labels are valid endpoints.
//
// Errors:
//   - ErrInvalidState before Normalize.
//   - ErrBadProbability for a WithMinProbability value outside (0,1].
//   - core.ErrNodeNotFound for an unknown endpoint.
//   - dijkstra.ErrNoPath when to is unreachable from from.
func (g *Graph) MostLikelyPath(from, to string, opts ...PathOption) ([]string, float64, error) {
	if g.state != Normalized {
		return nil, 0, fmt.Errorf("%w: path in state %s", ErrInvalidState, g.state)
	}
	var cfg pathConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	maxCost := math.Inf(1)
	if cfg.bounded {
		if !(cfg.minProb > 0 && cfg.minProb <= 1) {
			return nil, 0, fmt.Errorf("%w: %g outside (0,1]", ErrBadProbability, cfg.minProb)
		}
		maxCost = dijkstra.NegLog(cfg.minProb)
	}
	if !g.store.Has(to) {
		return nil, 0, fmt.Errorf("%w: %q", core.ErrNodeNotFound, to)
	}
	if !g.store.Has(from) {
		return nil, 0, fmt.Errorf("%w: %q", core.ErrNodeNotFound, from)
	}
	dist, prev, err := dijkstra.Dijkstra(g.store,
		dijkstra.Source(from),
		dijkstra.WithCost(dijkstra.NegLog),
		dijkstra.WithReturnPath(),
		dijkstra.WithMaxDistance(maxCost),
	)
	if err != nil {
		return nil, 0, err
	}
	path, err := dijkstra.Path(prev, from, to)
	if err != nil {
		return nil, 0, err
	}

	return path, math.Exp(-dist[to]), nil
}
