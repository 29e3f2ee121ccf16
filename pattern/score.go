package pattern

import (
	"fmt"
	"math"
)

// ScoreOption tunes a Score or Predict call.
type ScoreOption func(*scoreConfig)

type scoreConfig struct {
	spanScaling bool
}

// WithSpanScaling raises the wildcard penalty to the power max(1, span) of the
// wildcard taken, so wildcards that absorbed long runs weigh less.
// Without it every wildcard escape costs exactly one penalty factor.
func WithSpanScaling() ScoreOption {
	return func(c *scoreConfig) { c.spanScaling = true }
}

// Score returns how plausible sequence is under the normalized graph, in [0,1].
//
// The walk starts from the start probability of sequence[0], or of
// UniversalWildcard when sequence[0] is not a start state; with neither the
// score is 0. Each following token multiplies in the exact transition
// probability when present. Otherwise the most probable wildcard neighbor of
// the current node is taken at probability × penalty and the walk continues
// from that wildcard. With no escape the score is 0.
//
// Tokens carrying the wildcard prefix never match exactly.
// An empty sequence scores 0.
//
// Errors:
//   - ErrInvalidState before Normalize.
//   - ErrBadPenalty for penalty outside (0,1].
func (g *Graph) Score(sequence []string, penalty float64, opts ...ScoreOption) (float64, error) {
	cfg, err := g.scoreOptions(penalty, opts)
	if err != nil {
		return 0, err
	}

	return g.walk(sequence, penalty, cfg, nil), nil
}

func (g *Graph) scoreOptions(penalty float64, opts []ScoreOption) (scoreConfig, error) {
	var cfg scoreConfig
	if g.state != Normalized {
		return cfg, fmt.Errorf("%w: score in state %s", ErrInvalidState, g.state)
	}
	if !(penalty > 0 && penalty <= 1) {
		return cfg, fmt.Errorf("%w: %g outside (0,1]", ErrBadPenalty, penalty)
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, nil
}

// Step is one factor of a scoring walk.
type Step struct {
	// Token is the input token consumed by this step.
	Token string `json:"token" yaml:"token"`
	// Node is the graph node the walk moved to.
	Node string `json:"node" yaml:"node"`
	// Factor is the probability multiplied in, penalty included.
	Factor float64 `json:"factor" yaml:"factor"`
	// Wildcard is set when the step escaped through a wildcard.
	Wildcard bool `json:"wildcard,omitempty" yaml:"wildcard,omitempty"`
}

// Probe scores sequence like Score and also returns the walk that produced the
// score. The trace stops at the first token with no way forward; the score is 0
// in that case.
func (g *Graph) Probe(sequence []string, penalty float64, opts ...ScoreOption) (float64, []Step, error) {
	cfg, err := g.scoreOptions(penalty, opts)
	if err != nil {
		return 0, nil, err
	}
	var steps []Step
	p := g.walk(sequence, penalty, cfg, func(st Step) { steps = append(steps, st) })

	return p, steps, nil
}

// walk multiplies the factors of sequence, reporting each one to trace when set.
func (g *Graph) walk(sequence []string, penalty float64, cfg scoreConfig, trace func(Step)) float64 {
	if len(sequence) == 0 {
		return 0
	}
	emit := func(st Step) {
		if trace != nil {
			trace(st)
		}
	}

	cur := sequence[0]
	p, ok := g.startProbability(cur)
	if !ok {
		if p, ok = g.store.StartWeight(UniversalWildcard); !ok {
			return 0
		}
		cur = UniversalWildcard
	}
	emit(Step{Token: sequence[0], Node: cur, Factor: p, Wildcard: cur == UniversalWildcard})

	for _, tok := range sequence[1:] {
		if !IsWildcard(tok) {
			if w, ok := g.store.TryGetEdge(cur, tok); ok {
				p *= w
				cur = tok
				emit(Step{Token: tok, Node: tok, Factor: w})
				continue
			}
		}
		wc, w, ok := g.wildcardEscape(cur)
		if !ok {
			return 0
		}
		f := w * g.penaltyFor(wc, penalty, cfg)
		p *= f
		cur = wc
		emit(Step{Token: tok, Node: wc, Factor: f, Wildcard: true})
	}

	return p
}

func (g *Graph) startProbability(label string) (float64, bool) {
	if IsWildcard(label) {
		return 0, false
	}
	return g.store.StartWeight(label)
}

// wildcardEscape picks the most probable wildcard neighbor of cur; ties go to
// the lexicographically smallest label.
func (g *Graph) wildcardEscape(cur string) (string, float64, bool) {
	best, bestW, found := "", 0.0, false
	for _, nb := range g.store.Neighbors(cur) {
		if !IsWildcard(nb) {
			continue
		}
		w, _ := g.store.TryGetEdge(cur, nb)
		if !found || w > bestW {
			best, bestW, found = nb, w, true
		}
	}

	return best, bestW, found
}

func (g *Graph) penaltyFor(wildcard string, penalty float64, cfg scoreConfig) float64 {
	if !cfg.spanScaling {
		return penalty
	}
	n, _ := g.store.Node(wildcard)
	return math.Pow(penalty, math.Max(1, n.WildcardSpan))
}

// Predict scores every sequence independently against the same graph and
// returns the scores in input order.
func (g *Graph) Predict(sequences [][]string, penalty float64, opts ...ScoreOption) ([]float64, error) {
	out := make([]float64, len(sequences))
	for i, seq := range sequences {
		s, err := g.Score(seq, penalty, opts...)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}

	return out, nil
}
