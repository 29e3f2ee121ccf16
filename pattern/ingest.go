package pattern

import (
	"fmt"
	"log/slog"
)

// AddSample ingests one token sequence.
//
// sequence[0] is recorded as a start occurrence (frequency and start count);
// each consecutive pair adds a transition of weight 1 and bumps the frequency
// of its second token. An empty sequence is ignored.
//
// The sequence is validated before any mutation, so a rejected sample leaves
// the graph untouched.
//
// Errors:
//   - ErrInvalidState once Simplify or Normalize has run.
//   - ErrEmptyToken, ErrReservedLabel for bad tokens.
func (g *Graph) AddSample(sequence []string) error {
	if g.state != Building {
		return fmt.Errorf("%w: ingestion in state %s", ErrInvalidState, g.state)
	}
	if len(sequence) == 0 {
		return nil
	}
	for i, tok := range sequence {
		if tok == "" {
			return fmt.Errorf("%w at position %d", ErrEmptyToken, i)
		}
		if IsWildcard(tok) {
			return fmt.Errorf("%w: %q at position %d", ErrReservedLabel, tok, i)
		}
	}

	g.store.IncrementFrequency(sequence[0])
	g.store.AddStart(sequence[0], 1)
	for i := 1; i < len(sequence); i++ {
		g.store.AddEdge(sequence[i-1], sequence[i], 1)
		g.store.IncrementFrequency(sequence[i])
	}

	return nil
}

// AddSamples ingests every sequence in order and stops at the first error,
// reporting the offending sample index.
func (g *Graph) AddSamples(sequences [][]string) error {
	for i, seq := range sequences {
		if err := g.AddSample(seq); err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
	}
	g.logger.Debug("pattern: samples ingested",
		slog.Int("samples", len(sequences)),
		slog.Int("nodes", g.store.NodeCount()),
		slog.Int("max_frequency", g.store.MaxFrequency()))

	return nil
}
