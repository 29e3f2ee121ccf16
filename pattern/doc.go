// Package pattern learns a generalized, probabilistic model of token sequences
// and scores how well new sequences match it.
//
// What
//
//   - A Graph is trained per category from example token sequences.
//   - Ingestion (AddSample) records start states, transitions and frequencies.
//   - Simplify collapses rare tokens into wildcard nodes ("_*_" for rare starts,
//     "_*_<k>" for rare successors) while preserving edge-weight mass.
//   - Normalize turns counts into probabilities.
//   - Score walks the normalized graph; unmatched tokens may escape through a
//     wildcard neighbor at a penalty. Probe returns the same walk step by step.
//   - MostLikelyPath finds the most probable transition chain between two nodes.
//
// Lifecycle
//
//	New → AddSample* → Simplify (once, optional) → Normalize (once) → Score/Predict*
//
// Ingestion after Simplify or Normalize, scoring before Normalize and a second Simplify
// return ErrInvalidState. Calling Normalize twice renormalizes probabilities
// into a degenerate distribution; callers must not do that.
//
// Rarity
//
//	A node is rare when frequency <= threshold, where threshold is
//	maxFrequency/2 for AutoThreshold() and maxFrequency*f for FractionThreshold(f).
//	The same operator is used in every step of the simplification.
//
// Concurrency
//
//	Ingestion and simplification must be serialized by the caller. Once
//	Normalize has returned, Score and Predict only read the graph and may run
//	from many goroutines.
//
// Usage
//
//	g, err := pattern.Train(samples, pattern.AutoThreshold(), pattern.WithLogger(log))
//	if err != nil {
//		// handle ErrReservedLabel, ErrEmptyToken, ErrBadThreshold
//	}
//	scores, err := g.Predict(queries, 0.1)
package pattern
