package pattern

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/seqpattern/bfs"
)

// SimplifyReport summarizes one Simplify pass.
type SimplifyReport struct {
	// Threshold is the resolved absolute frequency cutoff.
	Threshold float64
	// RareNodes counts tokens with frequency <= Threshold before any merge.
	RareNodes int
	// Anchors counts surviving non-wildcard nodes.
	Anchors int
	// RunMerges counts merges performed while collapsing rare runs.
	RunMerges int
	// StartMerged counts rare start nodes folded into UniversalWildcard.
	StartMerged int
	// Wildcards counts wildcard nodes left in the graph.
	Wildcards int
}

// Simplify replaces runs of rare nodes with a bounded set of wildcard nodes.
//
// Implementation:
//   - Stage 1: Resolve the threshold and mark rare tokens (frequency <= threshold).
//   - Stage 2: Breadth-first walk of every component from unvisited nodes in
//     insertion order; each rare node reached absorbs its rare successors
//     round after round until none remain one hop away.
//   - Stage 3: Fold every rare start node into UniversalWildcard.
//   - Stage 4: Audit that no edge still references a folded node.
//   - Stage 5: For each node, fold its rare neighbors into one canonical
//     "_*_<k>" wildcard, reusing one already present among them.
//
// Anchors (frequency > threshold) are never merged, so raising the threshold
// never increases the number of anchors. Edge-weight mass is conserved.
//
// Errors:
//   - ErrInvalidState when the graph is already simplified or normalized.
//   - ErrBadThreshold for an invalid fraction.
func (g *Graph) Simplify(th Threshold) (*SimplifyReport, error) {
	if g.state != Building {
		return nil, fmt.Errorf("%w: simplify in state %s", ErrInvalidState, g.state)
	}
	limit, err := th.resolve(g.store.MaxFrequency())
	if err != nil {
		return nil, err
	}

	s := &simplifier{
		g:      g,
		limit:  limit,
		rare:   make(map[string]bool),
		groups: make(map[string]*spanGroup),
		report: &SimplifyReport{Threshold: limit},
	}
	s.markRare()

	if err = s.collapseRuns(); err != nil {
		return nil, err
	}
	if err = s.foldStarts(); err != nil {
		return nil, err
	}
	if err = g.store.CheckMirror(); err != nil {
		return nil, fmt.Errorf("pattern: simplify left dangling references: %w", err)
	}
	if err = s.canonicalize(); err != nil {
		return nil, err
	}

	for _, l := range g.store.Labels() {
		if IsWildcard(l) {
			s.report.Wildcards++
		} else if !s.rare[l] {
			s.report.Anchors++
		}
	}
	g.state = Simplified
	g.logger.Info("pattern: simplified",
		slog.Float64("threshold", limit),
		slog.Int("rare", s.report.RareNodes),
		slog.Int("anchors", s.report.Anchors),
		slog.Int("run_merges", s.report.RunMerges),
		slog.Int("start_merged", s.report.StartMerged),
		slog.Int("wildcards", s.report.Wildcards))

	return s.report, nil
}

// simplifier holds the state of one Simplify pass. Rarity is decided once
// from ingestion frequencies; a merge survivor keeps the rarity of the target.
type simplifier struct {
	g      *Graph
	limit  float64
	rare   map[string]bool
	groups map[string]*spanGroup
	next   int
	report *SimplifyReport
}

// spanGroup accumulates the spans absorbed by one canonical wildcard.
type spanGroup struct {
	sum   float64
	count int
}

func (s *simplifier) markRare() {
	for _, n := range s.g.store.Nodes() {
		if float64(n.Frequency) <= s.limit {
			s.rare[n.Label] = true
			s.report.RareNodes++
		}
	}
}

// collapseRuns walks every weakly reachable component once. Rare nodes are
// collapsed when visited; the walk then continues from their redirected edges.
func (s *simplifier) collapseRuns() error {
	_, err := bfs.Cover(s.g.store, bfs.WithOnVisit(func(label string, _ int) error {
		if !s.rare[label] {
			return nil
		}
		return s.collapse(label)
	}))

	return err
}

// collapse absorbs the rare successors of c until none is left one hop away.
// The span of c grows by the number of rounds plus the absorbed histories:
// summed when a single absorbed node carried one, averaged when several did.
func (s *simplifier) collapse(c string) error {
	var (
		rounds    int
		histories []float64
	)
	for {
		var run []string
		for _, nb := range s.g.store.Neighbors(c) {
			if nb != c && s.rare[nb] {
				run = append(run, nb)
			}
		}
		if len(run) == 0 {
			break
		}
		rounds++
		for _, nb := range run {
			n, _ := s.g.store.Node(nb)
			if n.WildcardSpan > 0 {
				histories = append(histories, n.WildcardSpan)
			}
			if err := s.g.store.MergeNodes(c, nb); err != nil {
				return fmt.Errorf("pattern: collapse %q into %q: %w", nb, c, err)
			}
			delete(s.rare, nb)
			s.report.RunMerges++
		}
	}
	if rounds == 0 {
		return nil
	}

	var absorbed float64
	for _, h := range histories {
		absorbed += h
	}
	if len(histories) > 1 {
		absorbed /= float64(len(histories))
	}
	n, _ := s.g.store.Node(c)
	s.g.logger.Debug("pattern: rare run collapsed",
		slog.String("node", c), slog.Int("rounds", rounds))

	return s.g.store.SetWildcardSpan(c, n.WildcardSpan+absorbed+float64(rounds))
}

// foldStarts merges every rare start node into UniversalWildcard, which is
// created only when at least one such node exists. Its span is the mean span
// of the folded nodes.
func (s *simplifier) foldStarts() error {
	var starts []string
	for _, l := range s.g.store.StartLabels() {
		if s.rare[l] {
			starts = append(starts, l)
		}
	}
	if len(starts) == 0 {
		return nil
	}

	s.g.store.Ensure(UniversalWildcard)
	s.rare[UniversalWildcard] = true
	var spans float64
	for _, l := range starts {
		n, _ := s.g.store.Node(l)
		spans += n.WildcardSpan
		if err := s.g.store.MergeNodes(UniversalWildcard, l); err != nil {
			return fmt.Errorf("pattern: fold start %q: %w", l, err)
		}
		delete(s.rare, l)
		s.report.StartMerged++
	}

	return s.g.store.SetWildcardSpan(UniversalWildcard, spans/float64(len(starts)))
}

// canonicalize folds, per source node, all rare neighbors into one "_*_<k>"
// wildcard. UniversalWildcard is never folded away.
func (s *simplifier) canonicalize() error {
	for _, c := range s.g.store.Labels() {
		if !s.g.store.Has(c) {
			continue
		}
		var group []string
		for _, nb := range s.g.store.Neighbors(c) {
			if nb == c || nb == UniversalWildcard || !s.rare[nb] {
				continue
			}
			group = append(group, nb)
		}
		if len(group) == 0 {
			continue
		}
		if err := s.foldGroup(group); err != nil {
			return fmt.Errorf("pattern: canonicalize neighbors of %q: %w", c, err)
		}
	}

	return nil
}

func (s *simplifier) foldGroup(group []string) error {
	target := ""
	for _, nb := range group {
		if _, ok := s.groups[nb]; ok {
			target = nb
			break
		}
	}
	if target == "" {
		target = WildcardPrefix + strconv.Itoa(s.next)
		s.next++
		s.g.store.Ensure(target)
		s.rare[target] = true
		s.groups[target] = &spanGroup{}
	}

	acc := s.groups[target]
	for _, nb := range group {
		if nb == target {
			continue
		}
		if other, ok := s.groups[nb]; ok {
			acc.sum += other.sum
			acc.count += other.count
			delete(s.groups, nb)
		} else {
			n, _ := s.g.store.Node(nb)
			acc.sum += n.WildcardSpan
			acc.count++
		}
		if err := s.g.store.MergeNodes(target, nb); err != nil {
			return err
		}
		delete(s.rare, nb)
	}

	return s.g.store.SetWildcardSpan(target, acc.sum/float64(acc.count))
}
