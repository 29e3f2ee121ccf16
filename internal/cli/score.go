package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seqpattern/pattern"
)

type scored struct {
	score float64
	steps []pattern.Step
}

func scoreCmd(a *app) *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "score <corpus> <queries>",
		Short: "Train on corpus and score every query line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := readSamplesFile(args[0])
			if err != nil {
				return err
			}
			queries, err := readSamplesFile(args[1])
			if err != nil {
				return err
			}
			g, err := pattern.Train(samples, a.cfg.ThresholdValue(), pattern.WithLogger(a.log))
			if err != nil {
				return err
			}

			results, err := scoreAll(cmd, g, queries, a.cfg.Penalty, a.cfg.Workers, a.cfg.ScoreOptions())
			if err != nil {
				return err
			}
			a.log.Debug("queries scored", slog.Int("queries", len(queries)), slog.Int("workers", a.cfg.Workers))

			w := cmd.OutOrStdout()
			for i, r := range results {
				fmt.Fprintf(w, "%.6g\t%s\n", r.score, strings.Join(queries[i], " "))
				if !explain {
					continue
				}
				for _, st := range r.steps {
					mark := ""
					if st.Wildcard {
						mark = " *"
					}
					fmt.Fprintf(w, "  %s -> %s %.6g%s\n", st.Token, st.Node, st.Factor, mark)
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "print the factor of every step")

	return cmd
}

// scoreAll scores queries on a bounded pool. The graph is normalized, so
// concurrent reads are safe.
func scoreAll(cmd *cobra.Command, g *pattern.Graph, queries [][]string, penalty float64, workers int, opts []pattern.ScoreOption) ([]scored, error) {
	out := make([]scored, len(queries))
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(workers)
	for i, q := range queries {
		i, q := i, q
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, steps, err := g.Probe(q, penalty, opts...)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			out[i] = scored{score: p, steps: steps}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
