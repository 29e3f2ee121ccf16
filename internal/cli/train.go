package cli

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqpattern/pattern"
)

func trainCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "train <corpus>",
		Short: "Train a graph and print the simplification report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := readSamplesFile(args[0])
			if err != nil {
				return err
			}
			g := pattern.New(pattern.WithLogger(a.log))
			if err = g.AddSamples(samples); err != nil {
				return err
			}
			rep, err := g.Simplify(a.cfg.ThresholdValue())
			if err != nil {
				return err
			}
			if err = g.Normalize(); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "samples\t%d\n", len(samples))
			fmt.Fprintf(tw, "threshold\t%g (%s)\n", rep.Threshold, a.cfg.Threshold)
			fmt.Fprintf(tw, "rare\t%d\n", rep.RareNodes)
			fmt.Fprintf(tw, "anchors\t%d\n", rep.Anchors)
			fmt.Fprintf(tw, "run merges\t%d\n", rep.RunMerges)
			fmt.Fprintf(tw, "start merged\t%d\n", rep.StartMerged)
			fmt.Fprintf(tw, "wildcards\t%d\n", rep.Wildcards)
			if err = tw.Flush(); err != nil {
				return err
			}

			if out == "" {
				return nil
			}
			data, err := yaml.Marshal(g.Snapshot())
			if err != nil {
				return err
			}
			if err = os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			a.log.Info("snapshot written", slog.String("path", out))

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the normalized snapshot as YAML")

	return cmd
}
