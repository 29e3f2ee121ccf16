package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqpattern/pattern"
)

func pathCmd(a *app) *cobra.Command {
	var minProb float64
	cmd := &cobra.Command{
		Use:   "path <corpus> <from> <to>",
		Short: "Print the most probable transition chain between two nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := readSamplesFile(args[0])
			if err != nil {
				return err
			}
			g, err := pattern.Train(samples, a.cfg.ThresholdValue(), pattern.WithLogger(a.log))
			if err != nil {
				return err
			}
			var opts []pattern.PathOption
			if cmd.Flags().Changed("min-prob") {
				opts = append(opts, pattern.WithMinProbability(minProb))
			}
			path, p, err := g.MostLikelyPath(args[1], args[2], opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6g\t%s\n", p, strings.Join(path, " "))

			return nil
		},
	}
	cmd.Flags().Float64Var(&minProb, "min-prob", 1, "ignore chains less probable than this, in (0,1]")

	return cmd
}
