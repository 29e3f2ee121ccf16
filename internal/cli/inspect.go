package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqpattern/pattern"
)

func inspectCmd(a *app) *cobra.Command {
	var stage string
	cmd := &cobra.Command{
		Use:   "inspect <corpus>",
		Short: "Print the graph snapshot as YAML",
		Long: `inspect prints the graph built from corpus at the requested stage:
"raw" (counts after ingestion), "simplified" (counts after wildcard
collapse) or "normalized" (probabilities).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := readSamplesFile(args[0])
			if err != nil {
				return err
			}
			g := pattern.New(pattern.WithLogger(a.log))
			if err = g.AddSamples(samples); err != nil {
				return err
			}
			switch stage {
			case "raw":
			case "simplified", "normalized":
				if _, err = g.Simplify(a.cfg.ThresholdValue()); err != nil {
					return err
				}
				if stage == "normalized" {
					if err = g.Normalize(); err != nil {
						return err
					}
				}
			default:
				return fmt.Errorf("unknown stage %q", stage)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err = enc.Encode(g.Snapshot()); err != nil {
				return err
			}

			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&stage, "stage", "normalized", "raw, simplified or normalized")

	return cmd
}
