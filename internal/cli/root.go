// Package cli wires the seqgraph cobra commands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/seqpattern/internal/config"
	"github.com/katalvlaran/seqpattern/internal/logger"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

// NewRootCmd builds the seqgraph command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "seqgraph",
		Short: "Train and score sequence pattern graphs",
		Long: `seqgraph learns a sequence pattern graph from a corpus file (one sample per
line, tokens separated by whitespace), collapses rare tokens into wildcards and
scores query sequences against it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
	f.String("log-format", "text", "log format (text, json)")
	f.String("threshold", "auto", `rarity threshold: "auto" or a fraction in [0,1]`)
	f.Float64("penalty", 0.1, "wildcard penalty in (0,1]")
	f.Bool("span-scaling", false, "raise the penalty to the wildcard span")
	f.Int("workers", 4, "concurrent scoring workers")

	_ = a.v.BindPFlag("log.level", f.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", f.Lookup("log-format"))
	_ = a.v.BindPFlag("threshold", f.Lookup("threshold"))
	_ = a.v.BindPFlag("penalty", f.Lookup("penalty"))
	_ = a.v.BindPFlag("span_scaling", f.Lookup("span-scaling"))
	_ = a.v.BindPFlag("workers", f.Lookup("workers"))

	root.AddCommand(trainCmd(a), scoreCmd(a), inspectCmd(a), pathCmd(a))

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) init(cmd *cobra.Command) error {
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	log, err := logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	if a.cfgFile != "" {
		log.Debug("using config file", slog.String("path", a.v.ConfigFileUsed()))
	}

	return nil
}

// readSamples parses one whitespace-tokenized sample per line. Blank lines
// yield empty samples, which ingestion ignores.
func readSamples(r io.Reader) ([][]string, error) {
	var out [][]string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		out = append(out, strings.Fields(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func readSamplesFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := readSamples(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return samples, nil
}
