// SPDX-License-Identifier: MIT
// Package cmd provides the CLI commands for poet.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saad1551/sclab9/internal/config"
	"github.com/saad1551/sclab9/internal/logging"
	"github.com/saad1551/sclab9/poet"
)

// Version is reported by the version command.
var Version = "0.1.0"

// app carries the state shared by one command tree.
type app struct {
	cfgFile string
	verbose bool

	cfg *config.Config
	log *zap.Logger
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "poet",
		Short: "Insert bridge words into text using a corpus affinity graph",
		Long: `poet learns which words follow which in a corpus and uses that
affinity graph to insert a bridge word between adjacent input words.

Examples:
  poet poem --corpus corpus.txt Seek to explore new and exciting synergies
  echo "hello world" | poet poem --corpus corpus.txt
  poet graph --corpus corpus.txt --format dot | dot -Tsvg > graph.svg
  poet stats --corpus corpus.txt`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./poet.yaml or ~/.config/sclab9/poet.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.poemCmd())
	root.AddCommand(a.graphCmd())
	root.AddCommand(a.statsCmd())
	root.AddCommand(versionCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if a.cfgFile != "" {
		cfg, _, err = config.LoadFromPath(a.cfgFile)
	} else {
		cfg, _, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	a.cfg, a.log = cfg, log.Named(cmd.Name())

	return nil
}

// loadPoet builds a Poet from the --corpus flag, or the configured corpus.
func (a *app) loadPoet(corpusPath string) (*poet.Poet, error) {
	if corpusPath == "" {
		corpusPath = a.cfg.Corpus
	}
	if corpusPath == "" {
		return nil, fmt.Errorf("no corpus: pass --corpus or set corpus in the config file")
	}

	a.log.Debug("loading corpus", zap.String("path", corpusPath))
	p, err := poet.NewFromFile(corpusPath, poet.WithLogger(a.log))
	if err != nil {
		return nil, err
	}

	return p, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "poet version %s\n", Version)
		},
	}
}
