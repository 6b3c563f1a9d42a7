// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/saad1551/sclab9/core"
	"github.com/saad1551/sclab9/internal/config"
	"github.com/saad1551/sclab9/poet"
)

func (a *app) graphCmd() *cobra.Command {
	var (
		corpusPath string
		format     string
		spellings  bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the corpus affinity graph",
		Long: `Print the affinity graph learned from the corpus, either as a
sorted text listing or as Graphviz DOT.

Examples:
  poet graph --corpus corpus.txt
  poet graph --corpus corpus.txt --format dot --spellings`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			if !cmd.Flags().Changed("spellings") {
				spellings = a.cfg.Output.Spellings
			}

			p, err := a.loadPoet(corpusPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case config.FormatText:
				return writeGraphText(out, p, spellings)
			case config.FormatDOT:
				return writeGraphDOT(out, p, spellings)
			default:
				return fmt.Errorf("unsupported format %q (want %s or %s)", format, config.FormatText, config.FormatDOT)
			}
		},
	}

	cmd.Flags().StringVarP(&corpusPath, "corpus", "c", "", "corpus text file")
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "output format (text, dot)")
	cmd.Flags().BoolVar(&spellings, "spellings", false, "show the first-seen spelling of each word")

	return cmd
}

func writeGraphText(w io.Writer, p *poet.Poet, spellings bool) error {
	if _, err := io.WriteString(w, p.Graph().Render()); err != nil {
		return err
	}
	if !spellings {
		return nil
	}

	table := p.Spellings()
	canon := make([]string, 0, len(table))
	for c := range table {
		canon = append(canon, c)
	}
	sort.Strings(canon)

	if len(canon) == 0 {
		_, err := io.WriteString(w, "spellings: (none)\n")
		return err
	}
	if _, err := io.WriteString(w, "spellings:\n"); err != nil {
		return err
	}
	for _, c := range canon {
		if _, err := fmt.Fprintf(w, "  %s = %s\n", c, table[c]); err != nil {
			return err
		}
	}

	return nil
}

func writeGraphDOT(w io.Writer, p *poet.Poet, spellings bool) error {
	opts := core.DOTOptions{Name: "affinity"}
	if spellings {
		opts.NodeAttrs = func(label string) []core.DOTAttr {
			if s, ok := p.Spelling(label); ok {
				return []core.DOTAttr{{Name: "label", Val: s}}
			}
			return nil
		}
	}

	return p.Graph().WriteDOT(w, opts)
}
