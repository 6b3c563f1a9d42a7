// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) statsCmd() *cobra.Command {
	var corpusPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the corpus affinity graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.loadPoet(corpusPath)
			if err != nil {
				return err
			}
			s := p.Stats()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "tokens:\t%d\n", s.Tokens)
			fmt.Fprintf(tw, "vertices:\t%d\n", s.Vertices)
			fmt.Fprintf(tw, "edges:\t%d\n", s.Edges)
			fmt.Fprintf(tw, "total weight:\t%d\n", s.TotalWeight)
			fmt.Fprintf(tw, "mean weight:\t%.3f (sd %.3f)\n", s.MeanWeight, s.StdDevWeight)
			fmt.Fprintf(tw, "mean out-degree:\t%.3f (sd %.3f)\n", s.MeanOutDegree, s.StdDevOutDegree)
			if s.Edges == 0 {
				fmt.Fprintf(tw, "heaviest edge:\t(none)\n")
			} else {
				fmt.Fprintf(tw, "heaviest edge:\t%s -> %s : %d\n", s.Heaviest.From, s.Heaviest.To, s.Heaviest.Weight)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&corpusPath, "corpus", "c", "", "corpus text file")

	return cmd
}
