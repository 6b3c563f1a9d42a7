// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) poemCmd() *cobra.Command {
	var corpusPath string

	cmd := &cobra.Command{
		Use:   "poem [words...]",
		Short: "Rewrite input with bridge words inserted",
		Long: `Rewrite the input by inserting, between each pair of adjacent words,
the word that most strongly links them in the corpus.

Words are taken from the arguments, or from standard input when none
are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadPoet(corpusPath)
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				input = string(data)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), p.Poem(input))
			return err
		},
	}

	cmd.Flags().StringVarP(&corpusPath, "corpus", "c", "", "corpus text file")

	return cmd
}
