package main

import (
	"github.com/spf13/cobra"

	"github.com/kaedroho/sexpr/repl"
)

func newReplCmd() *cobra.Command {
	var outputFormat string
	var prompt string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read forms interactively, printing each one once it is closed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, err := formWriter(outputFormat)
			if err != nil {
				return err
			}
			return repl.Run(prompt, cmd.OutOrStdout(), write)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "sexpr", "output format (sexpr, tree, json)")
	cmd.Flags().StringVar(&prompt, "prompt", "sexpr> ", "input prompt")

	return cmd
}
