package main

import (
	"github.com/spf13/cobra"

	"github.com/kaedroho/sexpr"
)

func newDemoCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Parse the embedded WebAssembly memory test script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, err := formWriter(outputFormat)
			if err != nil {
				return err
			}

			forest, err := sexpr.Parse([]byte(sexpr.MemoryTest))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, node := range forest {
				if err := write(out, node); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "sexpr", "output format (sexpr, tree, json)")

	return cmd
}
