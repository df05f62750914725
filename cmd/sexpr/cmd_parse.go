package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaedroho/sexpr/ast"
	"github.com/kaedroho/sexpr/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse files (or stdin) and print each form as soon as it is read",
		RunE: func(cmd *cobra.Command, args []string) error {
			write, err := formWriter(outputFormat)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return streamForms(cmd.InOrStdin(), out, write)
			}

			for _, filename := range args {
				if err := parseFile(filename, out, write); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "sexpr", "output format (sexpr, tree, json)")

	return cmd
}

func parseFile(filename string, out io.Writer, write writeFunc) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if err := streamForms(f, out, write); err != nil {
		return fmt.Errorf("%s:%w", filename, err)
	}
	return nil
}

// streamForms writes forms while the input is still being read.
func streamForms(in io.Reader, out io.Writer, write writeFunc) error {
	var writeErr error

	p := parser.New()
	p.SetOptions(parser.Options{
		OnForm: func(node *ast.Node) {
			if writeErr == nil {
				writeErr = write(out, node)
			}
		},
	})

	if err := p.Consume(in); err != nil {
		return err
	}
	if err := p.Finish(); err != nil {
		return err
	}
	return writeErr
}
