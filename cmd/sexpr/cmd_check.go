package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaedroho/sexpr"
	"github.com/kaedroho/sexpr/ast"
	"github.com/kaedroho/sexpr/grammar"
	"github.com/kaedroho/sexpr/parser"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Parse with both the streaming parser and the reference grammar and compare",
		Long: `Parse every file with the streaming parser and with the reference grammar
and report files where the resulting forms differ. Without arguments the
embedded memory test script is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.NewParser()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return checkInput(g, out, "memory.wast", []byte(sexpr.MemoryTest))
			}

			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				if err := checkInput(g, out, filename, data); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}

func checkInput(g *grammar.Parser, out io.Writer, name string, data []byte) error {
	streamed, err := parser.ParseReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: streaming parser: %w", name, err)
	}

	parsed, err := g.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: reference grammar: %w", name, err)
	}

	if !ast.EqualForest(streamed, parsed) {
		return fmt.Errorf("%s: parsers disagree:\n  streaming: %s\n  grammar:   %s", name, ast.Encode(streamed...), ast.Encode(parsed...))
	}

	fmt.Fprintf(out, "%s: ok (%d forms)\n", name, len(streamed))
	return nil
}
