package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "sexpr",
		Short: "A streaming S-expression reader",
		Long: `Read S-expressions one character at a time and print the parsed forms.

Examples:
  sexpr parse testdata/memory.wast       # Print every form of a file
  sexpr parse --format json < in.wast    # Read stdin, print JSON
  sexpr demo --format tree               # Parse the embedded memory test script
  sexpr check testdata/*.wast            # Cross-check against the reference grammar
  sexpr repl                             # Type forms interactively`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "verbose output (repeat for more)")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newReplCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
