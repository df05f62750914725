package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/kaedroho/sexpr/ast"
)

// Run reads lines from the terminal until EOF, printing forms to out as soon
// as they are complete. Parse errors are reported and the partial input is
// dropped. An interrupt also drops the partial input.
func Run(prompt string, out io.Writer, write func(w io.Writer, node *ast.Node) error) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	s := NewSession(out, write)
	for {
		var line string
		line, err = rl.Readline()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			s.Reset()
			rl.SetPrompt(prompt)
			continue
		}

		if err := s.Line(line); err != nil {
			errln(err)
			s.Reset()
		}

		if s.Open() {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
	}
	if err != io.EOF {
		return err
	}
	return s.Close()
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
