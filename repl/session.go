package repl

import (
	"io"

	"github.com/tliron/commonlog"

	"github.com/kaedroho/sexpr/ast"
	"github.com/kaedroho/sexpr/parser"
)

var log = commonlog.GetLogger("sexpr.repl")

// Session feeds lines of input to a single parser, so that forms may span
// several lines, and writes each top-level form as soon as it is closed.
type Session struct {
	p     *parser.Parser
	w     io.Writer
	write func(w io.Writer, node *ast.Node) error

	forms   int
	lastErr error
}

// NewSession creates a session writing forms to w through write.
func NewSession(w io.Writer, write func(w io.Writer, node *ast.Node) error) *Session {
	s := &Session{w: w, write: write}
	s.Reset()
	return s
}

// Line feeds a line of input followed by a newline.
func (s *Session) Line(line string) error {
	for _, r := range line {
		if err := s.feed(r); err != nil {
			return err
		}
	}
	return s.feed('\n')
}

func (s *Session) feed(r rune) error {
	if err := s.p.Feed(r); err != nil {
		return err
	}
	// write errors are reported from the form callback
	if s.lastErr != nil {
		err := s.lastErr
		s.lastErr = nil
		return err
	}
	return nil
}

// Open returns true while the input read so far needs more lines.
func (s *Session) Open() bool {
	return s.p.Depth() > 0 || s.p.InString()
}

// Forms returns the number of forms written since the session started.
func (s *Session) Forms() int {
	return s.forms
}

// Reset discards any partial input.
func (s *Session) Reset() {
	log.Debugf("session reset after %d forms", s.forms)
	s.p = parser.New()
	s.p.SetOptions(parser.Options{
		OnForm: s.onForm,
	})
}

// Close finishes the parser, reporting input that was left incomplete.
func (s *Session) Close() error {
	return s.p.Finish()
}

func (s *Session) onForm(node *ast.Node) {
	s.forms++
	if err := s.write(s.w, node); err != nil && s.lastErr == nil {
		s.lastErr = err
	}
}
