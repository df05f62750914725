// Package sexpr reads S-expressions one character at a time.
//
// The grammar is small: forms are parenthesized lists of elements, elements
// are atoms, double quoted string literals or nested forms, and ";" starts a
// comment that runs until the end of the line. Atoms are not interpreted and
// string literals are kept verbatim, quotes included.
//
// The streaming parser lives in the parser package; this package wraps it for
// callers that already hold the whole input or an io.Reader.
package sexpr

import (
	"bytes"
	"io"

	"github.com/kaedroho/sexpr/ast"
	"github.com/kaedroho/sexpr/parser"
)

// Reader parses every form read from an underlying io.Reader
type Reader struct {
	r io.Reader

	options parser.Options
}

// Parse parses in and returns its top-level forms
func Parse(in []byte) ([]*ast.Node, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Parse()
}

// NewReader creates a Reader on top of r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// OnForm registers fn to be called as soon as each top-level form is closed,
// before the rest of the input has been read.
func (r *Reader) OnForm(fn func(node *ast.Node)) *Reader {
	r.options.OnForm = fn
	return r
}

// Parse reads until EOF and returns the top-level forms.
func (r *Reader) Parse() ([]*ast.Node, error) {
	p := parser.New()
	p.SetOptions(r.options)

	if err := p.Consume(r.r); err != nil {
		return nil, err
	}
	if err := p.Finish(); err != nil {
		return nil, err
	}
	return p.Forest(), nil
}
