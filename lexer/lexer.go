package lexer

import (
	"bufio"
	"io"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("sexpr.lexer")

// Lexer reads characters from a reader and hands them over, one at a time, to
// a consumer.
type Lexer struct {
	in  *bufio.Reader
	pos Position
}

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	return &Lexer{
		in:  bufio.NewReader(r),
		pos: Start,
	}
}

// Pos returns the position of the next character to be read.
func (lx *Lexer) Pos() Position {
	return lx.pos
}

// Scan reads the reader until EOF, calling fn for every character. Scanning
// stops at the first error returned by fn or by the reader; io.EOF is not
// reported.
func (lx *Lexer) Scan(fn func(r rune) error) error {
	for {
		r, _, err := lx.in.ReadRune()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			log.Debugf("read error at %v: %v", lx.pos, err)
			return err
		}

		if err := fn(r); err != nil {
			return err
		}
		lx.pos = lx.pos.Advance(r)
	}
}

// Classes returns the class of every character in the input.
func Classes(in []byte) []Class {
	classes := []Class{}
	for _, r := range string(in) {
		classes = append(classes, Classify(r))
	}
	return classes
}
