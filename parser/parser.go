package parser

import (
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/kaedroho/sexpr/ast"
	"github.com/kaedroho/sexpr/lexer"
)

var log = commonlog.GetLogger("sexpr.parser")

// Options alters how a Parser reports its progress
type Options struct {
	// OnForm is called every time a top-level form is closed, right after it
	// was appended to the forest.
	OnForm func(node *ast.Node)
}

// Parser builds a forest out of characters fed one at a time. A Parser must
// not be shared between goroutines.
type Parser struct {
	// text is nil while no atom or string literal is being read
	text      *strings.Builder
	textStart lexer.Position

	inComment bool
	inString  bool

	stack []*ast.Node
	opens []lexer.Position

	forest []*ast.Node

	pos     lexer.Position
	lastErr error

	options Options
}

// New creates a parser with an empty state
func New() *Parser {
	return &Parser{
		pos: lexer.Start,
	}
}

// SetOptions replaces the parser options
func (p *Parser) SetOptions(options Options) {
	p.options = options
}

// Feed advances the parser by one character. Once an error has been returned
// the parser keeps returning it.
func (p *Parser) Feed(r rune) error {
	if p.lastErr != nil {
		return p.lastErr
	}

	pos := p.pos
	p.pos = p.pos.Advance(r)

	if err := p.feed(r, pos); err != nil {
		return p.fail(err)
	}
	return nil
}

// Finish must be called after the last character has been fed. It stores any
// pending atom and checks that every bracket was closed.
func (p *Parser) Finish() error {
	if p.lastErr != nil {
		return p.lastErr
	}

	if err := p.flush(); err != nil {
		return p.fail(err)
	}

	if n := len(p.opens); n > 0 {
		return p.fail(newError(p.opens[n-1], ErrUnclosedBracket))
	}

	log.Debugf("parsed %d forms", len(p.forest))
	return nil
}

// Consume feeds every character of r to the parser, without finishing it.
func (p *Parser) Consume(r io.Reader) error {
	return lexer.New(r).Scan(p.Feed)
}

// Forest returns the top-level forms completed so far.
func (p *Parser) Forest() []*ast.Node {
	return p.forest
}

// Depth returns the number of opening brackets that are still unmatched.
func (p *Parser) Depth() int {
	return len(p.stack)
}

// Pending returns true while an atom or string literal is being read.
func (p *Parser) Pending() bool {
	return p.text != nil
}

// InString returns true while the parser is inside a string literal.
func (p *Parser) InString() bool {
	return p.inString
}

// Err returns the error that stopped the parser, if any.
func (p *Parser) Err() error {
	return p.lastErr
}

func (p *Parser) fail(err error) error {
	log.Debugf("parser error: %v", err)
	p.lastErr = err
	return err
}

func (p *Parser) feed(r rune, pos lexer.Position) error {
	if p.inComment {
		// the newline closing a comment is not seen as whitespace
		if r == '\n' {
			p.inComment = false
		}
		return nil
	}

	if p.inString {
		p.text.WriteRune(r)
		if lexer.Classify(r) == lexer.ClassQuote {
			p.inString = false
		}
		return nil
	}

	switch lexer.Classify(r) {

	case lexer.ClassOpenBracket:
		// a pending atom stays pending, "abc(" does not split it from the form
		p.stack = append(p.stack, &ast.Node{})
		p.opens = append(p.opens, pos)

	case lexer.ClassCloseBracket:
		if err := p.flush(); err != nil {
			return err
		}
		return p.closeNode(pos)

	case lexer.ClassSemicolon:
		p.inComment = true

	case lexer.ClassQuote:
		p.inString = true
		p.appendText(r, pos)

	case lexer.ClassWhitespace:
		return p.flush()

	default:
		p.appendText(r, pos)
	}

	return nil
}

func (p *Parser) appendText(r rune, pos lexer.Position) {
	if p.text == nil {
		p.text = &strings.Builder{}
		p.textStart = pos
	}
	p.text.WriteRune(r)
}

func (p *Parser) flush() error {
	if p.text == nil {
		return nil
	}

	n := len(p.stack)
	if n == 0 {
		return newError(p.textStart, ErrUnexpectedText)
	}

	p.stack[n-1].PushText(p.text.String())
	p.text = nil
	return nil
}

func (p *Parser) closeNode(pos lexer.Position) error {
	n := len(p.stack)
	if n == 0 {
		return newError(pos, ErrUnexpectedCloseBracket)
	}

	node := p.stack[n-1]
	p.stack[n-1] = nil
	p.stack = p.stack[:n-1]
	p.opens = p.opens[:n-1]

	if n > 1 {
		p.stack[n-2].PushNode(node)
		return nil
	}

	p.forest = append(p.forest, node)
	if p.options.OnForm != nil {
		p.options.OnForm(node)
	}
	return nil
}

// Parse feeds every character of text to a new parser and returns the
// resulting forest.
func Parse(text string) ([]*ast.Node, error) {
	p := New()
	for _, r := range text {
		if err := p.Feed(r); err != nil {
			return nil, err
		}
	}
	if err := p.Finish(); err != nil {
		return nil, err
	}
	return p.Forest(), nil
}

// ParseReader reads r until EOF and returns the resulting forest.
func ParseReader(r io.Reader) ([]*ast.Node, error) {
	p := New()
	if err := p.Consume(r); err != nil {
		return nil, err
	}
	if err := p.Finish(); err != nil {
		return nil, err
	}
	return p.Forest(), nil
}
