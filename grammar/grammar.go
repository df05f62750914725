package grammar

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"

	"github.com/kaedroho/sexpr/ast"
)

// File is a sequence of top-level forms
type File struct {
	Forms []*Form `parser:"@@*"`
}

// Form is a parenthesized list of elements
type Form struct {
	Elements []*Element `parser:"\"(\" @@* \")\""`
}

// Element is either a nested form or a single atom or string literal
type Element struct {
	Form *Form   `parser:"  @@"`
	Text *string `parser:"| @(Atom | String)"`
}

// Parser reads whole documents at once, it is used to cross-check the
// streaming parser.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new grammar based parser
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse reads r until EOF and returns the resulting forest
func (p *Parser) Parse(r io.Reader) ([]*ast.Node, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file.Nodes(), nil
}

// ParseString parses the given text and returns the resulting forest
func (p *Parser) ParseString(input string) ([]*ast.Node, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file.Nodes(), nil
}

// String returns the EBNF of the grammar
func (p *Parser) String() string {
	return p.parser.String()
}

// Nodes converts the parsed forms into ast nodes
func (f *File) Nodes() []*ast.Node {
	var nodes []*ast.Node
	for _, form := range f.Forms {
		nodes = append(nodes, form.Node())
	}
	return nodes
}

// Node converts the form into an ast node
func (f *Form) Node() *ast.Node {
	node := ast.New()
	for _, e := range f.Elements {
		if e.Form != nil {
			node.PushNode(e.Form.Node())
			continue
		}
		node.PushText(*e.Text)
	}
	return node
}
