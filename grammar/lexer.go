package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer defines the lexical structure of the S-expression language. Atoms and
// literals must be separated by whitespace, brackets or comments.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\n]+`},

	{Name: "String", Pattern: `"[^"]*"`},

	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},

	{Name: "Atom", Pattern: `[^() \t\n;"]+`},
})
