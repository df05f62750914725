package lexer

import (
	"fmt"
)

// Position represents the line and column of a character, both 1-based.
type Position struct {
	Line   int
	Column int
}

// Start is the position of the first character of any input
var Start = Position{Line: 1, Column: 1}

// Advance returns the position of the character that follows r
func (p Position) Advance(r rune) Position {
	if r == '\n' {
		return Position{Line: p.Line + 1, Column: 1}
	}
	return Position{Line: p.Line, Column: p.Column + 1}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
