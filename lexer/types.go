package lexer

// Class represents the role a single character plays in the grammar
type Class uint8

// List of character classes
const (
	ClassAtom         Class = iota // Any character not listed below
	ClassOpenBracket               // Open parenthesis: "("
	ClassCloseBracket              // Close parenthesis: ")"
	ClassSemicolon                 // Line comment start: ";"
	ClassQuote                     // Double quote: '"'
	ClassWhitespace                // Space, tab or newline
)

var classValues = map[Class][]rune{
	ClassOpenBracket:  []rune{'('},
	ClassCloseBracket: []rune{')'},
	ClassSemicolon:    []rune{';'},
	ClassQuote:        []rune{'"'},
	ClassWhitespace:   []rune(" \t\n"),
}

var classNames = map[Class]string{
	ClassAtom:         "atom",
	ClassOpenBracket:  "open_bracket",
	ClassCloseBracket: "close_bracket",
	ClassSemicolon:    "semicolon",
	ClassQuote:        "quote",
	ClassWhitespace:   "whitespace",
}

func (c Class) String() string {
	if v, ok := classNames[c]; ok {
		return v
	}
	return classNames[ClassAtom]
}

var (
	isOpenBracket  = isClass(ClassOpenBracket)
	isCloseBracket = isClass(ClassCloseBracket)
	isSemicolon    = isClass(ClassSemicolon)
	isQuote        = isClass(ClassQuote)
	isWhitespace   = isClass(ClassWhitespace)
)

// Classify returns the class of the given character
func Classify(r rune) Class {
	switch {
	case isOpenBracket(r):
		return ClassOpenBracket
	case isCloseBracket(r):
		return ClassCloseBracket
	case isSemicolon(r):
		return ClassSemicolon
	case isQuote(r):
		return ClassQuote
	case isWhitespace(r):
		return ClassWhitespace
	}
	return ClassAtom
}

// IsDelimiter returns true if r terminates a bare atom
func IsDelimiter(r rune) bool {
	return Classify(r) != ClassAtom
}

func isClass(c Class) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range classValues[c] {
			if v == r {
				return true
			}
		}
		return false
	}
}
