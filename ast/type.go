package ast

// ElementKind represents the type of a node element
type ElementKind uint8

// Element kinds
const (
	ElementInvalid ElementKind = iota
	ElementText                // Atom or quoted string literal
	ElementNode                // Nested form
)

func (k ElementKind) String() string {
	s, ok := elementKindName[k]
	if ok {
		return s
	}
	return elementKindName[ElementInvalid]
}

var elementKindName = map[ElementKind]string{
	ElementInvalid: "invalid",
	ElementText:    "text",
	ElementNode:    "node",
}
