package ast

import (
	"fmt"
)

// Node represents a parenthesized form. Elements are kept in source order.
type Node struct {
	Elements []Element
}

// Element is either a piece of text or a nested node, never both.
type Element struct {
	kind ElementKind
	text string
	node *Node
}

// New creates a node holding the given elements
func New(elements ...Element) *Node {
	return &Node{Elements: elements}
}

// NewText creates a text element. Quoted literals are expected to carry their
// quote characters.
func NewText(text string) Element {
	return Element{kind: ElementText, text: text}
}

// NewChild creates an element that owns the given node
func NewChild(node *Node) Element {
	return Element{kind: ElementNode, node: node}
}

// Kind returns the type of the element
func (e Element) Kind() ElementKind {
	return e.kind
}

// IsText returns true if the element holds text
func (e Element) IsText() bool {
	return e.kind == ElementText
}

// IsNode returns true if the element holds a nested node
func (e Element) IsNode() bool {
	return e.kind == ElementNode
}

// Text returns the text of the element, or an empty string for nodes.
func (e Element) Text() string {
	return e.text
}

// Node returns the nested node, or nil for text elements.
func (e Element) Node() *Node {
	return e.node
}

// Equal reports whether both elements have the same kind and contents.
func (e Element) Equal(o Element) bool {
	if e.kind != o.kind {
		return false
	}
	if e.kind == ElementNode {
		return e.node.Equal(o.node)
	}
	return e.text == o.text
}

func (e Element) String() string {
	switch e.kind {
	case ElementText:
		return e.text
	case ElementNode:
		return e.node.String()
	}
	return fmt.Sprintf("(%v)", e.kind)
}

// Push appends an element to the node
func (n *Node) Push(e Element) {
	n.Elements = append(n.Elements, e)
}

// PushText appends a text element to the node
func (n *Node) PushText(text string) {
	n.Push(NewText(text))
}

// PushNode moves child into the node's elements
func (n *Node) PushNode(child *Node) {
	n.Push(NewChild(child))
}

// Len returns the number of elements of the node
func (n *Node) Len() int {
	return len(n.Elements)
}

// Depth returns the nesting depth of the node, a node without children nodes
// has depth 1.
func (n *Node) Depth() int {
	depth := 0
	for _, e := range n.Elements {
		if e.IsNode() {
			if d := e.node.Depth(); d > depth {
				depth = d
			}
		}
	}
	return depth + 1
}

// Equal reports whether both nodes are structurally identical.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if len(n.Elements) != len(o.Elements) {
		return false
	}
	for i := range n.Elements {
		if !n.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

func (n Node) String() string {
	return string(Encode(&n))
}

// EqualForest reports whether two forests hold structurally identical nodes
// in the same order.
func EqualForest(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
