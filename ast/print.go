package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	_ = Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w, one element
// per line.
func Fprint(w io.Writer, n *Node) error {
	return printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) error {
	indent := strings.Repeat("    ", level)
	if n == nil {
		_, err := fmt.Fprintf(w, "%s:nil\n", indent)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s(%s)[%d]\n", indent, ElementNode, n.Len()); err != nil {
		return err
	}
	for _, e := range n.Elements {
		switch e.Kind() {

		case ElementNode:
			if err := printLevel(w, e.Node(), level+1); err != nil {
				return err
			}

		case ElementText:
			if _, err := fmt.Fprintf(w, "%s    (%s): %s\n", indent, ElementText, e.Text()); err != nil {
				return err
			}

		default:
			panic("unknown element kind")
		}
	}
	return nil
}

// Encode transforms nodes into their text representation, top-level nodes are
// separated by a single space.
func Encode(nodes ...*Node) []byte {
	var sb strings.Builder
	for i, n := range nodes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		encodeNode(&sb, n)
	}
	return []byte(sb.String())
}

func encodeNode(sb *strings.Builder, n *Node) {
	if n == nil {
		sb.WriteString(":nil")
		return
	}
	sb.WriteByte('(')
	for i, e := range n.Elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e.Kind() {
		case ElementNode:
			encodeNode(sb, e.Node())
		case ElementText:
			sb.WriteString(e.Text())
		default:
			panic("unknown element kind")
		}
	}
	sb.WriteByte(')')
}
