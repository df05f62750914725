package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/kaedroho/sexpr/ast"
	"github.com/kaedroho/sexpr/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	fmt.Printf("%s<%s>\n", indent, ast.ElementNode)
	for _, e := range node.Elements {
		if e.IsNode() {
			printIndentedTree(e.Node(), indentationLevel+1)
			continue
		}
		fmt.Printf("%s  <%s>%v</%s>\n", indent, e.Kind(), e.Text(), e.Kind())
	}
	fmt.Printf("%s</%s>\n", indent, ast.ElementNode)
}

func main() {
	input := `(fn_a (fn_b (89 :A :B (67 3.27))) (fn_c 66 3 53 "Hello world!" 😊))`

	forest, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, node := range forest {
		printTree(node)
	}
}
