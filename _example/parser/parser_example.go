package main

import (
	"log"

	"github.com/kaedroho/sexpr/ast"
	"github.com/kaedroho/sexpr/parser"
)

func main() {
	input := `(module (memory 100 1000 (segment 0 "a") (segment 99 "b"))) ; two segments
	(assert_return (invoke "i32_load8_u" (i32.const 0)) (i32.const 97))`

	p := parser.New()
	p.SetOptions(parser.Options{
		OnForm: func(node *ast.Node) {
			ast.Print(node)
		},
	})

	for _, r := range input {
		if err := p.Feed(r); err != nil {
			log.Fatal("parser.Feed:", err)
		}
	}

	if err := p.Finish(); err != nil {
		log.Fatal("parser.Finish:", err)
	}
}
