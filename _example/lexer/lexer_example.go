package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/kaedroho/sexpr/lexer"
)

func main() {
	input := `
		(module ; comment
			(memory 0 0 (segment 0 "a b"))
		)
	`

	lx := lexer.New(strings.NewReader(input))
	err := lx.Scan(func(r rune) error {
		pos := lx.Pos()
		fmt.Printf("char (class: %v, line: %d, col: %d)\n\t-> %q\n\n", lexer.Classify(r), pos.Line, pos.Column, r)
		return nil
	})
	if err != nil {
		log.Fatal("lexer.Scan:", err)
	}
}
