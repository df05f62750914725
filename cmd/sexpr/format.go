package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kaedroho/sexpr/ast"
)

type writeFunc func(w io.Writer, node *ast.Node) error

func formWriter(format string) (writeFunc, error) {
	switch format {
	case "sexpr":
		return writeSexpr, nil
	case "tree":
		return ast.Fprint, nil
	case "json":
		return writeJSON, nil
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}

func writeSexpr(w io.Writer, node *ast.Node) error {
	_, err := fmt.Fprintf(w, "%s\n", ast.Encode(node))
	return err
}

func writeJSON(w io.Writer, node *ast.Node) error {
	buf, err := json.Marshal(node)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", buf)
	return err
}
