package parser

import (
	"errors"
	"fmt"

	"github.com/kaedroho/sexpr/lexer"
)

var (
	ErrUnexpectedText         = errors.New("unexpected text outside any enclosing form")
	ErrUnexpectedCloseBracket = errors.New("unexpected closing bracket")
	ErrUnclosedBracket        = errors.New("unclosed bracket")
)

// Error reports where in the input a parse error was detected.
type Error struct {
	Pos lexer.Position
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(pos lexer.Position, err error) *Error {
	return &Error{Pos: pos, Err: err}
}
