// Package parser is the thin public wrapper composing the lexer and the
// internal builder into a single Parse entry point.
package parser

import (
	"fmt"

	"github.com/zhsc-lang/zhsc/internal/builder"
	"github.com/zhsc-lang/zhsc/internal/lexer"
	"github.com/zhsc-lang/zhsc/pkg/ast"
)

// Error is the public ParseError surface, wrapping the internal builder's
// tagged error with the same line/column/expected/found shape.
type Error struct {
	Line     int
	Column   int
	Expected string
	Found    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at %d:%d: expected %s, found %s", e.Line, e.Column, e.Expected, e.Found)
}

// Parse tokenizes and parses source into a *ast.Program.
func Parse(source string) (*ast.Program, error) {
	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		return nil, lexErr
	}
	program, err := builder.New(tokens).Build()
	if err != nil {
		if berr, ok := err.(*builder.Error); ok {
			return nil, &Error{Line: berr.Line, Column: berr.Column, Expected: berr.Expected, Found: berr.Found}
		}
		return nil, err
	}
	return program, nil
}

// Tokens tokenizes source without parsing it, for diagnostic tooling.
func Tokens(source string) ([]lexer.Token, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
