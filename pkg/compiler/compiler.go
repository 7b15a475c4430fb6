// Package compiler is the public compile surface composing the lexer,
// parser, and emitter into the three entry points a caller needs:
// Compile, TokensOf, and ASTOf. It is a stateless reworking of
// original_source/compiler.py's ChineseSolidityCompiler class — the
// pipeline itself carries no verbose/logging state the way the Python
// class did; that concern moved to the CLI layer, which wraps these
// calls with its own diagnostics.
package compiler

import (
	"fmt"

	"github.com/zhsc-lang/zhsc/internal/emitter"
	"github.com/zhsc-lang/zhsc/internal/lexer"
	"github.com/zhsc-lang/zhsc/pkg/ast"
	"github.com/zhsc-lang/zhsc/pkg/parser"
)

// Compile runs the full lex/parse/emit pipeline on source and returns the
// generated Solidity code. A lex or parse failure is reported as a single
// "<kind> at <line>:<column>: <detail>" error; a code-generation failure,
// which carries no position, as "codegen error: <detail>". This is the one
// seam where the three disjoint stage-error types collapse into one
// user-facing shape.
func Compile(source string) (string, error) {
	program, err := ASTOf(source)
	if err != nil {
		return "", err
	}
	code, err := emitter.New().Emit(program)
	if err != nil {
		return "", wrapStageError(err)
	}
	return code, nil
}

// TokensOf tokenizes source without parsing it, for --show-tokens-style
// diagnostic tooling.
func TokensOf(source string) ([]lexer.Token, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, wrapStageError(err)
	}
	return tokens, nil
}

// ASTOf lexes and parses source, stopping before code generation, for
// --show-ast-style diagnostic tooling.
func ASTOf(source string) (*ast.Program, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return nil, wrapStageError(err)
	}
	return program, nil
}

// wrapStageError normalizes a lexer.Error or parser.Error into the
// "<kind> at <line>:<column>: <detail>" message spec.md §7 specifies,
// since each stage's tagged error otherwise formats itself independently.
func wrapStageError(err error) error {
	switch e := err.(type) {
	case *lexer.Error:
		return fmt.Errorf("lex error at %d:%d: %s", e.Line, e.Column, e.Message)
	case *parser.Error:
		return fmt.Errorf("parse error at %d:%d: expected %s, found %s", e.Line, e.Column, e.Expected, e.Found)
	case *emitter.Error:
		return fmt.Errorf("codegen error: %s", e.Message)
	}
	return err
}
