package builder

import (
	"fmt"

	"github.com/zhsc-lang/zhsc/internal/lexer"
	"github.com/zhsc-lang/zhsc/pkg/ast"
)

// Builder walks a token sequence with a linear cursor and one-token
// lookahead, building an *ast.Program. The parser is non-tolerant: the
// first ParseError aborts the build via panic/recover, since downstream
// output has no defined semantics once a syntax error is hit.
type Builder struct {
	tokens []lexer.Token
	pos    int
}

// New creates a Builder over a token sequence terminated by lexer.EOF.
func New(tokens []lexer.Token) *Builder {
	return &Builder{tokens: tokens}
}

// Build runs the parse and recovers the first ParseError, if any.
func (b *Builder) Build() (program *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(*Error); ok {
				err = perr
				return
			}
			panic(r)
		}
	}()
	program = b.parseProgram()
	return
}

func (b *Builder) peek() lexer.Token {
	return b.tokens[b.pos]
}

func (b *Builder) check(t lexer.TokenType) bool {
	return b.peek().Type == t
}

func (b *Builder) atEnd() bool {
	return b.peek().Type == lexer.EOF
}

func (b *Builder) advance() lexer.Token {
	tok := b.tokens[b.pos]
	if b.pos < len(b.tokens)-1 {
		b.pos++
	}
	return tok
}

func (b *Builder) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if b.check(t) {
			b.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has type t, else aborts the
// parse with a ParseError naming expected against the actual token.
func (b *Builder) expect(t lexer.TokenType, expected string) lexer.Token {
	if b.check(t) {
		return b.advance()
	}
	b.fail(expected)
	return lexer.Token{}
}

func describe(tok lexer.Token) string {
	if tok.Value != "" {
		return fmt.Sprintf("%s %q", tok.Type, tok.Value)
	}
	return tok.Type.String()
}

func (b *Builder) fail(expected string) {
	tok := b.peek()
	panic(&Error{Line: tok.Line, Column: tok.Column, Expected: expected, Found: describe(tok)})
}

func (b *Builder) failAt(tok lexer.Token, expected, found string) {
	panic(&Error{Line: tok.Line, Column: tok.Column, Expected: expected, Found: found})
}

func posOf(tok lexer.Token) ast.BaseNode {
	return ast.BaseNode{Line: tok.Line, Column: tok.Column}
}

func posOfExpr(e ast.Expr) ast.BaseNode {
	p := e.Pos()
	return ast.BaseNode{Line: p.Line, Column: p.Column}
}

func isVisibilityToken(t lexer.TokenType) bool {
	switch t {
	case lexer.PUBLIC, lexer.PRIVATE, lexer.INTERNAL, lexer.EXTERNAL:
		return true
	}
	return false
}

func visibilityFromToken(t lexer.TokenType) ast.Visibility {
	switch t {
	case lexer.PUBLIC:
		return ast.VisibilityPublic
	case lexer.PRIVATE:
		return ast.VisibilityPrivate
	case lexer.INTERNAL:
		return ast.VisibilityInternal
	case lexer.EXTERNAL:
		return ast.VisibilityExternal
	}
	return ast.VisibilityDefault
}

func isMutabilityToken(t lexer.TokenType) bool {
	switch t {
	case lexer.PURE, lexer.VIEW, lexer.PAYABLE:
		return true
	}
	return false
}

func mutabilityFromToken(t lexer.TokenType) ast.Mutability {
	switch t {
	case lexer.PURE:
		return ast.MutabilityPure
	case lexer.VIEW:
		return ast.MutabilityView
	case lexer.PAYABLE:
		return ast.MutabilityPayable
	}
	return ast.MutabilityNone
}

func isTypeStart(t lexer.TokenType) bool {
	switch t {
	case lexer.TYPE_INT, lexer.TYPE_UINT, lexer.TYPE_STRING, lexer.TYPE_BOOL, lexer.TYPE_ADDRESS, lexer.TYPE_BYTES, lexer.MAPPING:
		return true
	}
	return false
}

func isAssignOp(t lexer.TokenType) bool {
	switch t {
	case lexer.ASSIGN, lexer.PLUS_EQ, lexer.MINUS_EQ, lexer.STAR_EQ, lexer.SLASH_EQ:
		return true
	}
	return false
}

func assignOpFromToken(t lexer.TokenType) ast.AssignOp {
	switch t {
	case lexer.ASSIGN:
		return ast.AssignSet
	case lexer.PLUS_EQ:
		return ast.AssignAdd
	case lexer.MINUS_EQ:
		return ast.AssignSubtract
	case lexer.STAR_EQ:
		return ast.AssignMultiply
	case lexer.SLASH_EQ:
		return ast.AssignDivide
	}
	return ast.AssignSet
}

func isAssignable(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.Member, *ast.Index:
		return true
	}
	return false
}
