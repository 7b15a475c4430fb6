package builder

import (
	"github.com/zhsc-lang/zhsc/internal/lexer"
	"github.com/zhsc-lang/zhsc/pkg/ast"
)

func (b *Builder) parseBlock() *ast.Block {
	tok := b.expect(lexer.LBRACE, "'{'")
	block := &ast.Block{BaseNode: posOf(tok)}
	for !b.check(lexer.RBRACE) && !b.atEnd() {
		block.Statements = append(block.Statements, b.parseStatement())
	}
	b.expect(lexer.RBRACE, "'}'")
	return block
}

// parseStatement dispatches on the leading token: a type-starting token
// begins a VarDecl, a control keyword begins its construct, anything
// else is an ExprStmt.
func (b *Builder) parseStatement() ast.Stmt {
	switch b.peek().Type {
	case lexer.RETURN:
		return b.parseReturnStmt()
	case lexer.IF:
		return b.parseIfStmt()
	case lexer.FOR:
		return b.parseForStmt()
	case lexer.WHILE:
		return b.parseWhileStmt()
	}
	if isTypeStart(b.peek().Type) {
		return b.parseVarDecl(true)
	}
	return b.parseExprStmt(true)
}

func (b *Builder) parseReturnStmt() *ast.ReturnStmt {
	tok := b.advance()
	stmt := &ast.ReturnStmt{BaseNode: posOf(tok)}
	if !b.check(lexer.SEMICOLON) {
		stmt.Value = b.parseExpression()
	}
	b.expect(lexer.SEMICOLON, "';'")
	return stmt
}

// parseIfStmt recurses into itself for "else if", producing a nested
// IfStmt in the Else slot; the emitter flattens that chain back into a
// single "else if" sequence at render time.
func (b *Builder) parseIfStmt() *ast.IfStmt {
	tok := b.advance()
	b.expect(lexer.LPAREN, "'('")
	cond := b.parseExpression()
	b.expect(lexer.RPAREN, "')'")
	then := b.parseBlock()
	stmt := &ast.IfStmt{BaseNode: posOf(tok), Cond: cond, Then: then}
	if b.match(lexer.ELSE) {
		if b.check(lexer.IF) {
			stmt.Else = b.parseIfStmt()
		} else {
			stmt.Else = b.parseBlock()
		}
	}
	return stmt
}

func (b *Builder) parseForStmt() *ast.ForStmt {
	tok := b.advance()
	b.expect(lexer.LPAREN, "'('")

	var init ast.Stmt
	if !b.check(lexer.SEMICOLON) {
		if isTypeStart(b.peek().Type) {
			init = b.parseVarDecl(false)
		} else {
			init = b.parseExprStmt(false)
		}
	}
	b.expect(lexer.SEMICOLON, "';'")

	var cond ast.Expr
	if !b.check(lexer.SEMICOLON) {
		cond = b.parseExpression()
	}
	b.expect(lexer.SEMICOLON, "';'")

	var update ast.Expr
	if !b.check(lexer.RPAREN) {
		update = b.parseExpression()
	}
	b.expect(lexer.RPAREN, "')'")

	body := b.parseBlock()
	return &ast.ForStmt{BaseNode: posOf(tok), Init: init, Cond: cond, Update: update, Body: body}
}

func (b *Builder) parseWhileStmt() *ast.WhileStmt {
	tok := b.advance()
	b.expect(lexer.LPAREN, "'('")
	cond := b.parseExpression()
	b.expect(lexer.RPAREN, "')'")
	body := b.parseBlock()
	return &ast.WhileStmt{BaseNode: posOf(tok), Cond: cond, Body: body}
}

// parseVarDecl parses `Type Identifier ("=" Expr)?`, consuming the
// trailing ";" only when consumeSemicolon is true (false inside a
// for-loop's init clause, where the ";" is the loop's own separator).
func (b *Builder) parseVarDecl(consumeSemicolon bool) *ast.VarDecl {
	tok := b.peek()
	typ := b.parseType()
	nameTok := b.expect(lexer.IDENTIFIER, "identifier")
	decl := &ast.VarDecl{BaseNode: posOf(tok), Name: nameTok.Value, Type: typ}
	if b.match(lexer.ASSIGN) {
		decl.Initializer = b.parseExpression()
	}
	if consumeSemicolon {
		b.expect(lexer.SEMICOLON, "';'")
	}
	return decl
}

func (b *Builder) parseExprStmt(consumeSemicolon bool) *ast.ExprStmt {
	tok := b.peek()
	expr := b.parseExpression()
	stmt := &ast.ExprStmt{BaseNode: posOf(tok), Expr: expr}
	if consumeSemicolon {
		b.expect(lexer.SEMICOLON, "';'")
	}
	return stmt
}
