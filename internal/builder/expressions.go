package builder

import (
	"github.com/zhsc-lang/zhsc/internal/lexer"
	"github.com/zhsc-lang/zhsc/pkg/ast"
)

// Expression parsing is a cascade of one function per precedence level,
// from assignment (lowest, right-associative) down through postfix
// (highest), mirroring the precedence table:
//
//	1 assignment   =, +=, -=, *=, /=        right
//	2 logical or   ||                       left
//	3 logical and  &&                       left
//	4 equality     ==, !=                   left
//	5 relational   <, <=, >, >=             left
//	6 additive     +, -                     left
//	7 multiplicative *, /, %                left
//	8 unary        prefix !, -              --
//	9 postfix      call, index, member      left

func (b *Builder) parseExpression() ast.Expr {
	return b.parseAssignment()
}

func (b *Builder) parseAssignment() ast.Expr {
	left := b.parseLogicalOr()
	if isAssignOp(b.peek().Type) {
		opTok := b.advance()
		if !isAssignable(left) {
			b.failAt(opTok, "assignable target", "non-assignable expression")
		}
		value := b.parseAssignment()
		return &ast.Assignment{
			BaseNode: posOfExpr(left),
			Target:   left,
			Operator: assignOpFromToken(opTok.Type),
			Value:    value,
		}
	}
	return left
}

func (b *Builder) parseLogicalOr() ast.Expr {
	left := b.parseLogicalAnd()
	for b.check(lexer.OR) {
		b.advance()
		right := b.parseLogicalAnd()
		left = &ast.Binary{BaseNode: posOfExpr(left), Left: left, Operator: ast.OpOr, Right: right}
	}
	return left
}

func (b *Builder) parseLogicalAnd() ast.Expr {
	left := b.parseEquality()
	for b.check(lexer.AND) {
		b.advance()
		right := b.parseEquality()
		left = &ast.Binary{BaseNode: posOfExpr(left), Left: left, Operator: ast.OpAnd, Right: right}
	}
	return left
}

func (b *Builder) parseEquality() ast.Expr {
	left := b.parseRelational()
	for b.check(lexer.EQ) || b.check(lexer.NEQ) {
		op := b.advance()
		right := b.parseRelational()
		left = &ast.Binary{BaseNode: posOfExpr(left), Left: left, Operator: binaryOpFromToken(op.Type), Right: right}
	}
	return left
}

func (b *Builder) parseRelational() ast.Expr {
	left := b.parseAdditive()
	for b.check(lexer.LT) || b.check(lexer.LE) || b.check(lexer.GT) || b.check(lexer.GE) {
		op := b.advance()
		right := b.parseAdditive()
		left = &ast.Binary{BaseNode: posOfExpr(left), Left: left, Operator: binaryOpFromToken(op.Type), Right: right}
	}
	return left
}

func (b *Builder) parseAdditive() ast.Expr {
	left := b.parseMultiplicative()
	for b.check(lexer.PLUS) || b.check(lexer.MINUS) {
		op := b.advance()
		right := b.parseMultiplicative()
		left = &ast.Binary{BaseNode: posOfExpr(left), Left: left, Operator: binaryOpFromToken(op.Type), Right: right}
	}
	return left
}

func (b *Builder) parseMultiplicative() ast.Expr {
	left := b.parseUnary()
	for b.check(lexer.STAR) || b.check(lexer.SLASH) || b.check(lexer.PERCENT) {
		op := b.advance()
		right := b.parseUnary()
		left = &ast.Binary{BaseNode: posOfExpr(left), Left: left, Operator: binaryOpFromToken(op.Type), Right: right}
	}
	return left
}

func (b *Builder) parseUnary() ast.Expr {
	if b.check(lexer.NOT) || b.check(lexer.MINUS) {
		opTok := b.advance()
		operand := b.parseUnary()
		return &ast.Unary{BaseNode: posOf(opTok), Operator: unaryOpFromToken(opTok.Type), Operand: operand, Prefix: true}
	}
	return b.parsePostfix()
}

func (b *Builder) parsePostfix() ast.Expr {
	expr := b.parsePrimary()
	for {
		switch {
		case b.check(lexer.LPAREN):
			b.advance()
			args := b.parseArgList()
			b.expect(lexer.RPAREN, "')'")
			expr = &ast.Call{BaseNode: posOfExpr(expr), Callee: expr, Args: args}
		case b.check(lexer.DOT):
			b.advance()
			nameTok := b.expect(lexer.IDENTIFIER, "identifier")
			expr = &ast.Member{BaseNode: posOfExpr(expr), Object: expr, Property: nameTok.Value}
		case b.check(lexer.LBRACKET):
			b.advance()
			index := b.parseExpression()
			b.expect(lexer.RBRACKET, "']'")
			expr = &ast.Index{BaseNode: posOfExpr(expr), Object: expr, Index: index}
		default:
			return expr
		}
	}
}

func (b *Builder) parseArgList() []ast.Expr {
	var args []ast.Expr
	if b.check(lexer.RPAREN) {
		return args
	}
	args = append(args, b.parseExpression())
	for b.match(lexer.COMMA) {
		args = append(args, b.parseExpression())
	}
	return args
}

func (b *Builder) parsePrimary() ast.Expr {
	tok := b.peek()
	switch tok.Type {
	case lexer.IDENTIFIER:
		b.advance()
		return &ast.Identifier{BaseNode: posOf(tok), Name: tok.Value}
	case lexer.NUMBER:
		b.advance()
		// Always literal-kind integer: see the Open Question resolution on
		// 0x-prefixed literals (DESIGN.md) — Solidity's implicit
		// literal typing handles address-context use sites.
		return &ast.Literal{BaseNode: posOf(tok), Value: tok.Value, Kind: ast.LiteralInteger}
	case lexer.STRING:
		b.advance()
		return &ast.Literal{BaseNode: posOf(tok), Value: tok.Value, Kind: ast.LiteralString}
	case lexer.TRUE:
		b.advance()
		return &ast.Literal{BaseNode: posOf(tok), Value: "true", Kind: ast.LiteralBoolean}
	case lexer.FALSE:
		b.advance()
		return &ast.Literal{BaseNode: posOf(tok), Value: "false", Kind: ast.LiteralBoolean}
	case lexer.MSG_SENDER, lexer.MSG_VALUE, lexer.BLOCK_TIMESTAMP, lexer.BLOCK_NUMBER, lexer.TX_ORIGIN:
		// Built-ins stay plain Identifiers carrying the original Chinese
		// lexeme; the emitter rewrites them to msg.sender/block.timestamp/
		// etc. at render time without mutating the AST.
		b.advance()
		return &ast.Identifier{BaseNode: posOf(tok), Name: tok.Value}
	case lexer.LPAREN:
		b.advance()
		expr := b.parseExpression()
		b.expect(lexer.RPAREN, "')'")
		return expr
	}
	b.fail("expression")
	return nil
}

func binaryOpFromToken(t lexer.TokenType) ast.BinaryOp {
	switch t {
	case lexer.EQ:
		return ast.OpEqual
	case lexer.NEQ:
		return ast.OpNotEqual
	case lexer.LT:
		return ast.OpLess
	case lexer.LE:
		return ast.OpLessEqual
	case lexer.GT:
		return ast.OpGreater
	case lexer.GE:
		return ast.OpGreaterEqual
	case lexer.PLUS:
		return ast.OpAdd
	case lexer.MINUS:
		return ast.OpSubtract
	case lexer.STAR:
		return ast.OpMultiply
	case lexer.SLASH:
		return ast.OpDivide
	case lexer.PERCENT:
		return ast.OpModulo
	}
	return ""
}

func unaryOpFromToken(t lexer.TokenType) ast.UnaryOp {
	switch t {
	case lexer.NOT:
		return ast.OpNot
	case lexer.MINUS:
		return ast.OpNegate
	}
	return ""
}
