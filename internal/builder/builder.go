package builder

import (
	"github.com/zhsc-lang/zhsc/internal/lexer"
	"github.com/zhsc-lang/zhsc/pkg/ast"
)

func (b *Builder) parseProgram() *ast.Program {
	first := b.peek()
	program := &ast.Program{BaseNode: posOf(first)}
	for !b.atEnd() {
		program.Contracts = append(program.Contracts, b.parseContract())
	}
	return program
}

// Contract := "contract" Identifier "{" ContractMember* "}"
func (b *Builder) parseContract() *ast.Contract {
	tok := b.expect(lexer.CONTRACT, "'合约'")
	nameTok := b.expect(lexer.IDENTIFIER, "identifier")
	contract := &ast.Contract{BaseNode: posOf(tok), Name: nameTok.Value}

	b.expect(lexer.LBRACE, "'{'")
	for !b.check(lexer.RBRACE) && !b.atEnd() {
		switch b.peek().Type {
		case lexer.EVENT:
			contract.Events = append(contract.Events, b.parseEvent())
		case lexer.CONSTRUCTOR:
			if contract.Constructor != nil {
				b.fail("at most one constructor per contract")
			}
			contract.Constructor = b.parseConstructor()
		case lexer.FUNCTION:
			contract.Functions = append(contract.Functions, b.parseFunction())
		default:
			contract.StateVariables = append(contract.StateVariables, b.parseStateVariable())
		}
	}
	b.expect(lexer.RBRACE, "'}'")
	return contract
}

// StateVariable := [Visibility] Type [Visibility] Identifier ("=" Expression)? ";"
// The visibility may sit before or after the type, but only once.
func (b *Builder) parseStateVariable() *ast.StateVariable {
	tok := b.peek()
	visibility := ast.VisibilityDefault
	if isVisibilityToken(b.peek().Type) {
		visibility = visibilityFromToken(b.advance().Type)
	}
	typ := b.parseType()
	if visibility == ast.VisibilityDefault && isVisibilityToken(b.peek().Type) {
		visibility = visibilityFromToken(b.advance().Type)
	}
	nameTok := b.expect(lexer.IDENTIFIER, "identifier")
	sv := &ast.StateVariable{BaseNode: posOf(tok), Name: nameTok.Value, Type: typ, Visibility: visibility}
	if b.match(lexer.ASSIGN) {
		sv.InitialValue = b.parseExpression()
	}
	b.expect(lexer.SEMICOLON, "';'")
	return sv
}

// Event := "event" Identifier "(" ParamList? ")" ";"
func (b *Builder) parseEvent() *ast.Event {
	tok := b.advance()
	nameTok := b.expect(lexer.IDENTIFIER, "identifier")
	b.expect(lexer.LPAREN, "'('")
	params := b.parseParamList()
	b.expect(lexer.RPAREN, "')'")
	b.expect(lexer.SEMICOLON, "';'")
	return &ast.Event{BaseNode: posOf(tok), Name: nameTok.Value, Parameters: params}
}

// Constructor := "constructor" "(" ParamList? ")" Block
func (b *Builder) parseConstructor() *ast.Constructor {
	tok := b.advance()
	b.expect(lexer.LPAREN, "'('")
	params := b.parseParamList()
	b.expect(lexer.RPAREN, "')'")
	body := b.parseBlock()
	return &ast.Constructor{BaseNode: posOf(tok), Parameters: params, Body: body}
}

// Function := "function" Identifier "(" ParamList? ")" Modifier*
// ("returns" Type)? Block, where Modifier ∈ Visibility ∪ Mutability.
// "返回" doubles as the "returns" marker here, disambiguated by appearing
// in this modifier-tail position rather than as a block statement.
func (b *Builder) parseFunction() *ast.Function {
	tok := b.advance()
	nameTok := b.expect(lexer.IDENTIFIER, "identifier")
	b.expect(lexer.LPAREN, "'('")
	params := b.parseParamList()
	b.expect(lexer.RPAREN, "')'")

	fn := &ast.Function{
		BaseNode:   posOf(tok),
		Name:       nameTok.Value,
		Parameters: params,
	}
modifierLoop:
	for {
		switch {
		case isVisibilityToken(b.peek().Type):
			fn.Visibility = visibilityFromToken(b.advance().Type)
		case isMutabilityToken(b.peek().Type):
			fn.Mutability = mutabilityFromToken(b.advance().Type)
		case b.check(lexer.RETURN):
			b.advance()
			fn.ReturnType = b.parseType()
		default:
			break modifierLoop
		}
	}

	fn.Body = b.parseBlock()
	return fn
}

func (b *Builder) parseParamList() []*ast.Parameter {
	var params []*ast.Parameter
	if b.check(lexer.RPAREN) {
		return params
	}
	params = append(params, b.parseParameter())
	for b.match(lexer.COMMA) {
		params = append(params, b.parseParameter())
	}
	return params
}

func (b *Builder) parseParameter() *ast.Parameter {
	tok := b.peek()
	typ := b.parseType()
	nameTok := b.expect(lexer.IDENTIFIER, "identifier")
	return &ast.Parameter{BaseNode: posOf(tok), Name: nameTok.Value, Type: typ}
}
