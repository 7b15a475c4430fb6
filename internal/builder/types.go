package builder

import "github.com/zhsc-lang/zhsc/internal/lexer"

// parseType parses a Type production and returns its normalized target
// form: a primitive name, or a recursively-built "mapping(K => V)" string.
func (b *Builder) parseType() string {
	tok := b.peek()
	switch tok.Type {
	case lexer.TYPE_INT:
		b.advance()
		return "int256"
	case lexer.TYPE_UINT:
		b.advance()
		return "uint256"
	case lexer.TYPE_STRING:
		b.advance()
		return "string"
	case lexer.TYPE_BOOL:
		b.advance()
		return "bool"
	case lexer.TYPE_ADDRESS:
		b.advance()
		return "address"
	case lexer.TYPE_BYTES:
		b.advance()
		return "bytes"
	case lexer.MAPPING:
		b.advance()
		b.expect(lexer.LPAREN, "'('")
		key := b.parseType()
		b.expect(lexer.ARROW, "'=>'")
		value := b.parseType()
		b.expect(lexer.RPAREN, "')'")
		return "mapping(" + key + " => " + value + ")"
	}
	b.fail("type")
	return ""
}
