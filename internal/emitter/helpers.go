package emitter

import (
	"strings"

	"github.com/zhsc-lang/zhsc/pkg/ast"
)

const indentUnit = "    "

func indent(level int) string {
	return strings.Repeat(indentUnit, level)
}

// escapeString re-encodes a decoded string-literal value back into
// Solidity double-quoted source form.
func escapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

var builtinRewrites = map[string]string{
	"消息发送者":  "msg.sender",
	"消息值":    "msg.value",
	"区块时间戳":  "block.timestamp",
	"区块号":    "block.number",
	"交易发送者":  "tx.origin",
}

func rewriteIdentifier(name string) string {
	if rewritten, ok := builtinRewrites[name]; ok {
		return rewritten
	}
	return name
}

func visibilityString(v ast.Visibility) string {
	switch v {
	case ast.VisibilityPublic:
		return "public"
	case ast.VisibilityPrivate:
		return "private"
	case ast.VisibilityInternal:
		return "internal"
	case ast.VisibilityExternal:
		return "external"
	}
	return ""
}

func mutabilityString(m ast.Mutability) string {
	switch m {
	case ast.MutabilityPure:
		return "pure"
	case ast.MutabilityView:
		return "view"
	case ast.MutabilityPayable:
		return "payable"
	}
	return ""
}
