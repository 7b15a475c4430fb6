package emitter

import (
	"strings"

	"github.com/zhsc-lang/zhsc/pkg/ast"
)

// Types arrive already normalized into their target Solidity form by the
// parser's type grammar ("int256", "mapping(address => uint256)", ...),
// so the emitter renders them verbatim; there is no further translation
// step here, only assembly into parameter lists.
func paramListString(params []*ast.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type + " " + p.Name
	}
	return strings.Join(parts, ", ")
}
