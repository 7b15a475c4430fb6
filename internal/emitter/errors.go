// Package emitter renders a *ast.Program as Solidity source: a structured
// pretty-printer with managed indentation, a fixed token-mapping table,
// and operator-precedence-aware parenthesization.
package emitter

import "fmt"

// Error is the CodeGenError tagged error type: reserved for invariants
// the emitter relies on (an unknown literal kind, for instance). In a
// well-formed pipeline this is unreachable.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("internal code generation error: %s", e.Message)
}
