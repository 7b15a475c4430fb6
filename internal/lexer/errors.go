package lexer

import "fmt"

// ErrorKind enumerates the closed LexError category set.
type ErrorKind int

const (
	UnterminatedString ErrorKind = iota
	UnterminatedBlockComment
	UnexpectedCharacter
)

// Error is the LexError tagged error type: lexical failure is
// non-recoverable and abandons the call.
type Error struct {
	Kind    ErrorKind
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Line, e.Column, e.Message)
}
