package emitter

import (
	"strconv"
	"strings"

	"github.com/zhsc-lang/zhsc/pkg/ast"
)

// exprPrecedence mirrors the parser's precedence table so the emitter
// can decide, purely from node shape, where parentheses are required.
func exprPrecedence(e ast.Expr) int {
	switch n := e.(type) {
	case *ast.Assignment:
		return 1
	case *ast.Binary:
		switch n.Operator {
		case ast.OpOr:
			return 2
		case ast.OpAnd:
			return 3
		case ast.OpEqual, ast.OpNotEqual:
			return 4
		case ast.OpLess, ast.OpLessEqual, ast.OpGreater, ast.OpGreaterEqual:
			return 5
		case ast.OpAdd, ast.OpSubtract:
			return 6
		case ast.OpMultiply, ast.OpDivide, ast.OpModulo:
			return 7
		}
	case *ast.Unary:
		return 8
	}
	// Call, Member, Index, Identifier, Literal: postfix/primary.
	return 9
}

func (e *Emitter) renderExpr(expr ast.Expr) (string, error) {
	switch n := expr.(type) {
	case *ast.Assignment:
		return e.renderAssignment(n)
	case *ast.Binary:
		return e.renderBinary(n)
	case *ast.Unary:
		return e.renderUnary(n)
	case *ast.Call:
		return e.renderCall(n)
	case *ast.Member:
		return e.renderMember(n)
	case *ast.Index:
		return e.renderIndex(n)
	case *ast.Identifier:
		return rewriteIdentifier(n.Name), nil
	case *ast.Literal:
		return e.renderLiteral(n)
	}
	return "", &Error{Message: "unknown expression node"}
}

func (e *Emitter) renderAssignment(n *ast.Assignment) (string, error) {
	target, err := e.renderExpr(n.Target)
	if err != nil {
		return "", err
	}
	value, err := e.renderExpr(n.Value)
	if err != nil {
		return "", err
	}
	return target + " " + string(n.Operator) + " " + value, nil
}

func (e *Emitter) renderBinary(n *ast.Binary) (string, error) {
	parentPrec := exprPrecedence(n)
	left, err := e.renderOperand(n.Left, parentPrec, false)
	if err != nil {
		return "", err
	}
	right, err := e.renderOperand(n.Right, parentPrec, true)
	if err != nil {
		return "", err
	}
	return left + " " + string(n.Operator) + " " + right, nil
}

// renderOperand renders a binary operand and parenthesizes it when its
// precedence is lower than the parent's, or equal on the
// non-associative side (the right side, since every binary operator
// here is left-associative).
func (e *Emitter) renderOperand(operand ast.Expr, parentPrec int, isRight bool) (string, error) {
	s, err := e.renderExpr(operand)
	if err != nil {
		return "", err
	}
	childPrec := exprPrecedence(operand)
	if childPrec < parentPrec || (childPrec == parentPrec && isRight) {
		return "(" + s + ")", nil
	}
	return s, nil
}

func (e *Emitter) renderUnary(n *ast.Unary) (string, error) {
	s, err := e.renderExpr(n.Operand)
	if err != nil {
		return "", err
	}
	if exprPrecedence(n.Operand) < 8 {
		s = "(" + s + ")"
	}
	return string(n.Operator) + s, nil
}

func (e *Emitter) renderCall(n *ast.Call) (string, error) {
	callee, err := e.renderOperand(n.Callee, 9, false)
	if err != nil {
		return "", err
	}
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		s, err := e.renderExpr(a)
		if err != nil {
			return "", err
		}
		args[i] = s
	}
	return callee + "(" + strings.Join(args, ", ") + ")", nil
}

func (e *Emitter) renderMember(n *ast.Member) (string, error) {
	object, err := e.renderOperand(n.Object, 9, false)
	if err != nil {
		return "", err
	}
	return object + "." + n.Property, nil
}

func (e *Emitter) renderIndex(n *ast.Index) (string, error) {
	object, err := e.renderOperand(n.Object, 9, false)
	if err != nil {
		return "", err
	}
	index, err := e.renderExpr(n.Index)
	if err != nil {
		return "", err
	}
	return object + "[" + index + "]", nil
}

func (e *Emitter) renderLiteral(n *ast.Literal) (string, error) {
	switch n.Kind {
	case ast.LiteralInteger, ast.LiteralAddress:
		return n.Value, nil
	case ast.LiteralString:
		return `"` + escapeString(n.Value) + `"`, nil
	case ast.LiteralBoolean:
		return n.Value, nil
	}
	return "", &Error{Message: "unknown literal kind " + strconv.Itoa(int(n.Kind))}
}
