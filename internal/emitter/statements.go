package emitter

import (
	"strings"

	"github.com/zhsc-lang/zhsc/pkg/ast"
)

// renderBlockBody renders a block's braces and statements. level is the
// indentation depth of the construct that owns this block (the line
// carrying the opening brace); statements render one level deeper, and
// the closing brace returns to level.
func (e *Emitter) renderBlockBody(b *ast.Block, level int) (string, error) {
	if len(b.Statements) == 0 {
		return "{}", nil
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Statements {
		line, err := e.renderStmt(s, level+1)
		if err != nil {
			return "", err
		}
		sb.WriteString(indent(level + 1))
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(indent(level))
	sb.WriteString("}")
	return sb.String(), nil
}

// renderStmt renders one statement's text, without a leading indent or
// trailing newline (the caller supplies both). level is this
// statement's own indentation depth, passed through to any block it owns.
func (e *Emitter) renderStmt(s ast.Stmt, level int) (string, error) {
	switch n := s.(type) {
	case *ast.ReturnStmt:
		if n.Value == nil {
			return "return;", nil
		}
		v, err := e.renderExpr(n.Value)
		if err != nil {
			return "", err
		}
		return "return " + v + ";", nil
	case *ast.IfStmt:
		return e.renderIfChain(n, level)
	case *ast.ForStmt:
		return e.renderForStmt(n, level)
	case *ast.WhileStmt:
		cond, err := e.renderExpr(n.Cond)
		if err != nil {
			return "", err
		}
		body, err := e.renderBlockBody(n.Body, level)
		if err != nil {
			return "", err
		}
		return "while (" + cond + ") " + body, nil
	case *ast.ExprStmt:
		v, err := e.renderExpr(n.Expr)
		if err != nil {
			return "", err
		}
		return v + ";", nil
	case *ast.VarDecl:
		return e.renderVarDecl(n)
	}
	return "", &Error{Message: "unknown statement node"}
}

func (e *Emitter) renderVarDecl(n *ast.VarDecl) (string, error) {
	s := n.Type + " " + n.Name
	if n.Initializer != nil {
		v, err := e.renderExpr(n.Initializer)
		if err != nil {
			return "", err
		}
		s += " = " + v
	}
	return s + ";", nil
}

// renderForInit renders a for-loop's init clause without the trailing
// ";" the surrounding for-header supplies itself.
func (e *Emitter) renderForInit(s ast.Stmt) (string, error) {
	switch n := s.(type) {
	case *ast.VarDecl:
		str := n.Type + " " + n.Name
		if n.Initializer != nil {
			v, err := e.renderExpr(n.Initializer)
			if err != nil {
				return "", err
			}
			str += " = " + v
		}
		return str, nil
	case *ast.ExprStmt:
		return e.renderExpr(n.Expr)
	}
	return "", &Error{Message: "unsupported for-loop init statement"}
}

func (e *Emitter) renderForStmt(n *ast.ForStmt, level int) (string, error) {
	initStr := ""
	if n.Init != nil {
		s, err := e.renderForInit(n.Init)
		if err != nil {
			return "", err
		}
		initStr = s
	}
	condStr := ""
	if n.Cond != nil {
		s, err := e.renderExpr(n.Cond)
		if err != nil {
			return "", err
		}
		condStr = s
	}
	updateStr := ""
	if n.Update != nil {
		s, err := e.renderExpr(n.Update)
		if err != nil {
			return "", err
		}
		updateStr = s
	}
	body, err := e.renderBlockBody(n.Body, level)
	if err != nil {
		return "", err
	}
	return "for (" + initStr + "; " + condStr + "; " + updateStr + ") " + body, nil
}

// renderIfChain flattens an arbitrarily deep nested-IfStmt else chain
// into a single "if / else if / ... / else" sequence at one indentation
// level, rather than nesting a block per else-if.
func (e *Emitter) renderIfChain(n *ast.IfStmt, level int) (string, error) {
	var sb strings.Builder
	cond, err := e.renderExpr(n.Cond)
	if err != nil {
		return "", err
	}
	sb.WriteString("if (" + cond + ") ")
	thenBody, err := e.renderBlockBody(n.Then, level)
	if err != nil {
		return "", err
	}
	sb.WriteString(thenBody)

	current := n.Else
	for current != nil {
		switch branch := current.(type) {
		case *ast.IfStmt:
			elseCond, err := e.renderExpr(branch.Cond)
			if err != nil {
				return "", err
			}
			body, err := e.renderBlockBody(branch.Then, level)
			if err != nil {
				return "", err
			}
			sb.WriteString(" else if (" + elseCond + ") ")
			sb.WriteString(body)
			current = branch.Else
		case *ast.Block:
			body, err := e.renderBlockBody(branch, level)
			if err != nil {
				return "", err
			}
			sb.WriteString(" else ")
			sb.WriteString(body)
			current = nil
		default:
			return "", &Error{Message: "unknown else-branch node"}
		}
	}
	return sb.String(), nil
}
