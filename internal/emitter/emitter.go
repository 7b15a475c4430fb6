package emitter

import (
	"strings"

	"github.com/zhsc-lang/zhsc/pkg/ast"
)

const preamble = "// SPDX-License-Identifier: MIT\npragma solidity ^0.8.0;\n\n"

// Emitter renders a *ast.Program to Solidity source. It holds no mutable
// state across calls, matching the pipeline's synchronous,
// re-entrant-safe design.
type Emitter struct{}

// New creates an Emitter.
func New() *Emitter {
	return &Emitter{}
}

// Emit is a total function on any well-formed AST satisfying the data
// model's invariants; a malformed AST (e.g. an out-of-range literal
// kind) surfaces as a CodeGenError instead of panicking.
func (e *Emitter) Emit(program *ast.Program) (string, error) {
	var sb strings.Builder
	sb.WriteString(preamble)
	for i, c := range program.Contracts {
		text, err := e.renderContract(c)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		sb.WriteString("\n")
		if i < len(program.Contracts)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// renderContract orders members as state variables, then events, then
// the constructor (if present), then functions, irrespective of their
// order in the source; source order is preserved within each group.
func (e *Emitter) renderContract(c *ast.Contract) (string, error) {
	if len(c.StateVariables) == 0 && len(c.Events) == 0 && c.Constructor == nil && len(c.Functions) == 0 {
		return "contract " + c.Name + " {}", nil
	}

	var sb strings.Builder
	sb.WriteString("contract " + c.Name + " {\n")

	for _, sv := range c.StateVariables {
		line, err := e.renderStateVariable(sv)
		if err != nil {
			return "", err
		}
		sb.WriteString(indent(1) + line + "\n")
	}
	for _, ev := range c.Events {
		sb.WriteString(indent(1) + e.renderEvent(ev) + "\n")
	}
	if c.Constructor != nil {
		text, err := e.renderConstructor(c.Constructor)
		if err != nil {
			return "", err
		}
		sb.WriteString(indent(1) + text + "\n")
	}
	for _, fn := range c.Functions {
		text, err := e.renderFunction(fn)
		if err != nil {
			return "", err
		}
		sb.WriteString(indent(1) + text + "\n")
	}

	sb.WriteString("}")
	return sb.String(), nil
}

func (e *Emitter) renderStateVariable(sv *ast.StateVariable) (string, error) {
	vis := sv.Visibility
	if vis == ast.VisibilityDefault {
		vis = ast.VisibilityPrivate
	}
	s := sv.Type + " " + visibilityString(vis) + " " + sv.Name
	if sv.InitialValue != nil {
		v, err := e.renderExpr(sv.InitialValue)
		if err != nil {
			return "", err
		}
		s += " = " + v
	}
	return s + ";", nil
}

func (e *Emitter) renderEvent(ev *ast.Event) string {
	return "event " + ev.Name + "(" + paramListString(ev.Parameters) + ");"
}

func (e *Emitter) renderConstructor(c *ast.Constructor) (string, error) {
	body, err := e.renderBlockBody(c.Body, 1)
	if err != nil {
		return "", err
	}
	return "constructor(" + paramListString(c.Parameters) + ") " + body, nil
}

// renderFunction concatenates the signature in the fixed order:
// function <name>(<params>) <visibility> [<mutability>] [returns (<type>)] <body>
func (e *Emitter) renderFunction(fn *ast.Function) (string, error) {
	vis := fn.Visibility
	if vis == ast.VisibilityDefault {
		vis = ast.VisibilityPublic
	}
	sig := "function " + fn.Name + "(" + paramListString(fn.Parameters) + ") " + visibilityString(vis)
	if fn.Mutability != ast.MutabilityNone {
		sig += " " + mutabilityString(fn.Mutability)
	}
	if fn.ReturnType != "" {
		sig += " returns (" + fn.ReturnType + ")"
	}
	body, err := e.renderBlockBody(fn.Body, 1)
	if err != nil {
		return "", err
	}
	return sig + " " + body, nil
}
