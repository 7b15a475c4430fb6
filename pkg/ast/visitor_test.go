package ast_test

import (
	"testing"

	"github.com/zhsc-lang/zhsc/pkg/ast"
)

// functionNameVisitor mirrors the teacher's TestVisitor shape: a Visitor
// that only cares about one node kind, embedding BaseVisitor for the
// continue-everywhere default on everything else.
type functionNameVisitor struct {
	ast.BaseVisitor
	names []string
}

func (v *functionNameVisitor) VisitFunction(node *ast.Function) bool {
	v.names = append(v.names, node.Name)
	return true
}

func TestWalkVisitsEveryFunctionInOrder(t *testing.T) {
	program := &ast.Program{
		Contracts: []*ast.Contract{
			{
				Name: "Test",
				Functions: []*ast.Function{
					{Name: "foo", Body: &ast.Block{}},
					{Name: "bar", Body: &ast.Block{}},
				},
			},
		},
	}

	v := &functionNameVisitor{}
	ast.Walk(program, v)

	if len(v.names) != 2 {
		t.Fatalf("expected 2 functions, found %d", len(v.names))
	}
	if v.names[0] != "foo" || v.names[1] != "bar" {
		t.Errorf("expected [foo bar] in source order, got %v", v.names)
	}
}

// pruningVisitor returning false from VisitContract must stop Walk from
// descending into that contract's members at all.
type pruningVisitor struct {
	ast.BaseVisitor
	sawContract bool
	sawFunction bool
}

func (v *pruningVisitor) VisitContract(node *ast.Contract) bool {
	v.sawContract = true
	return false
}

func (v *pruningVisitor) VisitFunction(node *ast.Function) bool {
	v.sawFunction = true
	return true
}

func TestWalkPrunesSubtreeWhenVisitReturnsFalse(t *testing.T) {
	program := &ast.Program{
		Contracts: []*ast.Contract{
			{Name: "Test", Functions: []*ast.Function{{Name: "foo", Body: &ast.Block{}}}},
		},
	}

	v := &pruningVisitor{}
	ast.Walk(program, v)

	if !v.sawContract {
		t.Fatal("expected VisitContract to be called")
	}
	if v.sawFunction {
		t.Error("expected Walk to prune the contract's children after VisitContract returned false")
	}
}
