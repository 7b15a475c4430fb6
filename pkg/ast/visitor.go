package ast

// Visitor is the interface for visiting AST nodes. Each method returns
// whether traversal should continue into the node's children; returning
// false prunes that subtree. Embed BaseVisitor to get default
// continue-everywhere behavior and override only the methods a given
// visitor cares about.
type Visitor interface {
	VisitProgram(node *Program) bool
	VisitContract(node *Contract) bool
	VisitStateVariable(node *StateVariable) bool
	VisitEvent(node *Event) bool
	VisitConstructor(node *Constructor) bool
	VisitFunction(node *Function) bool
	VisitParameter(node *Parameter) bool
	VisitBlock(node *Block) bool
	VisitReturnStmt(node *ReturnStmt) bool
	VisitIfStmt(node *IfStmt) bool
	VisitForStmt(node *ForStmt) bool
	VisitWhileStmt(node *WhileStmt) bool
	VisitExprStmt(node *ExprStmt) bool
	VisitVarDecl(node *VarDecl) bool
	VisitAssignment(node *Assignment) bool
	VisitBinary(node *Binary) bool
	VisitUnary(node *Unary) bool
	VisitCall(node *Call) bool
	VisitMember(node *Member) bool
	VisitIndex(node *Index) bool
	VisitIdentifier(node *Identifier) bool
	VisitLiteral(node *Literal) bool
}

// BaseVisitor implements Visitor with a no-op "continue into children"
// default for every node kind.
type BaseVisitor struct{}

func (v *BaseVisitor) VisitProgram(node *Program) bool             { return true }
func (v *BaseVisitor) VisitContract(node *Contract) bool           { return true }
func (v *BaseVisitor) VisitStateVariable(node *StateVariable) bool { return true }
func (v *BaseVisitor) VisitEvent(node *Event) bool                 { return true }
func (v *BaseVisitor) VisitConstructor(node *Constructor) bool     { return true }
func (v *BaseVisitor) VisitFunction(node *Function) bool           { return true }
func (v *BaseVisitor) VisitParameter(node *Parameter) bool         { return true }
func (v *BaseVisitor) VisitBlock(node *Block) bool                 { return true }
func (v *BaseVisitor) VisitReturnStmt(node *ReturnStmt) bool       { return true }
func (v *BaseVisitor) VisitIfStmt(node *IfStmt) bool               { return true }
func (v *BaseVisitor) VisitForStmt(node *ForStmt) bool             { return true }
func (v *BaseVisitor) VisitWhileStmt(node *WhileStmt) bool         { return true }
func (v *BaseVisitor) VisitExprStmt(node *ExprStmt) bool           { return true }
func (v *BaseVisitor) VisitVarDecl(node *VarDecl) bool             { return true }
func (v *BaseVisitor) VisitAssignment(node *Assignment) bool       { return true }
func (v *BaseVisitor) VisitBinary(node *Binary) bool                { return true }
func (v *BaseVisitor) VisitUnary(node *Unary) bool                 { return true }
func (v *BaseVisitor) VisitCall(node *Call) bool                   { return true }
func (v *BaseVisitor) VisitMember(node *Member) bool               { return true }
func (v *BaseVisitor) VisitIndex(node *Index) bool                 { return true }
func (v *BaseVisitor) VisitIdentifier(node *Identifier) bool       { return true }
func (v *BaseVisitor) VisitLiteral(node *Literal) bool             { return true }

// Walk dispatches on the dynamic type of node, calls the matching Visit
// method, and — if it returns true — recurses into the node's children.
func Walk(node Node, v Visitor) {
	if node == nil {
		return
	}
	switch n := node.(type) {
	case *Program:
		if !v.VisitProgram(n) {
			return
		}
		for _, c := range n.Contracts {
			Walk(c, v)
		}
	case *Contract:
		if !v.VisitContract(n) {
			return
		}
		for _, sv := range n.StateVariables {
			Walk(sv, v)
		}
		for _, e := range n.Events {
			Walk(e, v)
		}
		if n.Constructor != nil {
			Walk(n.Constructor, v)
		}
		for _, f := range n.Functions {
			Walk(f, v)
		}
	case *StateVariable:
		if !v.VisitStateVariable(n) {
			return
		}
		if n.InitialValue != nil {
			Walk(n.InitialValue, v)
		}
	case *Event:
		if !v.VisitEvent(n) {
			return
		}
		for _, p := range n.Parameters {
			Walk(p, v)
		}
	case *Constructor:
		if !v.VisitConstructor(n) {
			return
		}
		for _, p := range n.Parameters {
			Walk(p, v)
		}
		Walk(n.Body, v)
	case *Function:
		if !v.VisitFunction(n) {
			return
		}
		for _, p := range n.Parameters {
			Walk(p, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}
	case *Parameter:
		v.VisitParameter(n)
	case *Block:
		if !v.VisitBlock(n) {
			return
		}
		for _, s := range n.Statements {
			Walk(s, v)
		}
	case *ReturnStmt:
		if !v.VisitReturnStmt(n) {
			return
		}
		if n.Value != nil {
			Walk(n.Value, v)
		}
	case *IfStmt:
		if !v.VisitIfStmt(n) {
			return
		}
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}
	case *ForStmt:
		if !v.VisitForStmt(n) {
			return
		}
		if n.Init != nil {
			Walk(n.Init, v)
		}
		if n.Cond != nil {
			Walk(n.Cond, v)
		}
		if n.Update != nil {
			Walk(n.Update, v)
		}
		Walk(n.Body, v)
	case *WhileStmt:
		if !v.VisitWhileStmt(n) {
			return
		}
		Walk(n.Cond, v)
		Walk(n.Body, v)
	case *ExprStmt:
		if !v.VisitExprStmt(n) {
			return
		}
		Walk(n.Expr, v)
	case *VarDecl:
		if !v.VisitVarDecl(n) {
			return
		}
		if n.Initializer != nil {
			Walk(n.Initializer, v)
		}
	case *Assignment:
		if !v.VisitAssignment(n) {
			return
		}
		Walk(n.Target, v)
		Walk(n.Value, v)
	case *Binary:
		if !v.VisitBinary(n) {
			return
		}
		Walk(n.Left, v)
		Walk(n.Right, v)
	case *Unary:
		if !v.VisitUnary(n) {
			return
		}
		Walk(n.Operand, v)
	case *Call:
		if !v.VisitCall(n) {
			return
		}
		Walk(n.Callee, v)
		for _, a := range n.Args {
			Walk(a, v)
		}
	case *Member:
		if !v.VisitMember(n) {
			return
		}
		Walk(n.Object, v)
	case *Index:
		if !v.VisitIndex(n) {
			return
		}
		Walk(n.Object, v)
		Walk(n.Index, v)
	case *Identifier:
		v.VisitIdentifier(n)
	case *Literal:
		v.VisitLiteral(n)
	}
}
