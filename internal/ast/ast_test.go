package ast

import "testing"

func TestNodeIdentityIsPerOccurrence(t *testing.T) {
	tok := Token{Type: 0, Lexeme: "a", Line: 1}

	first := NewVariable(tok)
	second := NewVariable(tok)

	if first.ID() == second.ID() {
		t.Fatalf("two distinct Variable nodes with identical content must not share a node ID")
	}
	if first.ID() != first.ID() {
		t.Fatalf("a node's ID must be stable across calls")
	}
}

func TestAcceptDispatchesToMatchingVisitorMethod(t *testing.T) {
	var got string
	visitor := recordingVisitor{record: func(name string) { got = name }}

	lit := NewLiteral(1.0)
	if _, err := lit.Accept(visitor); err != nil {
		t.Fatal(err)
	}
	if got != "Literal" {
		t.Fatalf("got %q, want Literal", got)
	}
}

// recordingVisitor implements ExprVisitor, recording which method fired.
type recordingVisitor struct {
	record func(name string)
}

func (r recordingVisitor) VisitAssignExpr(*Assign) (any, error)     { r.record("Assign"); return nil, nil }
func (r recordingVisitor) VisitBinaryExpr(*Binary) (any, error)     { r.record("Binary"); return nil, nil }
func (r recordingVisitor) VisitCallExpr(*Call) (any, error)         { r.record("Call"); return nil, nil }
func (r recordingVisitor) VisitGetExpr(*Get) (any, error)           { r.record("Get"); return nil, nil }
func (r recordingVisitor) VisitGroupingExpr(*Grouping) (any, error) { r.record("Grouping"); return nil, nil }
func (r recordingVisitor) VisitLiteralExpr(*Literal) (any, error)   { r.record("Literal"); return nil, nil }
func (r recordingVisitor) VisitLogicalExpr(*Logical) (any, error)   { r.record("Logical"); return nil, nil }
func (r recordingVisitor) VisitSetExpr(*Set) (any, error)           { r.record("Set"); return nil, nil }
func (r recordingVisitor) VisitSuperExpr(*Super) (any, error)       { r.record("Super"); return nil, nil }
func (r recordingVisitor) VisitThisExpr(*This) (any, error)         { r.record("This"); return nil, nil }
func (r recordingVisitor) VisitUnaryExpr(*Unary) (any, error)       { r.record("Unary"); return nil, nil }
func (r recordingVisitor) VisitVariableExpr(*Variable) (any, error) {
	r.record("Variable")
	return nil, nil
}
