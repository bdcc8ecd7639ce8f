package parser

import (
	"testing"

	"github.com/golox-lang/golox/internal/ast"
	"github.com/golox-lang/golox/internal/lexer"
)

func parse(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	l := lexer.New(source)
	tokens := l.ScanTokens()
	p := New(tokens)
	stmts := p.Parse()
	return stmts
}

func TestParseVarDeclaration(t *testing.T) {
	stmts := parse(t, `var a = 1;`)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	v, ok := stmts[0].(*ast.Var)
	if !ok {
		t.Fatalf("expected *ast.Var, got %T", stmts[0])
	}
	if v.Name.Lexeme != "a" {
		t.Fatalf("got name %q", v.Name.Lexeme)
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	stmts := parse(t, `print -123 * (45.67);`)
	printStmt := stmts[0].(*ast.Print)
	binary, ok := printStmt.Expression.(*ast.Binary)
	if !ok {
		t.Fatalf("expected top-level *ast.Binary, got %T", printStmt.Expression)
	}
	if binary.Operator.Type != lexer.STAR {
		t.Fatalf("expected '*' at top level, got %s", binary.Operator.Type)
	}
	if _, ok := binary.Left.(*ast.Unary); !ok {
		t.Fatalf("expected unary minus on the left, got %T", binary.Left)
	}
	if _, ok := binary.Right.(*ast.Grouping); !ok {
		t.Fatalf("expected grouping on the right, got %T", binary.Right)
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	stmts := parse(t, `a = b = 3;`)
	exprStmt := stmts[0].(*ast.Expression)
	assign, ok := exprStmt.Expression.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", exprStmt.Expression)
	}
	if _, ok := assign.Value.(*ast.Assign); !ok {
		t.Fatalf("expected nested assign as value, got %T", assign.Value)
	}
}

func TestParseInvalidAssignmentTargetIsNonFatal(t *testing.T) {
	l := lexer.New(`1 = 2; print "still parses";`)
	p := New(l.ScanTokens())
	stmts := p.Parse()

	if !p.HadError() {
		t.Fatalf("expected a parse error for invalid assignment target")
	}
	if len(stmts) != 2 {
		t.Fatalf("expected both statements despite the error, got %d", len(stmts))
	}
	if _, ok := stmts[1].(*ast.Print); !ok {
		t.Fatalf("expected second statement to still parse as print, got %T", stmts[1])
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	block, ok := stmts[0].(*ast.Block)
	if !ok {
		t.Fatalf("expected desugared for-loop to be a *ast.Block, got %T", stmts[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("expected [init, while], got %d statements", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.Var); !ok {
		t.Fatalf("expected initializer as first statement, got %T", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(*ast.While)
	if !ok {
		t.Fatalf("expected *ast.While as second statement, got %T", block.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.Block)
	if !ok {
		t.Fatalf("expected while body to be a block wrapping body+increment, got %T", whileStmt.Body)
	}
	if len(body.Statements) != 2 {
		t.Fatalf("expected [body, increment], got %d", len(body.Statements))
	}
}

func TestParseBreakOutsideLoopIsError(t *testing.T) {
	l := lexer.New(`break;`)
	p := New(l.ScanTokens())
	p.Parse()

	if !p.HadError() {
		t.Fatalf("expected an error for break outside a loop")
	}
	if p.Errors()[0].Message != "Must be inside a loop to use 'break'." {
		t.Fatalf("unexpected message: %s", p.Errors()[0].Message)
	}
}

func TestParseErrorRecoveryIndependence(t *testing.T) {
	l := lexer.New(`var = ; print "ok";`)
	p := New(l.ScanTokens())
	stmts := p.Parse()

	if !p.HadError() {
		t.Fatalf("expected parse errors")
	}
	found := false
	for _, s := range stmts {
		if ps, ok := s.(*ast.Print); ok {
			if lit, ok := ps.Expression.(*ast.Literal); ok && lit.Value == "ok" {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected the later valid print statement to still be parsed, got %+v", stmts)
	}
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	stmts := parse(t, `class B < A { init(n) { this.n = n; } greet() { print "hi"; } }`)
	class, ok := stmts[0].(*ast.Class)
	if !ok {
		t.Fatalf("expected *ast.Class, got %T", stmts[0])
	}
	if class.Superclass == nil || class.Superclass.Name.Lexeme != "A" {
		t.Fatalf("expected superclass A, got %+v", class.Superclass)
	}
	if len(class.Methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(class.Methods))
	}
}
