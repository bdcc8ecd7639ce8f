package semantic

import (
	"testing"

	"github.com/golox-lang/golox/internal/ast"
	"github.com/golox-lang/golox/internal/lexer"
	"github.com/golox-lang/golox/internal/parser"
)

func resolve(t *testing.T, source string) (map[ast.NodeID]int, []Error) {
	t.Helper()
	l := lexer.New(source)
	p := parser.New(l.ScanTokens())
	stmts := p.Parse()
	if p.HadError() {
		t.Fatalf("unexpected parse errors: %+v", p.Errors())
	}
	r := New()
	return r.Resolve(stmts)
}

func messages(errs []Error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}

func TestResolveSelfReferentialInitializerIsError(t *testing.T) {
	_, errs := resolve(t, `var a = "outer"; { var a = a; }`)
	if len(errs) != 1 || errs[0].Message != "Can't read local variable in its own initializer." {
		t.Fatalf("got %+v", messages(errs))
	}
}

func TestResolveDuplicateLocalDeclarationIsError(t *testing.T) {
	_, errs := resolve(t, `{ var a = 1; var a = 2; }`)
	if len(errs) != 1 || errs[0].Message != "Already a variable with this name in this scope." {
		t.Fatalf("got %+v", messages(errs))
	}
}

func TestResolveDuplicateGlobalDeclarationIsAllowed(t *testing.T) {
	_, errs := resolve(t, `var a = 1; var a = 2;`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors for duplicate globals, got %+v", messages(errs))
	}
}

func TestResolveReturnAtTopLevelIsError(t *testing.T) {
	_, errs := resolve(t, `return 1;`)
	if len(errs) != 1 || errs[0].Message != "Can't return from top-level code." {
		t.Fatalf("got %+v", messages(errs))
	}
}

func TestResolveReturnValueFromInitializerIsError(t *testing.T) {
	_, errs := resolve(t, `class C { init() { return 1; } }`)
	if len(errs) != 1 || errs[0].Message != "Can't return a value from an initializer." {
		t.Fatalf("got %+v", messages(errs))
	}
}

func TestResolveBareReturnFromInitializerIsAllowed(t *testing.T) {
	_, errs := resolve(t, `class C { init() { return; } }`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", messages(errs))
	}
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	_, errs := resolve(t, `print this;`)
	if len(errs) != 1 || errs[0].Message != "Can't use 'this' outside of a class." {
		t.Fatalf("got %+v", messages(errs))
	}
}

func TestResolveSuperOutsideClassIsError(t *testing.T) {
	_, errs := resolve(t, `super.method();`)
	if len(errs) != 1 || errs[0].Message != "Can't use 'super' outside of a class." {
		t.Fatalf("got %+v", messages(errs))
	}
}

func TestResolveSuperWithoutSuperclassIsError(t *testing.T) {
	_, errs := resolve(t, `class C { method() { super.method(); } }`)
	if len(errs) != 1 || errs[0].Message != "Can't use 'super' in a class with no superclass." {
		t.Fatalf("got %+v", messages(errs))
	}
}

func TestResolveClassInheritingFromItselfIsError(t *testing.T) {
	_, errs := resolve(t, `class C < C {}`)
	if len(errs) != 1 || errs[0].Message != "A class can't inherit from itself." {
		t.Fatalf("got %+v", messages(errs))
	}
}

func TestResolveClosureOverShadowedGlobal(t *testing.T) {
	// The classic jlox closure test: when showA is resolved, the block-local
	// "a" has not been declared yet, so the "a" inside showA must resolve as
	// the global and keep doing so after the block declares its own "a".
	// Only the two showA callee references are locals (distance 0).
	locals, errs := resolve(t, `
		var a = "global";
		{
			fun showA() {
				print a;
			}
			showA();
			var a = "block";
			showA();
		}
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", messages(errs))
	}
	if len(locals) != 2 {
		t.Fatalf("expected the print inside showA to resolve as a global (only the two showA calls in the locals table), got %+v", locals)
	}
	for _, distance := range locals {
		if distance != 0 {
			t.Fatalf("expected distance 0 for the showA calls in their own block, got %d", distance)
		}
	}
}

func TestResolveLocalVariableDistance(t *testing.T) {
	locals, errs := resolve(t, `
		{
			var a = 1;
			{
				print a;
			}
		}
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", messages(errs))
	}
	if len(locals) != 1 {
		t.Fatalf("expected exactly one resolved local, got %d", len(locals))
	}
	for _, distance := range locals {
		if distance != 1 {
			t.Fatalf("expected distance 1 for a variable one block up, got %d", distance)
		}
	}
}
