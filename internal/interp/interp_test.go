package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golox-lang/golox/internal/lexer"
	"github.com/golox-lang/golox/internal/parser"
	"github.com/golox-lang/golox/internal/semantic"
)

func run(t *testing.T, source string) (string, error) {
	t.Helper()

	l := lexer.New(source)
	tokens := l.ScanTokens()
	if len(l.Errors()) != 0 {
		t.Fatalf("unexpected lex errors: %+v", l.Errors())
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HadError() {
		t.Fatalf("unexpected parse errors: %+v", p.Errors())
	}

	r := semantic.New()
	locals, errs := r.Resolve(stmts)
	if len(errs) != 0 {
		t.Fatalf("unexpected resolve errors: %+v", errs)
	}

	var out bytes.Buffer
	i := New(&out)
	err := i.Interpret(stmts, locals)
	return out.String(), err
}

func TestEndToEndArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print -123 * (45.67);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "-5617.41" {
		t.Fatalf("got %q", out)
	}
}

func TestEndToEndVariableArithmetic(t *testing.T) {
	out, err := run(t, `var a = 1; var b = 2; print a + b;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Fatalf("got %q", out)
	}
}

func TestEndToEndClosureOverShadowedGlobal(t *testing.T) {
	out, err := run(t, `var a = "global"; { fun show() { print a; } var a = "local"; show(); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "global" {
		t.Fatalf("got %q", out)
	}
}

func TestEndToEndMethodCall(t *testing.T) {
	out, err := run(t, `class Greeter { greet() { print "hi"; } } Greeter().greet();`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "hi" {
		t.Fatalf("got %q", out)
	}
}

func TestEndToEndSuperInitChaining(t *testing.T) {
	out, err := run(t, `class A { init(n) { this.n = n; } } class B < A { init(n) { super.init(n); } } print B(7).n;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "7" {
		t.Fatalf("got %q", out)
	}
}

func TestEndToEndForLoopBreak(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) { if (i == 2) break; print i; }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "0\n1" {
		t.Fatalf("got %q", out)
	}
}

func TestInitReturnsInstanceRegardlessOfBareReturn(t *testing.T) {
	out, err := run(t, `
		class C {
			init() {
				return;
			}
		}
		var c = C();
		print c;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "C instance" {
		t.Fatalf("got %q", out)
	}
}

func TestShortCircuitPreservesOperandValue(t *testing.T) {
	out, err := run(t, `
		print "hi" or 2;
		print nil and "unreached";
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "hi" || lines[1] != "nil" {
		t.Fatalf("got %v", lines)
	}
}

func TestMethodBindingSharesThisAcrossLookups(t *testing.T) {
	out, err := run(t, `
		class Counter {
			init() { this.count = 0; }
			increment() { this.count = this.count + 1; return this.count; }
		}
		var c = Counter();
		var bump = c.increment;
		bump();
		var bumpAgain = c.increment;
		bumpAgain();
		print c.count;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "2" {
		t.Fatalf("got %q", out)
	}
}

func TestRuntimeErrorOnUndefinedVariable(t *testing.T) {
	_, err := run(t, `print undeclared;`)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	rtErr, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	if rtErr.Message != "Undefined variable 'undeclared'." {
		t.Fatalf("got %q", rtErr.Message)
	}
}

func TestRuntimeErrorOnCallingNonCallable(t *testing.T) {
	_, err := run(t, `var a = 1; a();`)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	rtErr, ok := err.(*RuntimeError)
	if !ok || rtErr.Message != "Can only call functions and classes." {
		t.Fatalf("got %v", err)
	}
}

func TestRuntimeErrorOnArityMismatch(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	rtErr, ok := err.(*RuntimeError)
	if !ok || rtErr.Message != "Expected 2 arguments but got 1." {
		t.Fatalf("got %v", err)
	}
}

func TestStringNumberConcatenationExtension(t *testing.T) {
	out, err := run(t, `print "count: " + 3;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "count: 3" {
		t.Fatalf("got %q", out)
	}
}

func TestDivisionByZeroFollowsIEEE754(t *testing.T) {
	out, err := run(t, `print 1 / 0;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "inf" {
		t.Fatalf("got %q", out)
	}
}
