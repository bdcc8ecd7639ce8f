package interp

import "github.com/golox-lang/golox/internal/lexer"

// RuntimeError is a failure surfaced while executing an already-resolved
// program: a type mismatch, an undefined variable, a call to a non-callable
// value, and so on. It carries the token responsible so the driver can
// render spec.md's "MESSAGE\n[line N]" wire format.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// returnSignal unwinds a function call in progress back to its Call site. It
// is never a user-visible error; Function.Call catches it and returns Value
// as the call's result.
type returnSignal struct {
	Value any
}

func (s *returnSignal) Error() string { return "return" }

// breakSignal unwinds a loop body back to the nearest enclosing VisitWhileStmt,
// which catches it and stops looping. The parser guarantees every break is
// lexically inside a loop, so the interpreter never needs to check for one
// escaping all the way out.
type breakSignal struct{}

func (s *breakSignal) Error() string { return "break" }
