// Package semantic implements golox's resolver: a single static pass over
// the parsed AST that binds every variable reference to the number of
// enclosing scopes between its use and its declaration. The interpreter
// consults this side table instead of walking the environment chain at
// runtime, which is what makes closures over shadowed globals behave
// correctly (see spec.md §4.3's "the classic closure-over-a-shadowed-global
// puzzle").
//
// The pass also enforces every static error spec.md assigns to this stage:
// self-referential initializers, duplicate local declarations, return and
// this/super used outside their valid contexts, and a class inheriting from
// itself.
package semantic

import (
	"github.com/golox-lang/golox/internal/ast"
)

// functionType tracks the kind of function/method the resolver is currently
// inside, so return and this/super errors can be reported precisely.
type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionMethod
	functionInitializer
)

// classType tracks whether the resolver is currently inside a class body,
// and whether that class has a superclass, for this/super validation.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks a parsed program exactly once, maintaining a stack of
// lexical scopes. It never evaluates anything; it only computes distances
// and reports static errors.
type Resolver struct {
	scopes []map[string]bool
	locals map[ast.NodeID]int

	currentFunction functionType
	currentClass    classType

	errors []Error
}

// New creates a Resolver ready to resolve a program.
func New() *Resolver {
	return &Resolver{
		locals: make(map[ast.NodeID]int),
	}
}

// Resolve runs the resolver over the given statements and returns the
// variable-distance table alongside any static errors found. The distance
// table is only meaningful when len(errors) == 0, but is returned either way
// so callers doing best-effort diagnostics can still inspect partial results.
func (r *Resolver) Resolve(stmts []ast.Stmt) (map[ast.NodeID]int, []Error) {
	r.resolveStmts(stmts)
	return r.locals, r.errors
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	_, _ = stmt.Accept(r)
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	_, _ = expr.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope as "not yet ready", so that its
// own initializer cannot refer to it. Declaring at the global scope (an
// empty scope stack) is a no-op: globals may be silently redeclared, unlike
// locals.
func (r *Resolver) declare(name ast.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.report(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks name as fully initialized in the innermost scope.
func (r *Resolver) define(name ast.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward, and records the
// distance at which name is found. An unresolved name is left out of the
// table entirely, meaning "look it up as a global at runtime."
func (r *Resolver) resolveLocal(expr ast.Expr, name ast.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) report(token ast.Token, message string) {
	r.errors = append(r.errors, Error{Token: token, Message: message})
}
