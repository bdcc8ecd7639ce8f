// Package interp implements golox's tree-walking evaluator: it executes a
// parsed, resolved program directly over the AST, without compiling to any
// intermediate bytecode.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/golox-lang/golox/internal/ast"
)

// Interpreter walks a resolved AST and executes it. It owns the global
// environment, the environment currently in scope, the resolver's
// variable-distance table, and the stream `print` writes to.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[ast.NodeID]int
	stdout      io.Writer
}

// New creates an Interpreter writing `print` output to stdout, with the
// global scope pre-populated with golox's one required native, clock.
func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment()
	i := &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.NodeID]int),
		stdout:      stdout,
	}

	globals.Define("clock", NewNativeFunction("clock", 0, func(*Interpreter, []any) (any, error) {
		return float64(time.Now().UnixNano()) / 1e9, nil
	}))

	return i
}

// Globals exposes the top-level environment, used by the REPL's `@` dump
// command.
func (i *Interpreter) Globals() *Environment {
	return i.globals
}

// Interpret runs a resolved program: stmts is the parsed AST, locals is the
// variable-distance table the resolver produced for it. locals is merged
// into the interpreter's accumulated table rather than replacing it, so a
// REPL can call Interpret once per line while functions and closures defined
// on earlier lines keep resolving correctly - ast.NodeID is a
// process-wide monotonic counter, so node identities from different lines
// never collide. A RuntimeError aborts execution of the remaining
// statements and is returned to the caller; any other error indicates a bug
// in this package, since every resolved program should otherwise run to
// completion.
func (i *Interpreter) Interpret(stmts []ast.Stmt, locals map[ast.NodeID]int) error {
	for id, distance := range locals {
		i.locals[id] = distance
	}
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	_, err := stmt.Accept(i)
	return err
}

func (i *Interpreter) evaluate(expr ast.Expr) (any, error) {
	return expr.Accept(i)
}

// executeBlock runs stmts in env, restoring the previous environment
// afterwards even if a control signal or runtime error unwinds through it.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := i.environment
	defer func() { i.environment = previous }()

	i.environment = env
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// lookUpVariable reads name using the resolver's distance for this exact
// expression occurrence, falling back to a global lookup when the resolver
// left it unresolved (meaning it was never found in any enclosing scope).
func (i *Interpreter) lookUpVariable(name ast.Token, expr ast.Expr) (any, error) {
	if distance, ok := i.locals[expr.ID()]; ok {
		return i.environment.GetAt(distance, name.Lexeme), nil
	}
	return i.globals.Get(name)
}

func (i *Interpreter) print(value any) {
	fmt.Fprintln(i.stdout, stringify(value))
}
