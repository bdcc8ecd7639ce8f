package interp

import "github.com/golox-lang/golox/internal/lexer"

// Environment is a chained, mutable lexical scope. Lox is case-sensitive and
// allows shadowing, so lookups are plain map lookups rather than the
// case-insensitive identifier maps used elsewhere in this codebase's
// ancestry; two bindings named "a" and "A" are entirely distinct.
type Environment struct {
	values    map[string]any
	enclosing *Environment
}

// NewEnvironment creates a scope with no parent; used for the global scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]any)}
}

// NewEnclosedEnvironment creates a scope nested inside enclosing; used for
// every block, function call, and loop body.
func NewEnclosedEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]any), enclosing: enclosing}
}

// Define binds name in this scope, overwriting any existing binding. Unlike
// Assign, Define never fails: redeclaring a variable in the same scope is
// legal at runtime (the resolver only forbids it for locals, in its static
// pass before execution).
func (e *Environment) Define(name string, value any) {
	e.values[name] = value
}

// Get looks up name starting in this scope and walking outward. An unbound
// name is a runtime error, not a zero value, since Lox has no notion of an
// implicit nil-valued global.
func (e *Environment) Get(name lexer.Token) (any, error) {
	if value, ok := e.values[name.Lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, &RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."}
}

// Assign updates an existing binding, walking outward through enclosing
// scopes. It never creates a new binding; assigning to an undeclared name is
// a runtime error.
func (e *Environment) Assign(name lexer.Token, value any) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return &RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."}
}

// Names returns every name bound directly in this scope (not its ancestors),
// in no particular order. Used by the REPL's environment dump.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	return names
}

// Lookup reads a name bound directly in this scope, without walking to
// enclosing scopes. Used by the REPL's environment dump, which only ever
// inspects the global scope.
func (e *Environment) Lookup(name string) (any, bool) {
	value, ok := e.values[name]
	return value, ok
}

// ancestor walks exactly distance scopes outward. Called only with distances
// produced by the resolver, so the chain is always long enough.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the scope exactly distance links outward, bypassing
// the walk-until-found search Get does. This is what lets a closure recover
// the binding it saw at definition time even after an intervening
// redeclaration shadows the name in an inner scope.
func (e *Environment) GetAt(distance int, name string) any {
	return e.ancestor(distance).values[name]
}

// AssignAt assigns name in the scope exactly distance links outward.
func (e *Environment) AssignAt(distance int, name lexer.Token, value any) {
	e.ancestor(distance).values[name.Lexeme] = value
}
