package interp

import "github.com/golox-lang/golox/internal/ast"

// Callable is anything Lox can invoke with `(...)`: user-defined functions
// and methods, classes (which construct instances), and native functions
// like clock.
type Callable interface {
	Arity() int
	Call(i *Interpreter, arguments []any) (any, error)
	String() string
}

// Function is a user-defined function or method, closing over the
// environment active at its definition site - the standard mechanism behind
// Lox closures.
type Function struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

// NewFunction wraps a parsed function declaration as a callable closing over
// closure. isInitializer marks methods named "init": their Call always
// returns the bound instance regardless of an explicit bare `return;`.
func NewFunction(declaration *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

// Bind returns a new Function identical to f except its closure additionally
// defines "this" as instance. Called once per method lookup on a specific
// instance, so each bound method has its own private view of "this".
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

func (f *Function) Call(i *Interpreter, arguments []any) (any, error) {
	env := NewEnclosedEnvironment(f.closure)
	for idx, param := range f.declaration.Params {
		env.Define(param.Lexeme, arguments[idx])
	}

	err := i.executeBlock(f.declaration.Body, env)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			if f.isInitializer {
				return f.closure.GetAt(0, "this"), nil
			}
			return ret.Value, nil
		}
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

// NativeFunction adapts a Go function to Callable, for builtins like clock
// that have no Lox-level declaration to close over.
type NativeFunction struct {
	name  string
	arity int
	fn    func(i *Interpreter, arguments []any) (any, error)
}

func NewNativeFunction(name string, arity int, fn func(i *Interpreter, arguments []any) (any, error)) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(i *Interpreter, arguments []any) (any, error) {
	return n.fn(i, arguments)
}

func (n *NativeFunction) String() string { return "<native fn>" }
