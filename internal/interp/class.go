package interp

import "github.com/golox-lang/golox/internal/lexer"

// Class is a Lox class: itself a Callable (calling it constructs an
// Instance), carrying its own methods and an optional superclass to fall
// back to for method lookup.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up name on this class, then walks the superclass chain.
// It returns the unbound Function; callers bind it to a specific instance.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if method, ok := c.Methods[name]; ok {
		return method, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of `init`, or zero if the class declares none.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance and, if the class (or an ancestor) declares
// init, runs it bound to that instance before returning it.
func (c *Class) Call(i *Interpreter, arguments []any) (any, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(i, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return c.Name
}

// Instance is a runtime instance of a Class: a class pointer plus its own
// mutable field bag. Methods are not stored per-instance; Get resolves them
// through the class on demand and binds `this` at that point.
type Instance struct {
	Class  *Class
	Fields map[string]any
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]any)}
}

// Get looks up a property: an instance field first, then a class method
// bound to this instance. An unknown property is a runtime error.
func (inst *Instance) Get(name lexer.Token) (any, error) {
	if value, ok := inst.Fields[name.Lexeme]; ok {
		return value, nil
	}
	if method, ok := inst.Class.FindMethod(name.Lexeme); ok {
		return method.Bind(inst), nil
	}
	return nil, &RuntimeError{Token: name, Message: "Undefined property '" + name.Lexeme + "'."}
}

// Set always creates or overwrites an instance field; Lox has no notion of
// a fixed field set to validate against.
func (inst *Instance) Set(name lexer.Token, value any) {
	inst.Fields[name.Lexeme] = value
}
