package interp

import (
	"fmt"

	"github.com/golox-lang/golox/internal/ast"
)

func (i *Interpreter) VisitAssignExpr(expr *ast.Assign) (any, error) {
	value, err := i.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := i.locals[expr.ID()]; ok {
		i.environment.AssignAt(distance, expr.Name, value)
	} else if err := i.globals.Assign(expr.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (i *Interpreter) VisitBinaryExpr(expr *ast.Binary) (any, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	return i.evaluateBinary(expr.Operator, left, right)
}

func (i *Interpreter) VisitCallExpr(expr *ast.Call) (any, error) {
	callee, err := i.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]any, len(expr.Arguments))
	for idx, arg := range expr.Arguments {
		value, err := i.evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments[idx] = value
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: expr.Paren, Message: "Can only call functions and classes."}
	}

	if len(arguments) != callable.Arity() {
		return nil, &RuntimeError{
			Token:   expr.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(arguments)),
		}
	}

	return callable.Call(i, arguments)
}

func (i *Interpreter) VisitGetExpr(expr *ast.Get) (any, error) {
	object, err := i.evaluate(expr.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*Instance)
	if !ok {
		return nil, &RuntimeError{Token: expr.Name, Message: "Only instances have properties."}
	}
	return instance.Get(expr.Name)
}

func (i *Interpreter) VisitGroupingExpr(expr *ast.Grouping) (any, error) {
	return i.evaluate(expr.Expression)
}

func (i *Interpreter) VisitLiteralExpr(expr *ast.Literal) (any, error) {
	return expr.Value, nil
}

func (i *Interpreter) VisitLogicalExpr(expr *ast.Logical) (any, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	if expr.Operator.Lexeme == "or" {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}

	return i.evaluate(expr.Right)
}

func (i *Interpreter) VisitSetExpr(expr *ast.Set) (any, error) {
	object, err := i.evaluate(expr.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*Instance)
	if !ok {
		return nil, &RuntimeError{Token: expr.Name, Message: "Only instances have fields."}
	}

	value, err := i.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}

	instance.Set(expr.Name, value)
	return value, nil
}

// VisitSuperExpr finds the superclass via the "super" binding at the
// resolved distance, then walks one frame nearer (distance-1) for "this" -
// exactly the relationship the resolver set up when it pushed the two
// synthetic scopes.
func (i *Interpreter) VisitSuperExpr(expr *ast.Super) (any, error) {
	distance := i.locals[expr.ID()]
	superclass := i.environment.GetAt(distance, "super").(*Class)
	instance := i.environment.GetAt(distance-1, "this").(*Instance)

	method, ok := superclass.FindMethod(expr.Method.Lexeme)
	if !ok {
		return nil, &RuntimeError{Token: expr.Method, Message: "Undefined property '" + expr.Method.Lexeme + "'."}
	}
	return method.Bind(instance), nil
}

func (i *Interpreter) VisitThisExpr(expr *ast.This) (any, error) {
	return i.lookUpVariable(expr.Keyword, expr)
}

func (i *Interpreter) VisitUnaryExpr(expr *ast.Unary) (any, error) {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Lexeme {
	case "-":
		n, ok := right.(float64)
		if !ok {
			return nil, &RuntimeError{Token: expr.Operator, Message: "Operand must be a number."}
		}
		return -n, nil
	case "!":
		return !isTruthy(right), nil
	}
	return nil, nil
}

func (i *Interpreter) VisitVariableExpr(expr *ast.Variable) (any, error) {
	return i.lookUpVariable(expr.Name, expr)
}
