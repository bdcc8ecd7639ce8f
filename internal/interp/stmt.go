package interp

import "github.com/golox-lang/golox/internal/ast"

func (i *Interpreter) VisitBlockStmt(stmt *ast.Block) (any, error) {
	return nil, i.executeBlock(stmt.Statements, NewEnclosedEnvironment(i.environment))
}

func (i *Interpreter) VisitBreakStmt(stmt *ast.Break) (any, error) {
	return nil, &breakSignal{}
}

// VisitClassStmt implements the two-step class-definition protocol from
// spec.md §4.6: the name is bound to nil before the method table is built, so
// a method body can refer to its own class by name, and the superclass's
// "super" frame (if any) is popped again before the final assignment so it
// doesn't leak into the enclosing scope.
func (i *Interpreter) VisitClassStmt(stmt *ast.Class) (any, error) {
	var superclass *Class
	if stmt.Superclass != nil {
		value, err := i.evaluate(stmt.Superclass)
		if err != nil {
			return nil, err
		}
		class, ok := value.(*Class)
		if !ok {
			return nil, &RuntimeError{Token: stmt.Superclass.Name, Message: "Superclass must be a class."}
		}
		superclass = class
	}

	i.environment.Define(stmt.Name.Lexeme, nil)

	if stmt.Superclass != nil {
		env := NewEnclosedEnvironment(i.environment)
		env.Define("super", superclass)
		i.environment = env
	}

	methods := make(map[string]*Function, len(stmt.Methods))
	for _, method := range stmt.Methods {
		methods[method.Name.Lexeme] = NewFunction(method, i.environment, method.Name.Lexeme == "init")
	}

	class := NewClass(stmt.Name.Lexeme, superclass, methods)

	if stmt.Superclass != nil {
		i.environment = i.environment.enclosing
	}

	if err := i.environment.Assign(stmt.Name, class); err != nil {
		return nil, err
	}
	return nil, nil
}

func (i *Interpreter) VisitExpressionStmt(stmt *ast.Expression) (any, error) {
	_, err := i.evaluate(stmt.Expression)
	return nil, err
}

func (i *Interpreter) VisitFunctionStmt(stmt *ast.Function) (any, error) {
	fn := NewFunction(stmt, i.environment, false)
	i.environment.Define(stmt.Name.Lexeme, fn)
	return nil, nil
}

func (i *Interpreter) VisitIfStmt(stmt *ast.If) (any, error) {
	condition, err := i.evaluate(stmt.Condition)
	if err != nil {
		return nil, err
	}

	if isTruthy(condition) {
		return nil, i.execute(stmt.ThenBranch)
	}
	if stmt.ElseBranch != nil {
		return nil, i.execute(stmt.ElseBranch)
	}
	return nil, nil
}

func (i *Interpreter) VisitPrintStmt(stmt *ast.Print) (any, error) {
	value, err := i.evaluate(stmt.Expression)
	if err != nil {
		return nil, err
	}
	i.print(value)
	return nil, nil
}

func (i *Interpreter) VisitReturnStmt(stmt *ast.Return) (any, error) {
	var value any
	if stmt.Value != nil {
		v, err := i.evaluate(stmt.Value)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return nil, &returnSignal{Value: value}
}

func (i *Interpreter) VisitVarStmt(stmt *ast.Var) (any, error) {
	var value any
	if stmt.Initializer != nil {
		v, err := i.evaluate(stmt.Initializer)
		if err != nil {
			return nil, err
		}
		value = v
	}
	i.environment.Define(stmt.Name.Lexeme, value)
	return nil, nil
}

func (i *Interpreter) VisitWhileStmt(stmt *ast.While) (any, error) {
	for {
		condition, err := i.evaluate(stmt.Condition)
		if err != nil {
			return nil, err
		}
		if !isTruthy(condition) {
			return nil, nil
		}

		if err := i.execute(stmt.Body); err != nil {
			if _, ok := err.(*breakSignal); ok {
				return nil, nil
			}
			return nil, err
		}
	}
}
