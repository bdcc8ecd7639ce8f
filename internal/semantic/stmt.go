package semantic

import "github.com/golox-lang/golox/internal/ast"

func (r *Resolver) VisitBlockStmt(stmt *ast.Block) (any, error) {
	r.beginScope()
	r.resolveStmts(stmt.Statements)
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitBreakStmt(stmt *ast.Break) (any, error) {
	return nil, nil
}

// VisitClassStmt resolves a class declaration: the class name itself, an
// optional superclass expression, a "super" scope wrapping every method when
// there is one, and a "this" scope wrapping every method's body. init is
// resolved as an initializer rather than a plain method so a bare `return;`
// is allowed inside it but `return value;` is not.
func (r *Resolver) VisitClassStmt(stmt *ast.Class) (any, error) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(stmt.Name)
	r.define(stmt.Name)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.report(stmt.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(stmt.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range stmt.Methods {
		kind := functionMethod
		if method.Name.Lexeme == "init" {
			kind = functionInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if stmt.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
	return nil, nil
}

func (r *Resolver) VisitExpressionStmt(stmt *ast.Expression) (any, error) {
	r.resolveExpr(stmt.Expression)
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(stmt *ast.Function) (any, error) {
	r.declare(stmt.Name)
	r.define(stmt.Name)
	r.resolveFunction(stmt, functionFunction)
	return nil, nil
}

func (r *Resolver) VisitIfStmt(stmt *ast.If) (any, error) {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.ThenBranch)
	if stmt.ElseBranch != nil {
		r.resolveStmt(stmt.ElseBranch)
	}
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(stmt *ast.Print) (any, error) {
	r.resolveExpr(stmt.Expression)
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(stmt *ast.Return) (any, error) {
	if r.currentFunction == functionNone {
		r.report(stmt.Keyword, "Can't return from top-level code.")
	}
	if stmt.Value != nil {
		if r.currentFunction == functionInitializer {
			r.report(stmt.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(stmt.Value)
	}
	return nil, nil
}

func (r *Resolver) VisitVarStmt(stmt *ast.Var) (any, error) {
	r.declare(stmt.Name)
	if stmt.Initializer != nil {
		r.resolveExpr(stmt.Initializer)
	}
	r.define(stmt.Name)
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(stmt *ast.While) (any, error) {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.Body)
	return nil, nil
}
