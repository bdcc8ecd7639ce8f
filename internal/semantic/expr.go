package semantic

import "github.com/golox-lang/golox/internal/ast"

func (r *Resolver) VisitAssignExpr(expr *ast.Assign) (any, error) {
	r.resolveExpr(expr.Value)
	r.resolveLocal(expr, expr.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(expr *ast.Binary) (any, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(expr *ast.Call) (any, error) {
	r.resolveExpr(expr.Callee)
	for _, arg := range expr.Arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(expr *ast.Get) (any, error) {
	// Property names are resolved dynamically at runtime, so only the
	// object expression needs static resolution here.
	r.resolveExpr(expr.Object)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(expr *ast.Grouping) (any, error) {
	r.resolveExpr(expr.Expression)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(expr *ast.Literal) (any, error) {
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(expr *ast.Logical) (any, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(expr *ast.Set) (any, error) {
	r.resolveExpr(expr.Value)
	r.resolveExpr(expr.Object)
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(expr *ast.Super) (any, error) {
	switch r.currentClass {
	case classNone:
		r.report(expr.Keyword, "Can't use 'super' outside of a class.")
	case classClass:
		r.report(expr.Keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(expr, expr.Keyword)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(expr *ast.This) (any, error) {
	if r.currentClass == classNone {
		r.report(expr.Keyword, "Can't use 'this' outside of a class.")
		return nil, nil
	}
	r.resolveLocal(expr, expr.Keyword)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(expr *ast.Unary) (any, error) {
	r.resolveExpr(expr.Right)
	return nil, nil
}

// VisitVariableExpr resolves a variable reference. Referring to a local
// variable from inside its own initializer ("var a = a;") is a static error:
// the name has been declared but not yet defined in the innermost scope.
func (r *Resolver) VisitVariableExpr(expr *ast.Variable) (any, error) {
	if len(r.scopes) > 0 {
		if ready, ok := r.scopes[len(r.scopes)-1][expr.Name.Lexeme]; ok && !ready {
			r.report(expr.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(expr, expr.Name)
	return nil, nil
}
