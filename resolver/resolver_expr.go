/*
File    : loxgo/resolver/resolver_expr.go
*/
package resolver

import "github.com/loxgo/loxgo/ast"

func (r *Resolver) VisitVariableExpr(expr *ast.Variable) {
	if scope := r.peekScope(); scope != nil {
		if initialized, ok := scope[expr.Name.Lexeme]; ok && !initialized {
			r.sink.Report(expr.Name.Line, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(expr, expr.Name.Lexeme)
}

func (r *Resolver) VisitAssignExpr(expr *ast.Assign) {
	r.resolveExpr(expr.Value)
	r.resolveLocal(expr, expr.Name.Lexeme)
}

func (r *Resolver) VisitBinaryExpr(expr *ast.Binary) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
}

func (r *Resolver) VisitCallExpr(expr *ast.Call) {
	r.resolveExpr(expr.Callee)
	for _, arg := range expr.Arguments {
		r.resolveExpr(arg)
	}
}

func (r *Resolver) VisitGetExpr(expr *ast.Get) {
	// Property names are resolved dynamically against the instance, not
	// lexically — only the object expression needs walking.
	r.resolveExpr(expr.Object)
}

func (r *Resolver) VisitSetExpr(expr *ast.Set) {
	r.resolveExpr(expr.Value)
	r.resolveExpr(expr.Object)
}

func (r *Resolver) VisitGroupingExpr(expr *ast.Grouping) {
	r.resolveExpr(expr.Expression)
}

func (r *Resolver) VisitLiteralExpr(expr *ast.Literal) {
	// No subexpressions, nothing to resolve.
}

func (r *Resolver) VisitLogicalExpr(expr *ast.Logical) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
}

func (r *Resolver) VisitUnaryExpr(expr *ast.Unary) {
	r.resolveExpr(expr.Right)
}

func (r *Resolver) VisitThisExpr(expr *ast.This) {
	if r.currentClass == classNone {
		r.sink.Report(expr.Keyword.Line, "Can't use 'this' outside of a class.")
		return
	}
	r.resolveLocal(expr, "this")
}

func (r *Resolver) VisitSuperExpr(expr *ast.Super) {
	switch r.currentClass {
	case classNone:
		r.sink.Report(expr.Keyword.Line, "Can't use 'super' outside of a class.")
	case classClass:
		r.sink.Report(expr.Keyword.Line, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(expr, "super")
}
