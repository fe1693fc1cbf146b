/*
File    : loxgo/resolver/resolver_stmt.go
*/
package resolver

import "github.com/loxgo/loxgo/ast"

func (r *Resolver) VisitBlockStmt(stmt *ast.BlockStmt) {
	r.beginScope()
	r.resolveStmts(stmt.Statements)
	r.endScope()
}

func (r *Resolver) VisitVarStmt(stmt *ast.VarStmt) {
	r.declare(stmt.Name.Lexeme, stmt.Name.Line)
	if stmt.Initializer != nil {
		r.resolveExpr(stmt.Initializer)
	}
	r.define(stmt.Name.Lexeme)
}

func (r *Resolver) VisitFunctionStmt(stmt *ast.FunctionStmt) {
	// Declared and defined before the body is resolved so a function can
	// call itself recursively by name.
	r.declare(stmt.Name.Lexeme, stmt.Name.Line)
	r.define(stmt.Name.Lexeme)
	r.resolveFunction(stmt, functionFunction)
}

func (r *Resolver) VisitExpressionStmt(stmt *ast.ExpressionStmt) {
	r.resolveExpr(stmt.Expression)
}

func (r *Resolver) VisitIfStmt(stmt *ast.IfStmt) {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.ThenBranch)
	if stmt.ElseBranch != nil {
		r.resolveStmt(stmt.ElseBranch)
	}
}

func (r *Resolver) VisitPrintStmt(stmt *ast.PrintStmt) {
	r.resolveExpr(stmt.Expression)
}

func (r *Resolver) VisitReturnStmt(stmt *ast.ReturnStmt) {
	if r.currentFunction == functionNone {
		r.sink.Report(stmt.Keyword.Line, "Can't return from top-level code.")
	}
	if stmt.Value != nil {
		if r.currentFunction == functionInitializer {
			r.sink.Report(stmt.Keyword.Line, "Can't return a value from an initializer.")
		}
		r.resolveExpr(stmt.Value)
	}
}

func (r *Resolver) VisitWhileStmt(stmt *ast.WhileStmt) {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.Body)
}

func (r *Resolver) VisitClassStmt(stmt *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() { r.currentClass = enclosingClass }()

	r.declare(stmt.Name.Lexeme, stmt.Name.Line)
	r.define(stmt.Name.Lexeme)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.sink.Report(stmt.Superclass.Name.Line, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(stmt.Superclass)

		// `super` resolves in a scope wrapping the class body, one hop
		// further out than `this`, regardless of whether any method
		// actually uses it.
		r.beginScope()
		r.peekScope()["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.peekScope()["this"] = true
	defer r.endScope()

	for _, method := range stmt.Methods {
		kind := functionMethod
		if method.Name.Lexeme == "init" {
			kind = functionInitializer
		}
		r.resolveFunction(method, kind)
	}
}
