/*
File    : loxgo/ast/stmt.go
*/
package ast

import "github.com/loxgo/loxgo/lexer"

// StmtVisitor is implemented by the resolver and the interpreter to walk
// statement nodes.
type StmtVisitor interface {
	VisitExpressionStmt(stmt *ExpressionStmt)
	VisitPrintStmt(stmt *PrintStmt)
	VisitVarStmt(stmt *VarStmt)
	VisitBlockStmt(stmt *BlockStmt)
	VisitIfStmt(stmt *IfStmt)
	VisitWhileStmt(stmt *WhileStmt)
	VisitFunctionStmt(stmt *FunctionStmt)
	VisitReturnStmt(stmt *ReturnStmt)
	VisitClassStmt(stmt *ClassStmt)
}

// Stmt is any statement node.
type Stmt interface {
	Accept(v StmtVisitor)
}

// ExpressionStmt evaluates an expression for its side effects and discards
// the value.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) { v.VisitExpressionStmt(s) }

// PrintStmt evaluates an expression and writes its stringified form
// followed by a newline.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) { v.VisitPrintStmt(s) }

// VarStmt declares a variable, optionally with an initializer expression.
// Initializer is nil for `var x;`.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) { v.VisitVarStmt(s) }

// BlockStmt is a `{ ... }` block: its own lexical scope enclosing
// Statements.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) { v.VisitBlockStmt(s) }

// IfStmt is `if (Condition) Then else Else`. Else is nil when there is no
// else clause.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

func (s *IfStmt) Accept(v StmtVisitor) { v.VisitIfStmt(s) }

// WhileStmt is `while (Condition) Body`. The parser also desugars `for`
// loops into this node (see parser.forStatement).
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) { v.VisitWhileStmt(s) }

// FunctionStmt is a function or method declaration: `name(params) { body }`.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) { v.VisitFunctionStmt(s) }

// ReturnStmt is `return;` or `return value;`. Value is nil for the bare
// form.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (s *ReturnStmt) Accept(v StmtVisitor) { v.VisitReturnStmt(s) }

// ClassStmt is a class declaration. Superclass is nil when there is no
// `< Superclass` clause. Methods are FunctionStmt nodes (never statements
// with return-type syntax — Lox methods look exactly like functions).
type ClassStmt struct {
	Name       lexer.Token
	Superclass *Variable
	Methods    []*FunctionStmt
}

func (s *ClassStmt) Accept(v StmtVisitor) { v.VisitClassStmt(s) }
