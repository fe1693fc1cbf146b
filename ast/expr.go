/*
File    : loxgo/ast/expr.go
*/

// Package ast defines the Lox abstract syntax tree: one Go struct per
// grammar alternative, each accepting a visitor. The resolver and the
// interpreter are the two visitors that walk this tree; node identity
// (pointer identity of Expr/Stmt values) is what the resolver side-table
// keys on, so every node is always held and passed as a pointer.
package ast

import "github.com/loxgo/loxgo/lexer"

// ExprVisitor is implemented by anything that walks expression nodes: the
// resolver (to compute lexical depths) and the interpreter (to produce
// values).
type ExprVisitor interface {
	VisitLiteralExpr(expr *Literal)
	VisitGroupingExpr(expr *Grouping)
	VisitUnaryExpr(expr *Unary)
	VisitBinaryExpr(expr *Binary)
	VisitLogicalExpr(expr *Logical)
	VisitVariableExpr(expr *Variable)
	VisitAssignExpr(expr *Assign)
	VisitCallExpr(expr *Call)
	VisitGetExpr(expr *Get)
	VisitSetExpr(expr *Set)
	VisitThisExpr(expr *This)
	VisitSuperExpr(expr *Super)
}

// Expr is any expression node. Accept dispatches to the matching
// ExprVisitor method; it never returns a value itself — visitors that need
// a result (the interpreter, the printer) stash it on their own state
// rather than returning it through Accept.
type Expr interface {
	Accept(v ExprVisitor)
}

// Literal is a constant value baked into the source: a number, string,
// boolean, or nil.
type Literal struct {
	Value interface{}
}

func (e *Literal) Accept(v ExprVisitor) { v.VisitLiteralExpr(e) }

// Grouping is a parenthesized expression, kept as its own node so
// `(a) = b` can be rejected as an invalid assignment target distinctly
// from `a = b`.
type Grouping struct {
	Expression Expr
}

func (e *Grouping) Accept(v ExprVisitor) { v.VisitGroupingExpr(e) }

// Unary is a prefix `-` or `!` applied to Right.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

func (e *Unary) Accept(v ExprVisitor) { v.VisitUnaryExpr(e) }

// Binary is an arithmetic, comparison, or equality operator between two
// operands.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Binary) Accept(v ExprVisitor) { v.VisitBinaryExpr(e) }

// Logical is `and`/`or`, kept distinct from Binary because it short-circuits
// and never evaluates Right unconditionally.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Logical) Accept(v ExprVisitor) { v.VisitLogicalExpr(e) }

// Variable is a bare identifier reference. The resolver records its lexical
// depth (or leaves it unresolved, meaning global) keyed by this node's
// identity.
type Variable struct {
	Name lexer.Token
}

func (e *Variable) Accept(v ExprVisitor) { v.VisitVariableExpr(e) }

// Assign is `name = value`.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) { v.VisitAssignExpr(e) }

// Call is `callee(arguments...)`. Paren is the closing `)` token, kept for
// error line context on arity mismatches.
type Call struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func (e *Call) Accept(v ExprVisitor) { v.VisitCallExpr(e) }

// Get is a property read `object.name`.
type Get struct {
	Object Expr
	Name   lexer.Token
}

func (e *Get) Accept(v ExprVisitor) { v.VisitGetExpr(e) }

// Set is a property write `object.name = value`.
type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (e *Set) Accept(v ExprVisitor) { v.VisitSetExpr(e) }

// This is a `this` reference inside a method body.
type This struct {
	Keyword lexer.Token
}

func (e *This) Accept(v ExprVisitor) { v.VisitThisExpr(e) }

// Super is a `super.method` reference.
type Super struct {
	Keyword lexer.Token
	Method  lexer.Token
}

func (e *Super) Accept(v ExprVisitor) { v.VisitSuperExpr(e) }
