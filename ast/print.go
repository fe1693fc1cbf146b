/*
File    : loxgo/ast/print.go
*/
package ast

import (
	"bytes"
	"fmt"
)

// Printer renders an expression tree as a fully parenthesized Lisp-like
// string, e.g. `(+ 1 (* 2 3))`. Used by the REPL's `.ast` debug command.
type Printer struct {
	buf bytes.Buffer
}

// Print renders expr and returns the accumulated string.
func Print(expr Expr) string {
	p := &Printer{}
	expr.Accept(p)
	return p.buf.String()
}

func (p *Printer) parenthesize(name string, exprs ...Expr) {
	p.buf.WriteString("(")
	p.buf.WriteString(name)
	for _, e := range exprs {
		p.buf.WriteString(" ")
		e.Accept(p)
	}
	p.buf.WriteString(")")
}

func (p *Printer) VisitLiteralExpr(expr *Literal) {
	if expr.Value == nil {
		p.buf.WriteString("nil")
		return
	}
	p.buf.WriteString(fmt.Sprintf("%v", expr.Value))
}

func (p *Printer) VisitGroupingExpr(expr *Grouping) {
	p.parenthesize("group", expr.Expression)
}

func (p *Printer) VisitUnaryExpr(expr *Unary) {
	p.parenthesize(expr.Operator.Lexeme, expr.Right)
}

func (p *Printer) VisitBinaryExpr(expr *Binary) {
	p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (p *Printer) VisitLogicalExpr(expr *Logical) {
	p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (p *Printer) VisitVariableExpr(expr *Variable) {
	p.buf.WriteString(expr.Name.Lexeme)
}

func (p *Printer) VisitAssignExpr(expr *Assign) {
	p.parenthesize("= "+expr.Name.Lexeme, expr.Value)
}

func (p *Printer) VisitCallExpr(expr *Call) {
	p.parenthesize("call", append([]Expr{expr.Callee}, expr.Arguments...)...)
}

func (p *Printer) VisitGetExpr(expr *Get) {
	p.parenthesize("get "+expr.Name.Lexeme, expr.Object)
}

func (p *Printer) VisitSetExpr(expr *Set) {
	p.parenthesize("set "+expr.Name.Lexeme, expr.Object, expr.Value)
}

func (p *Printer) VisitThisExpr(expr *This) {
	p.buf.WriteString("this")
}

func (p *Printer) VisitSuperExpr(expr *Super) {
	p.buf.WriteString("(super " + expr.Method.Lexeme + ")")
}
