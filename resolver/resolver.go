/*
File    : loxgo/resolver/resolver.go
*/

// Package resolver performs the static analysis pass between parsing and
// evaluation: for every variable reference it computes how many lexical
// scopes out the declaration lives, so the interpreter can jump straight to
// the right Environment instead of searching outward by name at runtime.
// It also catches a handful of errors that are only visible statically —
// returning from the top level, using `this`/`super` outside a class body,
// a class inheriting from itself — by walking the same scope chain the
// interpreter will rebuild at runtime, one pass ahead of it.
package resolver

import (
	"github.com/loxgo/loxgo/ast"
	"github.com/loxgo/loxgo/diag"
)

type functionKind int

const (
	functionNone functionKind = iota
	functionFunction
	functionInitializer
	functionMethod
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// Resolver walks the AST once, before evaluation, maintaining a stack of
// block scopes that mirrors the Environment chain the interpreter will
// build at runtime.
type Resolver struct {
	sink  *diag.Sink
	scopes []map[string]bool

	depths map[ast.Expr]int

	currentFunction functionKind
	currentClass    classKind
}

// New creates a Resolver reporting to sink. depths accumulates as Resolve
// runs; pass the same map (or read it back via Depths) into the
// interpreter once resolution finishes.
func New(sink *diag.Sink) *Resolver {
	return &Resolver{
		sink:   sink,
		depths: make(map[ast.Expr]int),
	}
}

// Depths returns the lexical-depth side table computed by Resolve, keyed
// by the identity of each Variable, Assign, This, or Super node. A node
// absent from the table refers to a global.
func (r *Resolver) Depths() map[ast.Expr]int {
	return r.depths
}

// Resolve walks every top-level statement. Call once, after parsing and
// before interpretation.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStmts(statements)
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	stmt.Accept(r)
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	expr.Accept(r)
}

// --- scope stack ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) peekScope() map[string]bool {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare adds name to the innermost scope as "not yet initialized", so
// `var a = a;` resolving the right-hand `a` against its own not-finished
// declaration is caught as an error rather than silently shadowing an
// outer `a`. Redeclaring a name already declared in the same scope is
// also an error — Lox has no use for it and it almost always indicates a
// mistake.
func (r *Resolver) declare(name string, line int) {
	scope := r.peekScope()
	if scope == nil {
		return
	}
	if _, ok := scope[name]; ok {
		r.sink.Report(line, "Already a variable with this name in this scope.")
	}
	scope[name] = false
}

// define marks name as fully initialized in the innermost scope, once its
// initializer (if any) has been resolved.
func (r *Resolver) define(name string) {
	scope := r.peekScope()
	if scope == nil {
		return
	}
	scope[name] = true
}

// resolveLocal walks the scope stack from innermost outward looking for
// name, recording how many hops out it was found at. A name found in no
// scope is left out of the table entirely, meaning "look it up as a
// global at runtime".
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.depths[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	defer r.endScope()

	for _, param := range fn.Params {
		r.declare(param.Lexeme, param.Line)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
}
