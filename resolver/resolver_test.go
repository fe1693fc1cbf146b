/*
File    : loxgo/resolver/resolver_test.go
*/
package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxgo/loxgo/ast"
	"github.com/loxgo/loxgo/diag"
	"github.com/loxgo/loxgo/lexer"
	"github.com/loxgo/loxgo/parser"
)

func resolve(t *testing.T, src string) ([]ast.Stmt, *Resolver, *diag.Sink) {
	t.Helper()
	lx := lexer.New(src)
	tokens := lx.ScanTokens()
	require.Empty(t, lx.Errors())

	sink := diag.NewSink()
	p := parser.New(tokens, sink)
	stmts := p.Parse()
	require.False(t, sink.HadError())

	r := New(sink)
	r.Resolve(stmts)
	return stmts, r, sink
}

func TestResolver_GlobalStaysUnresolved(t *testing.T) {
	_, r, sink := resolve(t, "var x = 1; print x;")
	assert.False(t, sink.HadError())
	assert.Empty(t, r.Depths())
}

func TestResolver_LocalDepth(t *testing.T) {
	stmts, r, sink := resolve(t, "{ var x = 1; { print x; } }")
	assert.False(t, sink.HadError())

	outer := stmts[0].(*ast.BlockStmt)
	inner := outer.Statements[1].(*ast.BlockStmt)
	printStmt := inner.Statements[0].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.Variable)

	depth, ok := r.Depths()[variable]
	require.True(t, ok)
	assert.Equal(t, 1, depth)
}

func TestResolver_SelfInitializerIsError(t *testing.T) {
	_, _, sink := resolve(t, "{ var a = a; }")
	assert.True(t, sink.HadError())
}

func TestResolver_DuplicateLocalIsError(t *testing.T) {
	_, _, sink := resolve(t, "{ var a = 1; var a = 2; }")
	assert.True(t, sink.HadError())
}

func TestResolver_ReturnAtTopLevelIsError(t *testing.T) {
	_, _, sink := resolve(t, "return 1;")
	assert.True(t, sink.HadError())
}

func TestResolver_ReturnValueInInitializerIsError(t *testing.T) {
	_, _, sink := resolve(t, "class C { init() { return 1; } }")
	assert.True(t, sink.HadError())
}

func TestResolver_BareReturnInInitializerIsFine(t *testing.T) {
	_, _, sink := resolve(t, "class C { init() { return; } }")
	assert.False(t, sink.HadError())
}

func TestResolver_ThisOutsideClassIsError(t *testing.T) {
	_, _, sink := resolve(t, "print this;")
	assert.True(t, sink.HadError())
}

func TestResolver_SuperOutsideClassIsError(t *testing.T) {
	_, _, sink := resolve(t, "print super.x;")
	assert.True(t, sink.HadError())
}

func TestResolver_SuperWithNoSuperclassIsError(t *testing.T) {
	_, _, sink := resolve(t, "class C { f() { return super.f(); } }")
	assert.True(t, sink.HadError())
}

func TestResolver_ClassInheritingFromItselfIsError(t *testing.T) {
	_, _, sink := resolve(t, "class C < C {}")
	assert.True(t, sink.HadError())
}

func TestResolver_ValidSubclassUsesThisAndSuper(t *testing.T) {
	_, _, sink := resolve(t, `
		class A { f() { return 1; } }
		class B < A { f() { return super.f(); } g() { return this.f(); } }
	`)
	assert.False(t, sink.HadError())
}
