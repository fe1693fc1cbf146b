/*
File    : loxgo/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxgo/loxgo/ast"
	"github.com/loxgo/loxgo/diag"
	"github.com/loxgo/loxgo/lexer"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *diag.Sink) {
	t.Helper()
	lx := lexer.New(src)
	tokens := lx.ScanTokens()
	require.Empty(t, lx.Errors())
	sink := diag.NewSink()
	p := New(tokens, sink)
	return p.Parse(), sink
}

func TestParser_ExpressionStatement(t *testing.T) {
	stmts, sink := parse(t, "1 + 2 * 3;")
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)

	binary, ok := exprStmt.Expression.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", binary.Operator.Lexeme)

	right, ok := binary.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", right.Operator.Lexeme)
}

func TestParser_PrintStatement(t *testing.T) {
	stmts, sink := parse(t, `print "hi";`)
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	printStmt, ok := stmts[0].(*ast.PrintStmt)
	require.True(t, ok)
	lit, ok := printStmt.Expression.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "hi", lit.Value)
}

func TestParser_VarDeclaration(t *testing.T) {
	stmts, sink := parse(t, "var x = 1;")
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	varStmt, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", varStmt.Name.Lexeme)
	require.NotNil(t, varStmt.Initializer)
}

func TestParser_AssignmentTarget(t *testing.T) {
	stmts, sink := parse(t, "x = 2;")
	require.False(t, sink.HadError())
	exprStmt := stmts[0].(*ast.ExpressionStmt)
	assign, ok := exprStmt.Expression.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Lexeme)
}

func TestParser_InvalidAssignmentTarget(t *testing.T) {
	_, sink := parse(t, "1 = 2;")
	assert.True(t, sink.HadError())
}

func TestParser_IfElse(t *testing.T) {
	stmts, sink := parse(t, `if (true) print "a"; else print "b";`)
	require.False(t, sink.HadError())
	ifStmt, ok := stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.ThenBranch)
	assert.NotNil(t, ifStmt.ElseBranch)
}

func TestParser_WhileLoop(t *testing.T) {
	stmts, sink := parse(t, `while (x < 10) x = x + 1;`)
	require.False(t, sink.HadError())
	_, ok := stmts[0].(*ast.WhileStmt)
	assert.True(t, ok)
}

func TestParser_ForLoopDesugarsToWhile(t *testing.T) {
	stmts, sink := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)

	_, ok = outer.Statements[0].(*ast.VarStmt)
	require.True(t, ok)

	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)

	body, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
}

func TestParser_FunctionDeclaration(t *testing.T) {
	stmts, sink := parse(t, `fun add(a, b) { return a + b; }`)
	require.False(t, sink.HadError())
	fn, ok := stmts[0].(*ast.FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
}

func TestParser_ClassDeclarationWithSuperclass(t *testing.T) {
	stmts, sink := parse(t, `class B < A { init() { this.x = 1; } }`)
	require.False(t, sink.HadError())
	class, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "B", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "init", class.Methods[0].Name.Lexeme)
}

func TestParser_CallAndGetChain(t *testing.T) {
	stmts, sink := parse(t, `a.b().c;`)
	require.False(t, sink.HadError())
	exprStmt := stmts[0].(*ast.ExpressionStmt)

	get, ok := exprStmt.Expression.(*ast.Get)
	require.True(t, ok)
	assert.Equal(t, "c", get.Name.Lexeme)

	call, ok := get.Object.(*ast.Call)
	require.True(t, ok)

	getB, ok := call.Callee.(*ast.Get)
	require.True(t, ok)
	assert.Equal(t, "b", getB.Name.Lexeme)
}

func TestParser_SuperMethodReference(t *testing.T) {
	stmts, sink := parse(t, `class B < A { f() { return super.f(); } }`)
	require.False(t, sink.HadError())
	class := stmts[0].(*ast.ClassStmt)
	returnStmt := class.Methods[0].Body[0].(*ast.ReturnStmt)
	call := returnStmt.Value.(*ast.Call)
	super, ok := call.Callee.(*ast.Super)
	require.True(t, ok)
	assert.Equal(t, "f", super.Method.Lexeme)
}

func TestParser_TooManyArguments(t *testing.T) {
	src := "f("
	for i := 0; i < 255; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ", 2);"

	_, sink := parse(t, src)
	assert.True(t, sink.HadError())
}

func TestParser_SynchronizesAfterBadExpression(t *testing.T) {
	stmts, sink := parse(t, "+;\nvar y = 2;")
	assert.True(t, sink.HadError())
	// synchronize() should discard the bad statement up through its
	// semicolon and still parse the declaration that follows.
	require.Len(t, stmts, 1)
	varStmt, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "y", varStmt.Name.Lexeme)
}
