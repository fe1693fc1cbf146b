/*
File    : loxgo/interp/interp_e2e_test.go
*/
package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxgo/loxgo/diag"
	"github.com/loxgo/loxgo/lexer"
	"github.com/loxgo/loxgo/parser"
	"github.com/loxgo/loxgo/resolver"
)

// staticError lexes, parses, and resolves src without requiring success,
// returning the diagnostics the sink collected — used for the negative
// scenarios below, where the failure itself (and its exact message) is
// the point.
func staticError(t *testing.T, src string) []string {
	t.Helper()
	lx := lexer.New(src)
	tokens := lx.ScanTokens()
	require.Empty(t, lx.Errors())

	sink := diag.NewSink()
	p := parser.New(tokens, sink)
	stmts := p.Parse()
	if !sink.HadError() {
		resolver.New(sink).Resolve(stmts)
	}
	require.True(t, sink.HadError())

	var messages []string
	for _, d := range sink.Diagnostics() {
		messages = append(messages, d.Message)
	}
	return messages
}

// These exercise the full lex/parse/resolve/interpret pipeline against the
// same multi-statement programs and exact captured-print outputs used to
// validate Lox reference implementations: literal stringification, block
// shadowing, for-loop desugaring, recursion, and the Cake/Doughnut
// class/inheritance examples.

func TestE2E_LiteralAddition(t *testing.T) {
	out, err := run(t, `print 1+2;`)
	require.NoError(t, err)
	assert.Equal(t, "3.0\n", out)
}

func TestE2E_VariablesAndBlockShadowing(t *testing.T) {
	out, err := run(t, `
		var foo = 1; var bar = 2; foo = 3;
		{ var bar = 4; print foo + bar; }
		print foo + bar;
	`)
	require.NoError(t, err)
	assert.Equal(t, "7.0\n5.0\n", out)
}

func TestE2E_ForLoopDesugaring(t *testing.T) {
	out, err := run(t, `var i = 0; for (;i<5;i = i+2) { print i; }`)
	require.NoError(t, err)
	assert.Equal(t, "0.0\n2.0\n4.0\n", out)
}

func TestE2E_FunctionAndStringConcat(t *testing.T) {
	out, err := run(t, `fun test(first,last){print first+" "+last;} test("Hello","world!");`)
	require.NoError(t, err)
	assert.Equal(t, "Hello world!\n", out)
}

func TestE2E_RecursionAndReturn(t *testing.T) {
	out, err := run(t, `fun fib(n){ if (n<=1) return n; return fib(n-2)+fib(n-1);} print fib(10);`)
	require.NoError(t, err)
	assert.Equal(t, "55.0\n", out)
}

func TestE2E_ClassThisAndDynamicField(t *testing.T) {
	out, err := run(t, `class Cake { taste(){ var a="delicious"; print "The "+this.flavor+" cake is "+a+"!"; } } var c=Cake(); c.flavor="German chocolate"; c.taste();`)
	require.NoError(t, err)
	assert.Equal(t, "The German chocolate cake is delicious!\n", out)
}

func TestE2E_InheritanceAndSuper(t *testing.T) {
	out, err := run(t, `
		class Doughnut { cook(){ print "Fry until golden brown."; } }
		class BostonCream < Doughnut { cook(){ super.cook(); print "Pipe full of custard and coat with chocolate."; } }
		BostonCream().cook();
	`)
	require.NoError(t, err)
	assert.Equal(t, "Fry until golden brown.\nPipe full of custard and coat with chocolate.\n", out)
}

func TestE2E_SelfInitializerIsRejected(t *testing.T) {
	messages := staticError(t, `var a = a;`)
	assert.Contains(t, messages, "Can't read local variable in its own initializer.")
}

func TestE2E_TopLevelReturnIsRejected(t *testing.T) {
	messages := staticError(t, `return 1;`)
	assert.Contains(t, messages, "Can't return from top-level code.")
}

func TestE2E_SelfInheritanceIsRejected(t *testing.T) {
	messages := staticError(t, `class A < A {}`)
	assert.Contains(t, messages, "A class can't inherit from itself.")
}

func TestE2E_AddingNumberAndStringIsRuntimeError(t *testing.T) {
	_, err := run(t, `1 + "x";`)
	require.Error(t, err)
	rt, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Contains(t, rt.Message, "Can only combine numbers or strings")
}
