/*
File    : loxgo/interp/interp_test.go
*/
package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxgo/loxgo/diag"
	"github.com/loxgo/loxgo/lexer"
	"github.com/loxgo/loxgo/parser"
	"github.com/loxgo/loxgo/resolver"
)

// run lexes, parses, resolves, and interprets src, returning everything
// `print` wrote and any runtime error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()

	lx := lexer.New(src)
	tokens := lx.ScanTokens()
	require.Empty(t, lx.Errors())

	sink := diag.NewSink()
	p := parser.New(tokens, sink)
	stmts := p.Parse()
	require.False(t, sink.HadError())

	r := resolver.New(sink)
	r.Resolve(stmts)
	require.False(t, sink.HadError())

	var out strings.Builder
	in := New(&out, r.Depths())
	err := in.Interpret(stmts)
	return out.String(), err
}

func TestInterpret_Arithmetic(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7.0\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_NumberStringification(t *testing.T) {
	out, err := run(t, `print 6 / 2; print 1 / 3 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "3.0\n1.0\n", out)
}

func TestInterpret_Truthiness(t *testing.T) {
	out, err := run(t, `if (0) print "zero is truthy"; if ("") print "empty string is truthy";`)
	require.NoError(t, err)
	assert.Equal(t, "zero is truthy\nempty string is truthy\n", out)
}

func TestInterpret_LogicalShortCircuit(t *testing.T) {
	out, err := run(t, `
		fun boom() { print "boom"; return true; }
		if (false and boom()) {}
		if (true or boom()) {}
		print "done";
	`)
	require.NoError(t, err)
	assert.Equal(t, "done\n", out)
}

func TestInterpret_WhileLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0.0\n1.0\n2.0\n", out)
}

func TestInterpret_ForLoop(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.NoError(t, err)
	assert.Equal(t, "0.0\n1.0\n2.0\n", out)
}

func TestInterpret_ClosureCounter(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1.0\n2.0\n", out)
}

func TestInterpret_Recursion(t *testing.T) {
	out, err := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	require.NoError(t, err)
	assert.Equal(t, "55.0\n", out)
}

func TestInterpret_ClassesAndInheritance(t *testing.T) {
	out, err := run(t, `
		class Animal {
			init(name) { this.name = name; }
			speak() { return this.name + " makes a sound."; }
		}
		class Dog < Animal {
			speak() { return super.speak() + " Woof!"; }
		}
		var d = Dog("Rex");
		print d.speak();
	`)
	require.NoError(t, err)
	assert.Equal(t, "Rex makes a sound. Woof!\n", out)
}

func TestInterpret_FieldsAreDynamic(t *testing.T) {
	out, err := run(t, `
		class Box {}
		var b = Box();
		b.value = 42;
		print b.value;
	`)
	require.NoError(t, err)
	assert.Equal(t, "42.0\n", out)
}

func TestInterpret_RuntimeErrorTypeMismatch(t *testing.T) {
	_, err := run(t, `print 1 + "2";`)
	require.Error(t, err)
	rt, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Contains(t, rt.Message, "Can only combine numbers or strings")
}

func TestInterpret_RuntimeErrorUndefinedVariable(t *testing.T) {
	_, err := run(t, `print x;`)
	require.Error(t, err)
	_, ok := err.(*RuntimeError)
	assert.True(t, ok)
}

func TestInterpret_RuntimeErrorArityMismatch(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	rt, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Contains(t, rt.Message, "Expected 2 arguments but got 1.")
}

func TestInterpret_RuntimeErrorOnlyInstancesHaveFields(t *testing.T) {
	_, err := run(t, `"not an instance".x = 1;`)
	require.Error(t, err)
	_, ok := err.(*RuntimeError)
	assert.True(t, ok)
}

func TestInterpret_ClockIsCallableWithNoArguments(t *testing.T) {
	out, err := run(t, `print clock() >= 0;`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}
