/*
File    : loxgo/object/callable.go
*/
package object

import "github.com/loxgo/loxgo/ast"

// Interpreter is the subset of the interpreter a Callable needs in order to
// invoke user code — just enough to execute a function body in a fresh
// environment. Declared here instead of a Call(in *interp.Interpreter, ...)
// signature so this package never needs to import the interp package that
// itself must import this one.
type Interpreter interface {
	// ExecuteBlock runs statements against env as the current environment,
	// restoring the caller's environment on every exit path.
	ExecuteBlock(statements []ast.Stmt, env *Environment) (Value, error)
}

// Callable is implemented by every value that can appear in call position:
// user functions, bound methods, classes (as constructors), and native
// functions like clock.
type Callable interface {
	Value
	Arity() int
	Call(in Interpreter, args []Value) (Value, error)
}

// NativeFunction wraps a host Go function as a Lox callable, alongside
// user functions, bound methods, and classes. clock() is the only one
// required, but the type is general enough for more.
type NativeFunction struct {
	NameStr string
	Arity_  int
	Fn      func(args []Value) (Value, error)
}

func (n *NativeFunction) Type() Type     { return FunctionType }
func (n *NativeFunction) String() string { return "<native fn " + n.NameStr + ">" }
func (n *NativeFunction) Arity() int     { return n.Arity_ }
func (n *NativeFunction) Call(in Interpreter, args []Value) (Value, error) {
	return n.Fn(args)
}
