/*
File    : loxgo/object/function.go
*/
package object

import "github.com/loxgo/loxgo/ast"

// Function is a user-defined function or method. It captures the
// environment that was current at its definition site (Closure), giving it
// access to variables from enclosing scopes even after those scopes have
// finished executing. IsInitializer marks a class's `init` method, which
// always returns the constructed instance regardless of its own return
// value.
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) Type() Type     { return FunctionType }
func (f *Function) String() string { return "<fn " + f.Declaration.Name.Lexeme + ">" }
func (f *Function) Arity() int     { return len(f.Declaration.Params) }

// Call binds each parameter to its argument in a fresh environment chained
// off the closure, then executes the body as a block against that
// environment. A return unwind is translated into the returned value; a
// body that falls off the end yields Nil. An initializer always returns the
// instance bound to `this` in its closure, regardless of what (if anything)
// the body returned.
func (f *Function) Call(in Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	result, err := in.ExecuteBlock(f.Declaration.Body, env)
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	if result == nil {
		return Nil{}, nil
	}
	return result, nil
}

// Bind produces a fresh Function whose closure is a new environment, nested
// one hop inside the method's original closure, with `this` bound to
// instance. Each call to Bind returns an independent closure so multiple
// instances of the same class never share a `this` binding.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}
