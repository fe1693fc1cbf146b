/*
File    : loxgo/interp/interpreter.go
*/

// Package interp walks the resolved AST and produces Lox's runtime
// behavior: arithmetic, control flow, closures, classes, and instances.
// It implements both ast.ExprVisitor and ast.StmtVisitor; since Accept
// never returns a value, each evaluate/execute call stashes its result in
// a scratch field on the Interpreter and reads it back out immediately
// after Accept returns, the same accumulate-into-self-then-read-back shape
// the AST printer uses for expressions, generalized here to also carry an
// error and to survive reentrant (nested) evaluate calls by saving and
// restoring the scratch fields around every dispatch.
package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/loxgo/loxgo/ast"
	"github.com/loxgo/loxgo/lexer"
	"github.com/loxgo/loxgo/object"
)

// RuntimeError is a Lox runtime failure tied to the token whose evaluation
// triggered it, letting the caller report a line number the way a syntax
// error does.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func runtimeErr(tok lexer.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// returnUnwind carries a function's return value up through nested
// statement execution as an error, so an early return inside arbitrarily
// deep blocks/ifs/loops reaches the call site without every statement
// executor needing a dedicated "did we return" result type.
type returnUnwind struct {
	value object.Value
}

func (r *returnUnwind) Error() string { return "return" }

// Interpreter holds the two pieces of mutable state a tree-walk needs: the
// current environment (which Environment new declarations bind into) and
// the resolver's precomputed lexical depths. Globals is kept separately so
// a variable lookup that misses every local scope can fall back to it even
// when environment is deeply nested inside closures.
type Interpreter struct {
	Globals     *object.Environment
	environment *object.Environment
	depths      map[ast.Expr]int
	out         io.Writer

	// Scratch slots Accept dispatch writes into; read back immediately by
	// evaluate/execute, which save and restore them around each call so
	// recursive evaluation doesn't clobber an enclosing call's result.
	value object.Value
	err   error
}

// New builds an Interpreter writing `print` output to out, with depths as
// computed by a prior resolver pass (may be nil/empty, meaning every
// variable resolves as a global).
func New(out io.Writer, depths map[ast.Expr]int) *Interpreter {
	globals := object.NewEnvironment(nil)
	globals.Define("clock", &object.NativeFunction{
		NameStr: "clock",
		Arity_:  0,
		Fn: func(args []object.Value) (object.Value, error) {
			return object.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})

	return &Interpreter{
		Globals:     globals,
		environment: globals,
		depths:      depths,
		out:         out,
	}
}

// Interpret runs a whole program's statement list, stopping at the first
// runtime error (Lox has no exception handling to recover from one).
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// execute dispatches one statement and returns whatever error (real or a
// *returnUnwind) its visitor method recorded.
func (in *Interpreter) execute(stmt ast.Stmt) error {
	savedErr := in.err
	in.err = nil
	stmt.Accept(in)
	err := in.err
	in.err = savedErr
	return err
}

// executeStmts runs statements against env as the current environment,
// restoring the previous environment on every exit path (normal
// completion, a real error, or a return unwind).
func (in *Interpreter) executeStmts(statements []ast.Stmt, env *object.Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteBlock implements object.Interpreter for Function.Call: it runs a
// function body against env and translates a return unwind into the
// ordinary (value, nil) result Call expects, rather than propagating it
// further as an error.
func (in *Interpreter) ExecuteBlock(statements []ast.Stmt, env *object.Environment) (object.Value, error) {
	err := in.executeStmts(statements, env)
	if err == nil {
		return nil, nil
	}
	if ru, ok := err.(*returnUnwind); ok {
		return ru.value, nil
	}
	return nil, err
}

// evaluate dispatches one expression and returns its value, saving and
// restoring the scratch fields around the call so a nested evaluate
// (e.g. evaluating a Binary's operands) can't stomp this call's result.
func (in *Interpreter) evaluate(expr ast.Expr) (object.Value, error) {
	savedValue, savedErr := in.value, in.err
	in.value, in.err = nil, nil
	expr.Accept(in)
	value, err := in.value, in.err
	in.value, in.err = savedValue, savedErr
	return value, err
}

// SetDepths merges a resolver pass's depth table into the interpreter's.
// The REPL calls this once per line: each line is resolved independently
// against fresh AST nodes, but functions declared on earlier lines keep
// their own (already-resolved) bodies alive in closures, so their depth
// entries must survive rather than being replaced wholesale.
func (in *Interpreter) SetDepths(depths map[ast.Expr]int) {
	if in.depths == nil {
		in.depths = make(map[ast.Expr]int, len(depths))
	}
	for expr, depth := range depths {
		in.depths[expr] = depth
	}
}

// lookupVariable reads name using the resolver's recorded depth for expr
// when there is one, falling back to the global environment otherwise.
func (in *Interpreter) lookupVariable(name lexer.Token, expr ast.Expr) (object.Value, error) {
	if depth, ok := in.depths[expr]; ok {
		return in.environment.GetAt(depth, name.Lexeme), nil
	}
	v, err := in.Globals.Get(name.Lexeme)
	if err != nil {
		return nil, runtimeErr(name, "%s", err.Error())
	}
	return v, nil
}
