/*
File    : loxgo/interp/interp_expr.go
*/
package interp

import (
	"github.com/loxgo/loxgo/ast"
	"github.com/loxgo/loxgo/lexer"
	"github.com/loxgo/loxgo/object"
)

func (in *Interpreter) VisitLiteralExpr(expr *ast.Literal) {
	in.value = literalValue(expr.Value)
}

func literalValue(v interface{}) object.Value {
	switch val := v.(type) {
	case nil:
		return object.Nil{}
	case bool:
		return object.Boolean(val)
	case float64:
		return object.Number(val)
	case string:
		return object.String(val)
	default:
		return object.Nil{}
	}
}

func (in *Interpreter) VisitGroupingExpr(expr *ast.Grouping) {
	in.value, in.err = in.evaluate(expr.Expression)
}

func (in *Interpreter) VisitUnaryExpr(expr *ast.Unary) {
	right, err := in.evaluate(expr.Right)
	if err != nil {
		in.err = err
		return
	}

	switch expr.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(object.Number)
		if !ok {
			in.err = runtimeErr(expr.Operator, "Operand must be a number.")
			return
		}
		in.value = -n
	case lexer.BANG:
		in.value = object.Boolean(!object.Truthy(right))
	}
}

func (in *Interpreter) VisitBinaryExpr(expr *ast.Binary) {
	left, err := in.evaluate(expr.Left)
	if err != nil {
		in.err = err
		return
	}
	right, err := in.evaluate(expr.Right)
	if err != nil {
		in.err = err
		return
	}

	switch expr.Operator.Type {
	case lexer.MINUS, lexer.SLASH, lexer.STAR,
		lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL:
		ln, lok := left.(object.Number)
		rn, rok := right.(object.Number)
		if !lok || !rok {
			in.err = runtimeErr(expr.Operator, "Operands must be numbers.")
			return
		}
		in.value = numericBinary(expr.Operator.Type, ln, rn)

	case lexer.PLUS:
		if ln, lok := left.(object.Number); lok {
			if rn, rok := right.(object.Number); rok {
				in.value = ln + rn
				return
			}
		}
		if ls, lok := left.(object.String); lok {
			if rs, rok := right.(object.String); rok {
				in.value = ls + rs
				return
			}
		}
		in.err = runtimeErr(expr.Operator, "Can only combine numbers or strings")

	case lexer.EQUAL_EQUAL:
		in.value = object.Boolean(object.Equal(left, right))
	case lexer.BANG_EQUAL:
		in.value = object.Boolean(!object.Equal(left, right))
	}
}

func numericBinary(op lexer.TokenType, l, r object.Number) object.Value {
	switch op {
	case lexer.MINUS:
		return l - r
	case lexer.SLASH:
		return l / r
	case lexer.STAR:
		return l * r
	case lexer.GREATER:
		return object.Boolean(l > r)
	case lexer.GREATER_EQUAL:
		return object.Boolean(l >= r)
	case lexer.LESS:
		return object.Boolean(l < r)
	case lexer.LESS_EQUAL:
		return object.Boolean(l <= r)
	default:
		return object.Nil{}
	}
}

func (in *Interpreter) VisitLogicalExpr(expr *ast.Logical) {
	left, err := in.evaluate(expr.Left)
	if err != nil {
		in.err = err
		return
	}

	// Short-circuit: `or` stops at the first truthy operand, `and` at the
	// first falsy one, without ever evaluating Right.
	if expr.Operator.Type == lexer.OR {
		if object.Truthy(left) {
			in.value = left
			return
		}
	} else if !object.Truthy(left) {
		in.value = left
		return
	}

	in.value, in.err = in.evaluate(expr.Right)
}

func (in *Interpreter) VisitVariableExpr(expr *ast.Variable) {
	in.value, in.err = in.lookupVariable(expr.Name, expr)
}

func (in *Interpreter) VisitAssignExpr(expr *ast.Assign) {
	value, err := in.evaluate(expr.Value)
	if err != nil {
		in.err = err
		return
	}

	if depth, ok := in.depths[expr]; ok {
		in.environment.AssignAt(depth, expr.Name.Lexeme, value)
	} else if err := in.Globals.Assign(expr.Name.Lexeme, value); err != nil {
		in.err = runtimeErr(expr.Name, "%s", err.Error())
		return
	}
	in.value = value
}

func (in *Interpreter) VisitCallExpr(expr *ast.Call) {
	callee, err := in.evaluate(expr.Callee)
	if err != nil {
		in.err = err
		return
	}

	args := make([]object.Value, len(expr.Arguments))
	for i, argExpr := range expr.Arguments {
		arg, err := in.evaluate(argExpr)
		if err != nil {
			in.err = err
			return
		}
		args[i] = arg
	}

	callable, ok := callee.(object.Callable)
	if !ok {
		in.err = runtimeErr(expr.Paren, "Can only call functions and classes.")
		return
	}
	if len(args) != callable.Arity() {
		in.err = runtimeErr(expr.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
		return
	}

	in.value, in.err = callable.Call(in, args)
}

func (in *Interpreter) VisitGetExpr(expr *ast.Get) {
	obj, err := in.evaluate(expr.Object)
	if err != nil {
		in.err = err
		return
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		in.err = runtimeErr(expr.Name, "Only instances have properties.")
		return
	}
	v, err := instance.Get(expr.Name.Lexeme)
	if err != nil {
		in.err = runtimeErr(expr.Name, "%s", err.Error())
		return
	}
	in.value = v
}

func (in *Interpreter) VisitSetExpr(expr *ast.Set) {
	obj, err := in.evaluate(expr.Object)
	if err != nil {
		in.err = err
		return
	}
	instance, ok := obj.(*object.Instance)
	if !ok {
		in.err = runtimeErr(expr.Name, "Only instances have fields.")
		return
	}

	value, err := in.evaluate(expr.Value)
	if err != nil {
		in.err = err
		return
	}
	instance.Set(expr.Name.Lexeme, value)
	in.value = value
}

func (in *Interpreter) VisitThisExpr(expr *ast.This) {
	in.value, in.err = in.lookupVariable(expr.Keyword, expr)
}

func (in *Interpreter) VisitSuperExpr(expr *ast.Super) {
	depth, ok := in.depths[expr]
	if !ok {
		in.err = runtimeErr(expr.Keyword, "Undefined property '%s'.", expr.Method.Lexeme)
		return
	}
	superclass := in.environment.GetAt(depth, "super").(*object.Class)
	instance := in.environment.GetAt(depth-1, "this").(*object.Instance)

	method := superclass.FindMethod(expr.Method.Lexeme)
	if method == nil {
		in.err = runtimeErr(expr.Method, "Undefined property '%s'.", expr.Method.Lexeme)
		return
	}
	in.value = method.Bind(instance)
}
