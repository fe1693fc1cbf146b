/*
File    : loxgo/interp/interp_stmt.go
*/
package interp

import (
	"fmt"

	"github.com/loxgo/loxgo/ast"
	"github.com/loxgo/loxgo/object"
)

func (in *Interpreter) VisitExpressionStmt(stmt *ast.ExpressionStmt) {
	_, err := in.evaluate(stmt.Expression)
	in.err = err
}

func (in *Interpreter) VisitPrintStmt(stmt *ast.PrintStmt) {
	value, err := in.evaluate(stmt.Expression)
	if err != nil {
		in.err = err
		return
	}
	fmt.Fprintln(in.out, value.String())
}

func (in *Interpreter) VisitVarStmt(stmt *ast.VarStmt) {
	var value object.Value = object.Nil{}
	if stmt.Initializer != nil {
		v, err := in.evaluate(stmt.Initializer)
		if err != nil {
			in.err = err
			return
		}
		value = v
	}
	in.environment.Define(stmt.Name.Lexeme, value)
}

func (in *Interpreter) VisitBlockStmt(stmt *ast.BlockStmt) {
	env := object.NewEnvironment(in.environment)
	in.err = in.executeStmts(stmt.Statements, env)
}

func (in *Interpreter) VisitIfStmt(stmt *ast.IfStmt) {
	condition, err := in.evaluate(stmt.Condition)
	if err != nil {
		in.err = err
		return
	}
	if object.Truthy(condition) {
		in.err = in.execute(stmt.ThenBranch)
	} else if stmt.ElseBranch != nil {
		in.err = in.execute(stmt.ElseBranch)
	}
}

func (in *Interpreter) VisitWhileStmt(stmt *ast.WhileStmt) {
	for {
		condition, err := in.evaluate(stmt.Condition)
		if err != nil {
			in.err = err
			return
		}
		if !object.Truthy(condition) {
			return
		}
		if err := in.execute(stmt.Body); err != nil {
			in.err = err
			return
		}
	}
}

func (in *Interpreter) VisitFunctionStmt(stmt *ast.FunctionStmt) {
	fn := &object.Function{Declaration: stmt, Closure: in.environment}
	in.environment.Define(stmt.Name.Lexeme, fn)
}

func (in *Interpreter) VisitReturnStmt(stmt *ast.ReturnStmt) {
	var value object.Value = object.Nil{}
	if stmt.Value != nil {
		v, err := in.evaluate(stmt.Value)
		if err != nil {
			in.err = err
			return
		}
		value = v
	}
	in.err = &returnUnwind{value: value}
}

func (in *Interpreter) VisitClassStmt(stmt *ast.ClassStmt) {
	var superclass *object.Class
	if stmt.Superclass != nil {
		v, err := in.evaluate(stmt.Superclass)
		if err != nil {
			in.err = err
			return
		}
		sc, ok := v.(*object.Class)
		if !ok {
			in.err = runtimeErr(stmt.Superclass.Name, "Superclass must be a class.")
			return
		}
		superclass = sc
	}

	in.environment.Define(stmt.Name.Lexeme, object.Nil{})

	if stmt.Superclass != nil {
		in.environment = object.NewEnvironment(in.environment)
		in.environment.Define("super", superclass)
	}

	methods := make(map[string]*object.Function)
	for _, method := range stmt.Methods {
		methods[method.Name.Lexeme] = &object.Function{
			Declaration:   method,
			Closure:       in.environment,
			IsInitializer: method.Name.Lexeme == "init",
		}
	}

	class := &object.Class{Name: stmt.Name.Lexeme, Superclass: superclass, Methods: methods}

	if stmt.Superclass != nil {
		in.environment = in.environment.Ancestor(1)
	}

	if err := in.environment.Assign(stmt.Name.Lexeme, class); err != nil {
		in.err = runtimeErr(stmt.Name, "%s", err.Error())
	}
}
