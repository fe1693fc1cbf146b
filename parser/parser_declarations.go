/*
File    : loxgo/parser/parser_declarations.go
*/
package parser

import (
	"github.com/loxgo/loxgo/ast"
	"github.com/loxgo/loxgo/lexer"
)

// declaration := classDecl | funDecl | varDecl | statement
//
// On a parse error, reports and synchronizes to the next declaration
// boundary, returning nil so Parse skips the abandoned statement.
func (p *Parser) declaration() ast.Stmt {
	stmt, err := p.declarationOrErr()
	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) declarationOrErr() (ast.Stmt, error) {
	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	case p.match(lexer.FUN):
		return p.function("function")
	case p.match(lexer.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// classDecl := "class" IDENT ( "<" IDENT )? "{" function* "}"
func (p *Parser) classDeclaration() (ast.Stmt, error) {
	name, err := p.consumeIdentifier(unexpectedTokenMessage("class name"))
	if err != nil {
		return nil, err
	}

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		superName, err := p.consumeIdentifier(unexpectedTokenMessage("superclass name"))
		if err != nil {
			return nil, err
		}
		superclass = &ast.Variable{Name: superName}
	}

	if _, err := p.consume(lexer.LEFT_BRACE, unexpectedTokenMessage("'{' before class body")); err != nil {
		return nil, err
	}

	var methods []*ast.FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		method, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method.(*ast.FunctionStmt))
	}

	if _, err := p.consume(lexer.RIGHT_BRACE, unexpectedTokenMessage("'}' after class body")); err != nil {
		return nil, err
	}

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}, nil
}

// function := IDENT "(" params? ")" block
// kind is "function" or "method", used only in error messages.
func (p *Parser) function(kind string) (ast.Stmt, error) {
	name, err := p.consumeIdentifier(unexpectedTokenMessage(kind + " name"))
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_PAREN, unexpectedTokenMessage("'(' after "+kind+" name")); err != nil {
		return nil, err
	}

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				return nil, p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			param, err := p.consumeIdentifier(unexpectedTokenMessage("parameter name"))
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, unexpectedTokenMessage("')' after parameters")); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_BRACE, unexpectedTokenMessage("'{' before "+kind+" body")); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}

// varDecl := "var" IDENT ( "=" expression )? ";"
func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consumeIdentifier(unexpectedTokenMessage("variable name"))
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, unexpectedTokenMessage("';' after variable declaration")); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, nil
}
