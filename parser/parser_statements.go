/*
File    : loxgo/parser/parser_statements.go
*/
package parser

import (
	"github.com/loxgo/loxgo/ast"
	"github.com/loxgo/loxgo/lexer"
)

// statement := exprStmt | forStmt | ifStmt | printStmt | returnStmt
//            | whileStmt | block
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.LEFT_BRACE):
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Statements: body}, nil
	default:
		return p.expressionStatement()
	}
}

// block := "{" declaration* "}"
// The opening brace is already consumed by the caller.
func (p *Parser) block() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if _, err := p.consume(lexer.RIGHT_BRACE, unexpectedTokenMessage("'}' after block")); err != nil {
		return nil, err
	}
	return statements, nil
}

// exprStmt := expression ";"
func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, unexpectedTokenMessage("';' after expression")); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expression: expr}, nil
}

// printStmt := "print" expression ";"
func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, unexpectedTokenMessage("';' after value")); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: value}, nil
}

// returnStmt := "return" expression? ";"
func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()

	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, unexpectedTokenMessage("';' after return value")); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

// ifStmt := "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, unexpectedTokenMessage("'(' after 'if'")); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, unexpectedTokenMessage("')' after if condition")); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}, nil
}

// whileStmt := "while" "(" expression ")" statement
func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, unexpectedTokenMessage("'(' after 'while'")); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, unexpectedTokenMessage("')' after condition")); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: condition, Body: body}, nil
}

// forStmt := "for" "(" ( varDecl | exprStmt | ";" )
//                       expression? ";"
//                       expression? ")" statement
//
// There is no dedicated for-loop AST node: the loop is desugared here into
// the while/block nodes that already exist, each part folded in from the
// inside out (increment appended to the body, then the whole thing wrapped
// in a WhileStmt, then the initializer prepended in an outer block).
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, unexpectedTokenMessage("'(' after 'for'")); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, unexpectedTokenMessage("';' after loop condition")); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, unexpectedTokenMessage("')' after for clauses")); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}
	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body, nil
}
