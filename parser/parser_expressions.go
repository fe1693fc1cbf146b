/*
File    : loxgo/parser/parser_expressions.go
*/
package parser

import (
	"github.com/loxgo/loxgo/ast"
	"github.com/loxgo/loxgo/lexer"
)

// expression := assignment
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment := ( call "." )? IDENT "=" assignment | logicOr
//
// There's no separate l-value grammar: assignment is parsed as an ordinary
// expression and the target is validated afterward. A Variable target
// becomes an Assign; a Get target becomes a Set; anything else is an
// error reported without consuming further tokens, since the right-hand
// side already parsed fine.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}, nil
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}, nil
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr, nil
		}
	}

	return expr, nil
}

// logicOr := logicAnd ( "or" logicAnd )*
func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR) {
		operator := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// logicAnd := equality ( "and" equality )*
func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// equality := comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssocBinary(p.comparison, lexer.BANG_EQUAL, lexer.EQUAL_EQUAL)
}

// comparison := term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssocBinary(p.term, lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL)
}

// term := factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssocBinary(p.factor, lexer.MINUS, lexer.PLUS)
}

// factor := unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssocBinary(p.unary, lexer.SLASH, lexer.STAR)
}

// leftAssocBinary folds next(...) into a left-associative Binary chain
// wherever the current token is one of ops. The four precedence levels
// above share this shape and differ only in which operand parser and
// operator set they use.
func (p *Parser) leftAssocBinary(next func() (ast.Expr, error), ops ...lexer.TokenType) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// unary := ( "!" | "-" ) unary | call
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Right: right}, nil
	}
	return p.call()
}

// call := primary ( "(" arguments? ")" | "." IDENT )*
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(lexer.DOT):
			name, err := p.consumeIdentifier(unexpectedTokenMessage("property name after '.'"))
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				return nil, p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(lexer.RIGHT_PAREN, unexpectedTokenMessage("')' after arguments"))
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}, nil
}

// primary := NUMBER | STRING | "true" | "false" | "nil" | "this"
//          | IDENT | "(" expression ")" | "super" "." IDENT
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Value: false}, nil
	case p.match(lexer.TRUE):
		return &ast.Literal{Value: true}, nil
	case p.match(lexer.NIL):
		return &ast.Literal{Value: nil}, nil
	case p.match(lexer.NUMBER, lexer.STRING):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.match(lexer.THIS):
		return &ast.This{Keyword: p.previous()}, nil
	case p.match(lexer.SUPER):
		keyword := p.previous()
		if _, err := p.consume(lexer.DOT, unexpectedTokenMessage("'.' after 'super'")); err != nil {
			return nil, err
		}
		method, err := p.consumeIdentifier(unexpectedTokenMessage("superclass method name"))
		if err != nil {
			return nil, err
		}
		return &ast.Super{Keyword: keyword, Method: method}, nil
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, unexpectedTokenMessage("')' after expression")); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expression: expr}, nil
	default:
		return nil, p.errorAt(p.peek(), "Expect expression.")
	}
}
