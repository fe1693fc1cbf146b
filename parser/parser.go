/*
File    : loxgo/parser/parser.go
*/

// Package parser implements a recursive-descent, predictive parser for Lox
// with one token of lookahead. Structured as a Parser struct carrying a
// token cursor, split into one file per grammar area, reporting errors to
// a sink and recovering via synchronization instead of panicking.
package parser

import (
	"fmt"

	"github.com/loxgo/loxgo/ast"
	"github.com/loxgo/loxgo/diag"
	"github.com/loxgo/loxgo/lexer"
)

// maxArgs is the parameter/argument count ceiling the grammar enforces.
const maxArgs = 255

// Parser holds the token stream and parse state. New reports diagnostics
// to sink rather than panicking, so the caller can surface every error
// found in one pass instead of stopping at the first one.
type Parser struct {
	tokens  []lexer.Token
	current int
	sink    *diag.Sink
}

// New builds a Parser over the full token sequence produced by the lexer.
func New(tokens []lexer.Token, sink *diag.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// Parse consumes the whole token stream and returns the top-level
// statement list. A declaration whose parse was abandoned due to an error
// is skipped, not included in the result.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// parseError is returned internally by parsing helpers to signal "report
// and synchronize", never surfaced past Parse.
type parseError struct{ msg string }

func (e *parseError) Error() string { return e.msg }

// errorAt reports a diagnostic at tok's line and returns a parseError for
// the caller to propagate up to the nearest declaration boundary.
func (p *Parser) errorAt(tok lexer.Token, message string) *parseError {
	p.sink.Report(tok.Line, message)
	return &parseError{msg: message}
}

// synchronize discards tokens until it reaches a statement boundary: the
// token after a `;`, or a token that starts a new statement/declaration.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.RETURN, lexer.PRINT:
			return
		}
		p.advance()
	}
}

// --- token cursor helpers ---

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return t == lexer.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to have type t, advancing past it; on
// mismatch it reports message at the offending token and returns a
// parseError.
func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) consumeIdentifier(message string) (lexer.Token, error) {
	return p.consume(lexer.IDENTIFIER, message)
}

func unexpectedTokenMessage(expected string) string {
	return fmt.Sprintf("Expect %s.", expected)
}
