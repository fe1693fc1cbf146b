/*
File    : loxgo/repl/repl.go
*/

// Package repl implements loxgo's interactive Read-Eval-Print Loop:
// readline-backed line editing and history, colored diagnostics, and a
// handful of `.`-prefixed debug commands layered on top of the same
// lexer/parser/resolver/interp pipeline cmd/loxgo uses for files.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxgo/loxgo/ast"
	"github.com/loxgo/loxgo/config"
	"github.com/loxgo/loxgo/diag"
	"github.com/loxgo/loxgo/interp"
	"github.com/loxgo/loxgo/lexer"
	"github.com/loxgo/loxgo/parser"
	"github.com/loxgo/loxgo/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session. A single Interpreter persists
// across lines for the whole session, so variables and functions declared
// on one line are visible on the next — but the resolver's depth table is
// rebuilt from scratch on every line, since it isn't safe to graft new
// statements onto a tree that's already been resolved once.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New builds a Repl from cfg, falling back to loxgo's own banner/version
// constants for anything cfg leaves at its zero value.
func New(cfg config.Config, version, author, license string) *Repl {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = "lox> "
	}
	return &Repl{
		Banner:  banner,
		Version: version,
		Author:  author,
		License: license,
		Line:    strings.Repeat("-", 66),
		Prompt:  prompt,
	}
}

const banner = `
   __    _____  _    _____  ____
  / /   / __\ \| |  / ___/ / __ \
 / /   / / / |' |  / (_  \/ /_/ /
/_/___/_/_/_/|_|   \___/  \____/
`

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "loxgo "+r.Version+" | "+r.Author+" | "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type Lox code and press enter. Type .exit to quit, .ast <expr> to print its syntax tree.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop, reading lines from an internal readline instance
// bound to the process's own stdin, and writing banner text, results, and
// diagnostics to writer. Over a plain net.Conn (server mode) this means
// input still comes from the server process's terminal, not the remote
// connection — a known limitation of readline-based line editing.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[READLINE ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	in := interp.New(writer, nil)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		rl.SaveHistory(line)

		if rest, ok := strings.CutPrefix(line, ".ast "); ok {
			r.printAST(writer, rest)
			continue
		}

		r.evalLine(writer, line, in)
	}
}

// evalLine lexes, parses, resolves, and interprets one line of input
// against the session's running Interpreter. A lexer/parser/resolver
// error is reported and the line is abandoned; a successful line keeps
// any variables or functions it declared alive for subsequent lines.
func (r *Repl) evalLine(writer io.Writer, line string, in *interp.Interpreter) {
	sink := diag.NewSink()

	lx := lexer.New(line)
	tokens := lx.ScanTokens()
	for _, lexErr := range lx.Errors() {
		sink.Report(lexErr.Line, lexErr.Message)
	}

	p := parser.New(tokens, sink)
	statements := p.Parse()
	if sink.HadError() {
		r.reportDiagnostics(writer, sink)
		return
	}

	res := resolver.New(sink)
	res.Resolve(statements)
	if sink.HadError() {
		r.reportDiagnostics(writer, sink)
		return
	}
	in.SetDepths(res.Depths())

	if err := in.Interpret(statements); err != nil {
		redColor.Fprintf(writer, "%s\n[runtime error]\n", err)
	}
}

func (r *Repl) reportDiagnostics(writer io.Writer, sink *diag.Sink) {
	for _, d := range sink.Diagnostics() {
		redColor.Fprintf(writer, "%s\n", d)
	}
}

// printAST parses src as a single expression and prints its fully
// parenthesized form, the REPL's window into how the parser grouped an
// expression — handy for puzzling out precedence without reading the
// grammar.
func (r *Repl) printAST(writer io.Writer, src string) {
	sink := diag.NewSink()
	lx := lexer.New(src)
	tokens := lx.ScanTokens()
	p := parser.New(tokens, sink)
	statements := p.Parse()
	if sink.HadError() || len(statements) != 1 {
		redColor.Fprintln(writer, "[AST ERROR] expected a single expression")
		return
	}
	exprStmt, ok := statements[0].(*ast.ExpressionStmt)
	if !ok {
		redColor.Fprintln(writer, "[AST ERROR] expected a single expression")
		return
	}
	yellowColor.Fprintln(writer, ast.Print(exprStmt.Expression))
}
