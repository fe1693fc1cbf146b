/*
File    : loxgo/cmd/loxgo/main.go
*/

// Command loxgo is the entry point for the Lox interpreter. It provides
// three modes of operation:
//  1. REPL mode (default): an interactive Read-Eval-Print Loop
//  2. File mode: execute a Lox source file given on the command line
//  3. Server mode: `loxgo serve <port>` runs one REPL session per TCP
//     connection, for remote/shared sessions
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/loxgo/loxgo/config"
	"github.com/loxgo/loxgo/diag"
	"github.com/loxgo/loxgo/interp"
	"github.com/loxgo/loxgo/lexer"
	"github.com/loxgo/loxgo/parser"
	"github.com/loxgo/loxgo/repl"
	"github.com/loxgo/loxgo/resolver"
)

const (
	version = "v0.1.0"
	author  = "loxgo contributors"
	license = "MIT"
)

// Exit codes follow the convention the tree-walking reference
// implementation this language is modeled on uses: a clean run exits 0,
// a lex/parse/resolve error exits 65, and a runtime error exits 70.
const (
	exitOK        = 0
	exitDataError = 65
	exitSoftware  = 70
)

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	cfg, err := config.LoadDefaultFile()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(exitSoftware)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			os.Exit(exitOK)
		case "--version", "-v":
			showVersion()
			os.Exit(exitOK)
		case "serve":
			if len(os.Args) < 3 {
				redColor.Fprintln(os.Stderr, "[USAGE ERROR] Missing port. Usage: loxgo serve <port>")
				os.Exit(exitSoftware)
			}
			startServer(cfg, os.Args[2])
			return
		default:
			os.Exit(runFile(arg))
		}
		return
	}

	session := repl.New(cfg, version, author, license)
	session.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("loxgo - a tree-walking Lox interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  loxgo                   Start the interactive REPL")
	yellowColor.Println("  loxgo <path-to-file>    Run a Lox (.lox) source file")
	yellowColor.Println("  loxgo serve <port>      Run one REPL session per TCP connection")
	yellowColor.Println("  loxgo --help            Show this message")
	yellowColor.Println("  loxgo --version         Show version information")
}

func showVersion() {
	cyanColor.Printf("loxgo %s (%s)\n", version, license)
}

// runFile reads, lexes, parses, resolves, and interprets the file at
// path, returning the process exit code the caller should use.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read '%s': %v\n", path, err)
		return exitSoftware
	}

	sink := diag.NewSink()

	lx := lexer.New(string(source))
	tokens := lx.ScanTokens()
	for _, lexErr := range lx.Errors() {
		sink.Report(lexErr.Line, lexErr.Message)
	}

	p := parser.New(tokens, sink)
	statements := p.Parse()
	if sink.HadError() {
		reportDiagnostics(sink)
		return exitDataError
	}

	res := resolver.New(sink)
	res.Resolve(statements)
	if sink.HadError() {
		reportDiagnostics(sink)
		return exitDataError
	}

	in := interp.New(os.Stdout, res.Depths())
	if err := in.Interpret(statements); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		return exitSoftware
	}
	return exitOK
}

func reportDiagnostics(sink *diag.Sink) {
	for _, d := range sink.Diagnostics() {
		redColor.Fprintf(os.Stderr, "%s\n", d)
	}
}

// startServer listens on port and hands each accepted connection its own
// REPL session. The session writes its output to the socket; its input
// is read from this process's own stdin, not from the connection (see
// repl.Repl.Start).
func startServer(cfg config.Config, port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on %s: %v\n", port, err)
		os.Exit(exitSoftware)
	}
	defer listener.Close()
	cyanColor.Printf("loxgo REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleConn(cfg, conn)
	}
}

func handleConn(cfg config.Config, conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected: %s\n", conn.RemoteAddr())
	session := repl.New(cfg, version, author, license)
	session.Start(conn)
	cyanColor.Printf("client disconnected: %s\n", conn.RemoteAddr())
}
