/*
File    : loxgo/diag/sink.go
*/

// Package diag collects diagnostics for one run: a report(line, message)
// operation plus a had-error flag, encapsulated in a struct instead of a
// package-level global so nothing leaks between runs or REPL lines.
package diag

import "fmt"

// Diagnostic is one reported error with its source line.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message)
}

// Sink collects diagnostics from the lexer, parser, and resolver. Lex,
// parse, and resolve errors all flow through the same sink so downstream
// stages can check HadError() and skip evaluation.
type Sink struct {
	diagnostics []Diagnostic
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Report records a diagnostic at the given line.
func (s *Sink) Report(line int, message string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Line: line, Message: message})
}

// HadError reports whether any diagnostic has been recorded since the last
// Reset. The REPL builds a fresh Sink for every line so one bad line
// doesn't poison the rest of the session.
func (s *Sink) HadError() bool {
	return len(s.diagnostics) > 0
}

// Diagnostics returns every diagnostic recorded since the last Reset.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Reset clears all recorded diagnostics.
func (s *Sink) Reset() {
	s.diagnostics = nil
}
