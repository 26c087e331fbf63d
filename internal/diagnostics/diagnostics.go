// Package diagnostics collects and formats the scan/parse/resolve errors
// described in §6.3 and §7: each is reported and execution continues, but
// the run as a whole is marked as failed.
package diagnostics

import (
	"fmt"

	"github.com/loxlang/golox/internal/token"
)

// Report is a single scan, parse, or resolve diagnostic.
type Report struct {
	Line    int
	Where   string // "" for scanner errors, " at end", or " at 'lexeme'"
	Message string
}

func (r Report) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", r.Line, r.Where, r.Message)
}

// Sink accumulates reports across a single run (scan, then parse, then
// resolve) and tracks whether the run had any error.
type Sink struct {
	reports []Report
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Error reports a diagnostic with no location detail (scanner errors).
func (s *Sink) Error(line int, message string) {
	s.reports = append(s.reports, Report{Line: line, Message: message})
}

// ErrorAtToken reports a diagnostic located at a token, formatting the
// location as " at end" for EOF or " at 'lexeme'" otherwise.
func (s *Sink) ErrorAtToken(tok token.Token, message string) {
	where := " at '" + tok.Lexeme + "'"
	if tok.Type == token.EOF {
		where = " at end"
	}
	s.reports = append(s.reports, Report{Line: tok.Line, Where: where, Message: message})
}

// HadError reports whether any diagnostic has been recorded.
func (s *Sink) HadError() bool {
	return len(s.reports) > 0
}

// Reports returns all recorded diagnostics in report order.
func (s *Sink) Reports() []Report {
	return s.reports
}

// Reset clears all recorded diagnostics, for REPL reuse between lines.
func (s *Sink) Reset() {
	s.reports = nil
}

// RuntimeError is a single interpreter-level failure (§7): it carries the
// offending token for source-location context.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// NewRuntimeError constructs a RuntimeError.
func NewRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
