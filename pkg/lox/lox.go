// Package lox is the embeddable entry point to the Lox pipeline: scan,
// parse, resolve, interpret. It exposes the run results cmd/lox maps onto
// the process exit codes of §6.2.
package lox

import (
	"fmt"
	"io"
	"os"

	"github.com/loxlang/golox/internal/diagnostics"
	"github.com/loxlang/golox/internal/interp"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
	"github.com/loxlang/golox/internal/resolver"
)

// Exit codes, per §6.2.
const (
	ExitOK        = 0
	ExitDataError = 65 // scan/parse/resolve error
	ExitSoftware  = 70 // runtime error
	ExitUsage     = 64 // bad CLI invocation
)

// Runner drives one or more source chunks against a single interpreter
// instance, so that REPL state (globals, closures) persists across lines.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
	interp *interp.Interpreter
	isREPL bool
}

// NewRunner creates a Runner. isREPL enables §4.5.1's bare-expression
// result echoing.
func NewRunner(stdout, stderr io.Writer, isREPL bool) *Runner {
	return &Runner{
		stdout: stdout,
		stderr: stderr,
		interp: interp.NewInterpreter(stdout, isREPL),
		isREPL: isREPL,
	}
}

// Run scans, parses, resolves, and interprets one source chunk, reporting
// any diagnostics to stderr. It reports whether a static (scan/parse/
// resolve) error or a runtime error occurred, per §7's two independent
// error flags.
func (r *Runner) Run(source string) (hadError, hadRuntimeError bool) {
	errs := diagnostics.NewSink()

	scan := lexer.New(source, errs)
	tokens := scan.ScanTokens()

	p := parser.New(tokens, errs)
	statements := p.Parse()

	if errs.HadError() {
		r.reportStatic(errs)
		return true, false
	}

	res := resolver.New(errs)
	res.Resolve(statements)

	if errs.HadError() {
		r.reportStatic(errs)
		return true, false
	}

	r.interp.SetLocals(res.Locals())

	if err := r.interp.Interpret(statements); err != nil {
		fmt.Fprintln(r.stderr, err.Error())
		return false, true
	}

	return false, false
}

func (r *Runner) reportStatic(errs *diagnostics.Sink) {
	for _, report := range errs.Reports() {
		fmt.Fprintln(r.stderr, report.String())
	}
}

// RunFile reads path and runs it in batch mode, returning the process
// exit code of §6.2.
func (r *Runner) RunFile(path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(r.stderr, "Could not read file %q: %v\n", path, err)
		return ExitDataError
	}

	hadError, hadRuntimeError := r.Run(string(content))
	switch {
	case hadError:
		return ExitDataError
	case hadRuntimeError:
		return ExitSoftware
	default:
		return ExitOK
	}
}
