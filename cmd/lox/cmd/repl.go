package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/loxlang/golox/internal/config"
	"github.com/loxlang/golox/pkg/lox"
)

// runPrompt drives the interactive REPL (§6.2): it reads a line, runs it
// in REPL mode, and loops, clearing error flags between lines — the REPL
// itself never exits on a scan/parse/resolve/runtime error.
func runPrompt() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .golox.yaml: %v\n", err)
	}

	printBanner(os.Stdout, cfg)

	rl, err := readline.New(cfg.Prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not start REPL: %v\n", err)
		return lox.ExitSoftware
	}
	defer rl.Close()

	runner := lox.NewRunner(os.Stdout, os.Stderr, cfg.EchoResults)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl-D) or readline.ErrInterrupt (Ctrl-C)
			fmt.Fprintln(os.Stdout)
			break
		}
		if line == "" {
			continue
		}

		rl.SaveHistory(line)

		// Errors are reported to stderr by Run itself; the REPL loop
		// just continues regardless of the outcome.
		runner.Run(line)
	}

	return lox.ExitOK
}

func printBanner(w io.Writer, cfg config.Config) {
	banner := "golox — a Lox interpreter"
	sep := "--------------------------"

	if !cfg.ColorEnabled() {
		fmt.Fprintln(w, sep)
		fmt.Fprintln(w, banner)
		fmt.Fprintln(w, sep)
		return
	}

	cyan := color.New(color.FgCyan)
	blue := color.New(color.FgBlue)
	blue.Fprintln(w, sep)
	cyan.Fprintln(w, banner)
	blue.Fprintln(w, sep)
}
