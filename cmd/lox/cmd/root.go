// Package cmd implements the golox command-line surface (§6.2): zero
// arguments starts an interactive REPL, one argument runs a script file,
// more than one prints a usage message and exits 64.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/loxlang/golox/pkg/lox"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("too many arguments")

// exitCode is set by runLox once it knows whether it ran a file or the
// REPL, and is what Execute ultimately returns to main.
var exitCode = lox.ExitOK

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "A tree-walking interpreter for Lox",
	Long: `golox is a tree-walking interpreter for Lox: numbers, strings,
booleans, and nil; block-scoped variables; closures; single-inheritance
classes with methods, this, and super; if/while/for; print.

Run with no arguments for an interactive prompt, or with a single script
path to execute a file.`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) > 1 {
			return errUsage
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLox,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return lox.ExitUsage
	}
	return exitCode
}

func runLox(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		exitCode = runFile(args[0])
		return nil
	}
	exitCode = runPrompt()
	return nil
}

func runFile(path string) int {
	runner := lox.NewRunner(os.Stdout, os.Stderr, false)
	return runner.RunFile(path)
}
