// Command lox runs the golox interpreter: a REPL with no arguments, or a
// script file given as the sole argument.
package main

import (
	"os"

	"github.com/loxlang/golox/cmd/lox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
