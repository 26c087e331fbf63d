package interp

import (
	"github.com/loxlang/golox/internal/diagnostics"
	"github.com/loxlang/golox/internal/token"
)

// RuntimeError is re-exported so callers outside this package (pkg/lox,
// cmd/lox) can type-assert on it without importing internal/diagnostics
// directly.
type RuntimeError = diagnostics.RuntimeError

func newUndefinedProperty(name token.Token) error {
	return diagnostics.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}
