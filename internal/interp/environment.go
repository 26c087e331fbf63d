package interp

import (
	"github.com/loxlang/golox/internal/diagnostics"
	"github.com/loxlang/golox/internal/token"
)

// Environment is a lexical scope: a name-to-value table plus an optional
// enclosing scope (§4.4). Environments form a singly-linked chain rooted
// at the interpreter's globals.
type Environment struct {
	values map[string]Value
	Parent *Environment
}

// NewEnvironment creates a root-level environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a scope enclosed by parent.
func NewEnclosedEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]Value), Parent: parent}
}

// Define unconditionally inserts name into the current scope. At global
// scope this makes redefinition legal (the REPL's ergonomic shadowing);
// local redefinition is rejected earlier, at resolve time, by the
// resolver's declare() check (§9 Open Question).
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get walks outward from this scope, returning the nearest binding for
// name.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, diagnostics.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign walks outward from this scope, mutating the nearest binding for
// name. It fails if no scope in the chain already holds name.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return diagnostics.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// ancestor follows Parent exactly distance times. Only called with a
// distance the resolver produced; correct resolution guarantees the chain
// is long enough (§3 invariant).
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Parent
	}
	return env
}

// GetAt reads name directly out of the scope reached by distance hops,
// without walking further outward.
func (e *Environment) GetAt(distance int, name string) Value {
	return e.ancestor(distance).values[name]
}

// AssignAt writes value directly into the scope reached by distance hops.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).values[name] = value
}
