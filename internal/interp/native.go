package interp

import "time"

// nativeFunction wraps a host-implemented builtin as a Callable (§6.4).
type nativeFunction struct {
	arity int
	fn    func(in *Interpreter, args []Value) (Value, error)
}

func (n *nativeFunction) Arity() int { return n.arity }

func (n *nativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.fn(in, args)
}

// defineGlobals installs the one builtin §6.4 requires, `clock`.
func defineGlobals(globals *Environment) {
	globals.Define("clock", &nativeFunction{
		arity: 0,
		fn: func(_ *Interpreter, _ []Value) (Value, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})
}
