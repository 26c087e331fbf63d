package interp

import "strconv"

// Value is a runtime Lox value (§3). nil itself represents Nil; the
// remaining cases are plain float64/string/bool plus the Callable
// implementations below (LoxFunction, boundMethod, *LoxClass,
// *nativeFunction).
type Value any

// Callable is implemented by every value that can appear as the callee of
// a Call expression: user functions, bound methods, classes, and native
// functions.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
}

// isTruthy implements §4.6: nil and false are falsy, everything else
// (including 0 and "") is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements §4.6's equality: nil equals only nil; numbers,
// strings, and bools compare by value; callables/instances/classes
// compare by identity (Go's == over the dynamic pointer does this for the
// pointer-shaped cases below).
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	af, aIsNum := a.(float64)
	bf, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return af == bf
	}
	if aIsNum != bIsNum {
		return false
	}
	return a == b
}

// stringify implements §4.6's textual conversion, used by print and by
// REPL result echoing.
func stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	switch x := v.(type) {
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		text := strconv.FormatFloat(x, 'f', -1, 64)
		if len(text) > 2 && text[len(text)-2:] == ".0" {
			text = text[:len(text)-2]
		}
		return text
	case string:
		return x
	case *LoxFunction:
		return "<fn " + x.Declaration.Name.Lexeme + ">"
	case *boundMethod:
		return "<fn " + x.method.Declaration.Name.Lexeme + ">"
	case *nativeFunction:
		return "<native fn>"
	case *LoxClass:
		return x.Name
	case *LoxInstance:
		return x.Class.Name + " instance"
	default:
		return "nil"
	}
}
