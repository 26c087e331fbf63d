package interp

import "github.com/loxlang/golox/internal/token"

// LoxClass is runtime class metadata: its name, optional superclass, and
// method table (§3).
type LoxClass struct {
	Name       string
	Superclass *LoxClass
	Methods    map[string]*LoxFunction
}

// NewLoxClass creates a LoxClass with the given method table.
func NewLoxClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{Name: name, Superclass: superclass, Methods: methods}
}

// findMethod looks up a method by name, walking the superclass chain.
func (c *LoxClass) findMethod(name string) (*LoxFunction, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil, false
}

// Arity is the arity of `init`, or 0 when the class has none (§4.5.3).
func (c *LoxClass) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates c, running `init` (if any) against the new instance.
func (c *LoxClass) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewLoxInstance(c)
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// LoxInstance is a runtime instance of a class: a reference to its class
// plus a mutable field table (§3).
type LoxInstance struct {
	Class  *LoxClass
	Fields map[string]Value
}

// NewLoxInstance creates an instance of class with no fields set.
func NewLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{Class: class, Fields: make(map[string]Value)}
}

// get resolves a property read: instance fields take priority over bound
// methods (§4.5.2).
func (o *LoxInstance) get(name token.Token) (Value, error) {
	if v, ok := o.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := o.Class.findMethod(name.Lexeme); ok {
		return method.bind(o), nil
	}
	return nil, newUndefinedProperty(name)
}

// set stores value into a field by name, creating it if absent.
func (o *LoxInstance) set(name token.Token, value Value) {
	o.Fields[name.Lexeme] = value
}
