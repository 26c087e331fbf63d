package interp

import "github.com/loxlang/golox/internal/ast"

// LoxFunction is a user-defined function or method value: its declaration
// AST node paired with the environment it closed over at definition time
// (§3, §4.5.3).
type LoxFunction struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

// NewLoxFunction wraps decl with the environment active at the point of
// its `fun`/method declaration.
func NewLoxFunction(decl *ast.FunctionStmt, closure *Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{Declaration: decl, Closure: closure, IsInitializer: isInitializer}
}

// bind extends f's closure with a fresh scope binding `this` to instance,
// producing the bound method value §4.5.3 describes for Get/Super.
func (f *LoxFunction) bind(instance *LoxInstance) *boundMethod {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &boundMethod{method: NewLoxFunction(f.Declaration, env, f.IsInitializer)}
}

func (f *LoxFunction) Arity() int {
	return len(f.Declaration.Params)
}

func (f *LoxFunction) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(f.Declaration.Body, env)
	if ret, ok := err.(returnSignal); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// boundMethod is a function value whose closure has been extended with a
// `this → instance` binding (§4.5.3); calling it delegates entirely to the
// underlying LoxFunction.
type boundMethod struct {
	method *LoxFunction
}

func (b *boundMethod) Arity() int { return b.method.Arity() }

func (b *boundMethod) Call(in *Interpreter, args []Value) (Value, error) {
	return b.method.Call(in, args)
}
