package interp

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/diagnostics"
	"github.com/loxlang/golox/internal/token"
)

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return in.evaluate(e.Expression)

	case *ast.Unary:
		right, err := in.evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Operator.Type {
		case token.MINUS:
			n, ok := right.(float64)
			if !ok {
				return nil, diagnostics.NewRuntimeError(e.Operator, "Operand must be a number.")
			}
			return -n, nil
		case token.BANG:
			return !isTruthy(right), nil
		}
		return nil, nil

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Type == token.OR {
			if isTruthy(left) {
				return left, nil
			}
		} else {
			if !isTruthy(left) {
				return left, nil
			}
		}
		return in.evaluate(e.Right)

	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)

	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			in.environment.AssignAt(distance, e.Name.Lexeme, value)
		} else if err := in.globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		object, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*LoxInstance)
		if !ok {
			return nil, diagnostics.NewRuntimeError(e.Name, "Only instances have properties.")
		}
		return instance.get(e.Name)

	case *ast.Set:
		object, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*LoxInstance)
		if !ok {
			return nil, diagnostics.NewRuntimeError(e.Name, "Only instances have fields.")
		}
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		instance.set(e.Name, value)
		return value, nil

	case *ast.This:
		return in.lookUpVariable(e.Keyword, e)

	case *ast.Super:
		return in.evalSuper(e)
	}

	return nil, nil
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, diagnostics.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l - r, nil
	case token.SLASH:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, diagnostics.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l / r, nil
	case token.STAR:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, diagnostics.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l * r, nil
	case token.PLUS:
		if l, r, ok := bothNumbers(left, right); ok {
			return l + r, nil
		}
		if l, ok := left.(string); ok {
			switch right.(type) {
			case float64, string, bool:
				return l + stringify(right), nil
			}
		}
		return nil, diagnostics.NewRuntimeError(e.Operator,
			"Operands must be either two numbers or a string and a literal value.")
	case token.GREATER:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, diagnostics.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l > r, nil
	case token.GREATER_EQUAL:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, diagnostics.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l >= r, nil
	case token.LESS:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, diagnostics.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l < r, nil
	case token.LESS_EQUAL:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, diagnostics.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l <= r, nil
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}

	return nil, nil
}

func bothNumbers(a, b Value) (float64, float64, bool) {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	return af, bf, aok && bok
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		arg, err := in.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}

	if len(args) != callable.Arity() {
		return nil, diagnostics.NewRuntimeError(e.Paren,
			"Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	return callable.Call(in, args)
}

func (in *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	distance := in.locals[e]
	superVal := in.environment.GetAt(distance, "super")
	super := superVal.(*LoxClass)
	this := in.environment.GetAt(distance-1, "this").(*LoxInstance)

	method, ok := super.findMethod(e.Method.Lexeme)
	if !ok {
		return nil, newUndefinedProperty(e.Method)
	}
	return method.bind(this), nil
}

// lookUpVariable implements §4.5.2: a resolved local reads directly from
// the scope at its hop-distance; everything else falls back to globals.
func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (Value, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}
