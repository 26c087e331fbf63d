// Package interp implements the Lox tree-walking interpreter (§4.5–§4.6):
// statement/expression evaluation over a chain of lexical environments,
// call semantics, closures, classes, and runtime error reporting.
package interp

import (
	"fmt"
	"io"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/diagnostics"
)

// Interpreter evaluates a resolved statement list.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[ast.Expr]int
	out         io.Writer
	isREPL      bool
}

// NewInterpreter creates an Interpreter that writes print/REPL output to
// out. isREPL enables bare-expression-statement echoing (§4.5.1, §6.2).
func NewInterpreter(out io.Writer, isREPL bool) *Interpreter {
	globals := NewEnvironment()
	defineGlobals(globals)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		out:         out,
		isREPL:      isREPL,
	}
}

// SetLocals adds the resolver's hop-distance entries to the interpreter's
// locals table (§3). It must be called before Interpret for resolved local
// lookups to be honoured; an expression absent from locals is treated as
// global. Entries from earlier calls are kept, so functions resolved in an
// earlier REPL line still find their locals.
func (in *Interpreter) SetLocals(locals map[ast.Expr]int) {
	for expr, distance := range locals {
		in.locals[expr] = distance
	}
}

// Interpret runs statements top to bottom. A RuntimeError is caught once
// here (§5, §7): execution of the current statement is abandoned and the
// error is returned to the caller, which reports it and maps it to the
// batch-mode exit code.
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		value, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		if in.isREPL {
			switch s.Expression.(type) {
			case *ast.Assign, *ast.Set, *ast.Call:
				// not printed
			default:
				fmt.Fprintln(in.out, stringify(value))
			}
		}
		return nil

	case *ast.PrintStmt:
		value, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, stringify(value))
		return nil

	case *ast.VarStmt:
		var value Value
		if s.Initializer != nil {
			var err error
			value, err = in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, NewEnclosedEnvironment(in.environment))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(s.Then)
		} else if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := NewLoxFunction(s, in.environment, false)
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{value: value}

	case *ast.ClassStmt:
		return in.executeClass(s)
	}
	return nil
}

func (in *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *LoxClass
	if s.Superclass != nil {
		superVal, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		var ok bool
		superclass, ok = superVal.(*LoxClass)
		if !ok {
			return diagnostics.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
	}

	in.environment.Define(s.Name.Lexeme, nil)

	enclosing := in.environment
	if superclass != nil {
		in.environment = NewEnclosedEnvironment(in.environment)
		in.environment.Define("super", superclass)
	}

	methods := make(map[string]*LoxFunction)
	for _, method := range s.Methods {
		isInitializer := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = NewLoxFunction(method, in.environment, isInitializer)
	}

	class := NewLoxClass(s.Name.Lexeme, superclass, methods)

	if superclass != nil {
		in.environment = enclosing
	}

	return in.environment.Assign(s.Name, class)
}

// executeBlock runs statements against env, restoring the previous
// environment on every exit path including an error or return signal
// (§4.5.1).
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
