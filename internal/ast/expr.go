package ast

import "github.com/loxlang/golox/internal/token"

// Literal is a compile-time constant value: a number, string, bool, or nil.
type Literal struct {
	Value any
}

// Variable is a reference to a named binding.
type Variable struct {
	Name token.Token
}

// Assign stores Value into the binding named Name, producing Value.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Unary applies a prefix operator (`-` or `!`) to Right.
type Unary struct {
	Operator token.Token
	Right    Expr
}

// Binary applies an infix operator to Left and Right, evaluated left-first.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Logical is `and`/`or`; unlike Binary it short-circuits (§4.5.2).
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Grouping is a parenthesized sub-expression, kept distinct so printing and
// precedence stay faithful to source (it otherwise evaluates transparently).
type Grouping struct {
	Expression Expr
}

// Call invokes Callee with Arguments. Paren is the closing `)`, used as the
// location for call-related runtime errors.
type Call struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

// Get reads property Name off Object.
type Get struct {
	Object Expr
	Name   token.Token
}

// Set stores Value into property Name on Object.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

// This is a `this` reference inside a method body.
type This struct {
	Keyword token.Token
}

// Super is a `super.method` reference inside a subclass method body.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}
func (*Super) exprNode()    {}
