// Package ast defines the Lox abstract syntax tree (§3): immutable
// expression and statement node variants produced by the parser, walked
// by the resolver and the interpreter.
package ast

// Expr is implemented by every expression node variant.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement node variant.
type Stmt interface {
	stmtNode()
}
