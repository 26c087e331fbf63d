package ast

import "github.com/loxlang/golox/internal/token"

// ExpressionStmt evaluates Expression for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates Expression and writes its stringified form.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares Name in the current scope, bound to Initializer's value
// (or nil if Initializer is absent).
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	Statements []Stmt
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
