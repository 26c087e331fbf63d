package ast

import "github.com/loxlang/golox/internal/token"

// FunctionStmt is both a top-level `fun` declaration and a class method
// declaration (the resolver/interpreter distinguish the two by context,
// not by node shape).
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ReturnStmt unwinds the nearest enclosing call frame with Value's result
// (or nil if Value is absent).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if absent
}

func (*FunctionStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
