package ast

import "github.com/loxlang/golox/internal/token"

// ClassStmt declares a class. Superclass is a *Variable expression (not
// just a name) so the resolver/interpreter can resolve it the same way as
// any other variable reference; it is nil when there is no `< Super`.
type ClassStmt struct {
	Name       token.Token
	Superclass *Variable
	Methods    []*FunctionStmt
}

func (*ClassStmt) stmtNode() {}
