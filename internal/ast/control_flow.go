package ast

// IfStmt runs Then when Condition is truthy, else Else (if present).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if absent
}

// WhileStmt repeats Body while Condition is truthy. The parser also
// desugars `for` into this node (§4.2), so no separate ForStmt variant
// exists.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*IfStmt) stmtNode()    {}
func (*WhileStmt) stmtNode() {}
