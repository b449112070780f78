package ast

// Node is implemented by every expression and statement in the AST.  The AST
// is produced by an external parser and is never mutated by the checker.
type Node interface {
	// Repr returns a short, single-line rendering of the node used to
	// identify it in diagnostics.
	Repr() string
}

// Expr represents an expression.  The set of expressions is closed: only the
// node types declared in this package implement it.
type Expr interface {
	Node

	exprNode()
}

// Stmt represents a statement.  Like Expr, the set of statements is closed.
type Stmt interface {
	Node

	stmtNode()
}
