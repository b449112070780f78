package ast

// Skip is the empty statement.
type Skip struct{}

func (*Skip) Repr() string {
	return ";"
}

// Assignment assigns the value of Source to Target.
type Assignment struct {
	Target *Variable
	Source Expr
}

func (a *Assignment) Repr() string {
	return a.Target.Repr() + " = " + a.Source.Repr()
}

// Block is a sequence of statements.
type Block struct {
	Members []Stmt
}

func (b *Block) Repr() string {
	return "{...}"
}

// Conditional is an if statement.  A missing else branch is represented by a
// Skip.
type Conditional struct {
	Test Expr
	Then Stmt
	Else Stmt
}

func (c *Conditional) Repr() string {
	return "if (" + c.Test.Repr() + ")"
}

// Loop is a while loop.
type Loop struct {
	Test Expr
	Body Stmt
}

func (l *Loop) Repr() string {
	return "while (" + l.Test.Repr() + ")"
}

// CallStmt is a function call whose result, if any, is discarded.
type CallStmt struct {
	Call *Call
}

func (cs *CallStmt) Repr() string {
	return cs.Call.Repr()
}

// Return returns Result from the function named by Target.
type Return struct {
	// Target is the name of the function this statement returns from.  It is
	// recorded by the parser.
	Target string
	Result Expr
}

func (r *Return) Repr() string {
	return "return " + r.Result.Repr()
}

func (*Skip) stmtNode()        {}
func (*Assignment) stmtNode()  {}
func (*Block) stmtNode()       {}
func (*Conditional) stmtNode() {}
func (*Loop) stmtNode()        {}
func (*CallStmt) stmtNode()    {}
func (*Return) stmtNode()      {}
