package ast

import (
	"strings"

	"clite/types"
)

// Value is a literal value.  It carries its own type.
type Value struct {
	Type types.Type

	// Lit is the literal text of the value as it appeared in the source.
	Lit string
}

func (v *Value) Repr() string {
	if v.Type == types.Char {
		return "'" + v.Lit + "'"
	}

	return v.Lit
}

// Variable is a reference to a declared variable by name.
type Variable struct {
	Name string
}

func (v *Variable) Repr() string {
	return v.Name
}

// Binary is an application of a binary operator.
type Binary struct {
	Op          Operator
	Left, Right Expr
}

func (b *Binary) Repr() string {
	return "(" + b.Left.Repr() + " " + b.Op.Symbol + " " + b.Right.Repr() + ")"
}

// Unary is an application of a unary operator (including the casts).
type Unary struct {
	Op      Operator
	Operand Expr
}

func (u *Unary) Repr() string {
	if u.Op.Kind >= OpIntCast {
		return u.Op.Symbol + "(" + u.Operand.Repr() + ")"
	}

	return u.Op.Symbol + u.Operand.Repr()
}

// Call is a function call.  The same node is used both in expression position
// and, wrapped by CallStmt, in statement position.
type Call struct {
	Name string
	Args []Expr
}

func (c *Call) Repr() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.Repr()
	}

	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

func (*Value) exprNode()    {}
func (*Variable) exprNode() {}
func (*Binary) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Call) exprNode()     {}
