package walk

import (
	"clite/ast"
	"clite/report"
	"clite/types"
)

// typeOf computes the static type of an expression in the environment tm.  It
// reports undefined variables and functions but always yields a type so that
// checking can continue: the sentinel for an unresolved name is void.
func (w *Walker) typeOf(expr ast.Expr, tm TypeMap) types.Type {
	checkExprNode(expr)

	switch v := expr.(type) {
	case *ast.Value:
		return v.Type
	case *ast.Variable:
		if t, ok := tm.Lookup(v.Name); ok {
			return t
		}

		w.error(report.KindName, v, "undefined variable: `%s`", v.Name)
		return types.Void
	case *ast.Call:
		if fn, ok := w.funcs.Lookup(v.Name); ok {
			return fn.Type
		}

		w.error(report.KindName, v, "undefined function: `%s`", v.Name)
		return types.Void
	case *ast.Binary:
		switch {
		case v.Op.IsArithmetic():
			// only the left operand decides: the operands are required to be
			// of equal type before this result is relied upon
			if w.typeOf(v.Left, tm) == types.Float {
				return types.Float
			}

			return types.Int
		case v.Op.IsRelational(), v.Op.IsBoolean():
			return types.Bool
		}
	case *ast.Unary:
		switch {
		case v.Op.IsNot():
			return types.Bool
		case v.Op.IsNegate():
			return w.typeOf(v.Operand, tm)
		case v.Op.IsIntCast():
			return types.Int
		case v.Op.IsFloatCast():
			return types.Float
		case v.Op.IsCharCast():
			return types.Char
		}
	}

	report.Raise("unable to infer type of malformed expression %T", expr)
	return types.Void
}
