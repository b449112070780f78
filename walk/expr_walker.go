package walk

import (
	"clite/ast"
	"clite/report"
	"clite/types"
)

// walkExpr checks that every operator in an expression is applied to operands
// of legal types.  Operands are always walked before their operator so nested
// errors are reported first.
func (w *Walker) walkExpr(expr ast.Expr, tm TypeMap) {
	checkExprNode(expr)

	switch v := expr.(type) {
	case *ast.Value:
		// nothing to check
	case *ast.Variable:
		if _, ok := tm.Lookup(v.Name); !ok {
			w.error(report.KindName, v, "undeclared variable: `%s`", v.Name)
		}
	case *ast.Call:
		fn, ok := w.funcs.Lookup(v.Name)
		if !ok {
			w.error(report.KindName, v, "undeclared function: `%s`", v.Name)
			return
		}

		if fn.Type == types.Void {
			w.error(report.KindUsage, v, "call expression must invoke a non-void function: `%s`", v.Name)
		}

		w.walkCall(v, fn, tm)
	case *ast.Binary:
		w.walkBinary(v, tm)
	case *ast.Unary:
		w.walkUnary(v, tm)
	default:
		report.Raise("unable to check malformed expression %T", expr)
	}
}

// checkExprNode raises an internal error if expr is a nil node, including a nil
// pointer of one of the expression types.
func checkExprNode(expr ast.Expr) {
	var isNil bool
	switch v := expr.(type) {
	case *ast.Value:
		isNil = v == nil
	case *ast.Variable:
		isNil = v == nil
	case *ast.Call:
		isNil = v == nil
	case *ast.Binary:
		isNil = v == nil
	case *ast.Unary:
		isNil = v == nil
	case nil:
		isNil = true
	}

	if isNil {
		report.Raise("nil expression")
	}
}

// walkBinary checks a binary operator application.
func (w *Walker) walkBinary(b *ast.Binary, tm TypeMap) {
	w.walkExpr(b.Left, tm)
	w.walkExpr(b.Right, tm)

	lt, rt := w.typeOf(b.Left, tm), w.typeOf(b.Right, tm)

	switch {
	case b.Op.IsArithmetic():
		if lt != rt || !lt.IsNumeric() {
			w.error(report.KindTyping, b, "type error for %s (got %s and %s)", b.Op, lt, rt)
		}
	case b.Op.IsRelational():
		if lt != rt {
			w.error(report.KindTyping, b, "type error for %s (got %s and %s)", b.Op, lt, rt)
		}
	case b.Op.IsBoolean():
		if lt != types.Bool || rt != types.Bool {
			w.error(report.KindTyping, b, "%s: non-bool operand", b.Op)
		}
	default:
		report.Raise("operator %s is not a binary operator", b.Op)
	}
}

// walkUnary checks a unary operator application.  The casts are checked here
// as well: a cast to int only accepts floats and chars.
func (w *Walker) walkUnary(u *ast.Unary, tm TypeMap) {
	w.walkExpr(u.Operand, tm)

	t := w.typeOf(u.Operand, tm)

	switch {
	case u.Op.IsNot():
		if t != types.Bool {
			w.error(report.KindTyping, u, "%s: non-bool operand", u.Op)
		}
	case u.Op.IsNegate():
		if !t.IsNumeric() {
			w.error(report.KindTyping, u, "%s: non-int or non-float operand", u.Op)
		}
	case u.Op.IsIntCast():
		if t != types.Float && t != types.Char {
			w.error(report.KindTyping, u, "%s: non-float or non-char operand", u.Op)
		}
	case u.Op.IsFloatCast():
		if t != types.Int {
			w.error(report.KindTyping, u, "%s: non-int operand", u.Op)
		}
	case u.Op.IsCharCast():
		if t != types.Int {
			w.error(report.KindTyping, u, "%s: non-int operand", u.Op)
		}
	default:
		report.Raise("operator %s is not a unary operator", u.Op)
	}
}

// walkCall checks the arguments of a call against the parameters of fn.  The
// callee must already have been resolved.  Arguments must match their
// parameter types exactly: there is no widening at call boundaries.
func (w *Walker) walkCall(call *ast.Call, fn *ast.Function, tm TypeMap) {
	for i, param := range fn.Params {
		if i >= len(call.Args) {
			w.error(report.KindArg, call, "incorrect number of arguments for function call `%s`", call.Name)
			return
		}

		argType := w.typeOf(call.Args[i], tm)
		if argType != param.Type {
			w.error(
				report.KindArg,
				call.Args[i],
				"wrong type in parameter for `%s` of function `%s` (got a %s, expected a %s)",
				param.Name,
				call.Name,
				argType,
				param.Type,
			)
		}
	}

	if len(call.Args) > len(fn.Params) {
		w.error(report.KindArg, call, "incorrect number of arguments for function call `%s`", call.Name)
	}
}
