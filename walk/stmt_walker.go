package walk

import (
	"clite/ast"
	"clite/report"
	"clite/types"
)

// walkStmt checks a statement.  The returned flag indicates whether the
// statement definitely returns: ie. whether a return statement is executed on
// every path through it.  The flag is threaded through sequences of
// statements: returned is the flag as it stood before the statement.
func (w *Walker) walkStmt(stmt ast.Stmt, tm TypeMap, returned bool) bool {
	switch v := stmt.(type) {
	case *ast.Skip:
		return returned
	case *ast.Assignment:
		if v == nil {
			report.Raise("nil assignment")
		}

		w.walkAssign(v, tm)
		return returned
	case *ast.Block:
		if v == nil {
			report.Raise("nil block")
		}

		for _, member := range v.Members {
			returned = w.walkStmt(member, tm, returned)
		}

		return returned
	case *ast.Conditional:
		if v == nil {
			report.Raise("nil conditional")
		}

		w.walkExpr(v.Test, tm)

		// both branches must return for the conditional to return
		thenReturns := w.walkStmt(v.Then, tm, returned)
		elseReturns := w.walkStmt(v.Else, tm, false)
		return thenReturns && elseReturns
	case *ast.Loop:
		if v == nil {
			report.Raise("nil loop")
		}

		w.walkExpr(v.Test, tm)
		w.walkStmt(v.Body, tm, returned)

		// the body of a loop may never run
		return false
	case *ast.CallStmt:
		if v == nil {
			report.Raise("nil call statement")
		}

		w.walkCallStmt(v, tm)
		return returned
	case *ast.Return:
		if v == nil {
			report.Raise("nil return")
		}

		w.walkReturn(v, tm)
		return true
	case nil:
		report.Raise("nil statement")
	}

	report.Raise("unable to check malformed statement %T", stmt)
	return false
}

// walkAssign checks an assignment.  The only implicit conversions allowed are
// the widenings int to float and char to int.
func (w *Walker) walkAssign(as *ast.Assignment, tm TypeMap) {
	if as.Target == nil {
		report.Raise("assignment with no target")
	}

	targetType, ok := tm.Lookup(as.Target.Name)
	if !ok {
		w.error(report.KindName, as, "undefined target in assignment: `%s`", as.Target.Name)
	}

	w.walkExpr(as.Source, tm)
	srcType := w.typeOf(as.Source, tm)

	if ok && targetType != srcType && !types.Widens(srcType, targetType) {
		w.error(
			report.KindTyping,
			as,
			"mixed mode assignment to `%s` (got a %s, expected a %s)",
			as.Target.Name,
			srcType,
			targetType,
		)
	}
}

// walkCallStmt checks a call used as a statement.  Its result would be
// discarded so the callee must be void.
func (w *Walker) walkCallStmt(cs *ast.CallStmt, tm TypeMap) {
	if cs.Call == nil {
		report.Raise("call statement with no call")
	}

	fn, ok := w.funcs.Lookup(cs.Call.Name)
	if !ok {
		w.error(report.KindName, cs, "undeclared function: `%s`", cs.Call.Name)
		return
	}

	if fn.Type != types.Void {
		w.error(report.KindUsage, cs, "call statement must invoke a void function: `%s`", cs.Call.Name)
	}

	w.walkCall(cs.Call, fn, tm)
}

// walkReturn checks a return statement.  The result must have exactly the
// declared return type of the function being returned from.
func (w *Walker) walkReturn(ret *ast.Return, tm TypeMap) {
	fn, ok := w.funcs.Lookup(ret.Target)
	if !ok {
		report.Raise("return statement bound to unknown function `%s`", ret.Target)
	}

	w.walkExpr(ret.Result, tm)

	t := w.typeOf(ret.Result, tm)
	if t != fn.Type {
		w.error(
			report.KindTyping,
			ret,
			"return expression doesn't match return type of function `%s` (got a %s, expected a %s)",
			fn.Name,
			t,
			fn.Type,
		)
	}
}
