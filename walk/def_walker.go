package walk

import (
	"clite/ast"
	"clite/report"
	"clite/types"
)

// mainFuncName is the name of the function every program must define.
const mainFuncName = "main"

// walkProgram checks the program-level rules and then every function in
// definition order.
func (w *Walker) walkProgram() {
	w.trace("Globals", Typing(w.prog.Globals))

	for _, fn := range w.funcs.All() {
		if fn == nil {
			report.Raise("nil function")
		}
	}

	if _, ok := w.funcs.Lookup(mainFuncName); !ok {
		w.error(report.KindDef, nil, "main function not found")
	}

	// globals and functions share a single namespace
	w.checkDeclarations(concat(w.prog.Globals, w.funcs.Names()))

	for _, fn := range w.funcs.All() {
		w.walkFunc(fn)
	}
}

// walkFunc checks a function definition.
func (w *Walker) walkFunc(fn *ast.Function) {
	if fn == nil {
		report.Raise("nil function")
	}

	w.currFunc = fn.Name
	defer func() {
		w.currFunc = ""
	}()

	tm := Typing(w.prog.Globals, fn.Params, fn.Locals)

	// params and locals share the function's scope; either may shadow a global
	w.checkDeclarations(concat(fn.Params, fn.Locals))

	w.trace("Function "+fn.Name, tm)

	if fn.Body == nil {
		report.Raise("function `%s` has no body", fn.Name)
	}

	returned := false
	for _, stmt := range fn.Body.Members {
		if _, ok := stmt.(*ast.Return); ok {
			if returned {
				w.error(report.KindReturn, stmt, "function `%s` has multiple return statements", fn.Name)
			}
		} else if returned {
			w.error(report.KindReturn, stmt, "return must be last statement in function block (in function `%s`)", fn.Name)
		}

		returned = w.walkStmt(stmt, tm, returned)
	}

	switch {
	case fn.Name == mainFuncName:
		// main is exempt from the return rules
	case fn.Type == types.Void:
		if returned {
			w.error(report.KindReturn, nil, "void function `%s` has return statement when it shouldn't", fn.Name)
		}
	default:
		if !returned {
			w.error(report.KindReturn, nil, "non-void function `%s` missing return statement", fn.Name)
		}
	}
}
