package walk

import (
	"fmt"

	"clite/ast"
	"clite/report"
)

// Walker is the construct responsible for type checking a single program.  A
// walker is created fresh for every check so that checking the same program
// twice always yields the same diagnostics.
type Walker struct {
	// prog is the program being checked.
	prog *ast.Program

	// funcs is the function table of prog.
	funcs *ast.Functions

	// diags is the list of all errors found so far, in the order found.
	diags []report.Diagnostic

	// currFunc is the name of the function being walked.  It is empty while
	// checking program-level rules.
	currFunc string

	// traceEnv is called with every computed type environment if it is set.
	traceEnv EnvTracer
}

// EnvTracer receives a computed type environment along with a title naming
// its scope: eg. "Globals" or "Function main".
type EnvTracer func(title string, tm TypeMap)

// Option configures a check.
type Option func(w *Walker)

// WithEnvironmentTrace makes the check pass every type environment it builds
// to trace.
func WithEnvironmentTrace(trace EnvTracer) Option {
	return func(w *Walker) {
		w.traceEnv = trace
	}
}

// Result is the outcome of checking a program.
type Result struct {
	// Diagnostics is every type error found, in the order found.
	Diagnostics []report.Diagnostic
}

// OK returns whether the program is well-typed.
func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// Check type checks a whole program and returns all the type errors in it.
// The returned error is only non-nil if the program's AST is malformed, in
// which case checking is aborted.
func Check(prog *ast.Program, opts ...Option) (res *Result, err error) {
	defer report.CatchInternal(&err)

	if prog == nil {
		report.Raise("no program to check")
	}

	w := &Walker{prog: prog, funcs: prog.Functions}
	if w.funcs == nil {
		w.funcs = ast.NewFunctions()
	}

	for _, opt := range opts {
		opt(w)
	}

	w.walkProgram()

	return &Result{Diagnostics: w.diags}, nil
}

// -----------------------------------------------------------------------------

// error records a type error.  The node may be nil.
func (w *Walker) error(kind report.Kind, node ast.Node, msg string, args ...interface{}) {
	w.diags = append(w.diags, report.Diagnostic{
		Kind:     kind,
		Message:  fmt.Sprintf(msg, args...),
		Function: w.currFunc,
		Node:     node,
	})
}

// trace passes a type environment to the tracer if there is one.
func (w *Walker) trace(title string, tm TypeMap) {
	if w.traceEnv != nil {
		w.traceEnv(title, tm)
	}
}
