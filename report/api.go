package report

import (
	"fmt"

	"clite/ast"
)

// -----------------------------------------------------------------------------
// NOTE: All report functions will only display if the appropriate log level is
// set.  Most report functions simply do nothing below their log level.  The
// exceptions are internal errors and standard errors which are always
// displayed since they prevent checking altogether.

// ReportDiagnostic reports a single type error found in the program at
// progPath.
func (r *Reporter) ReportDiagnostic(progPath string, d Diagnostic) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++

	if r.logLevel > LogLevelSilent {
		r.endPhase(false)
		r.displayDiagnostic(progPath, d)
	}
}

// ReportDiagnostics reports every diagnostic in order.
func (r *Reporter) ReportDiagnostics(progPath string, diags []Diagnostic) {
	for _, d := range diags {
		r.ReportDiagnostic(progPath, d)
	}
}

// ReportInternalError reports an internal error: a malformed AST or some
// other condition that is never supposed to happen.  These are always
// displayed regardless of log level.
func (r *Reporter) ReportInternalError(err error) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++
	r.isInternal = true

	r.endPhase(false)
	r.displayInternalError(err.Error())
}

// ReportStdError reports a standard Go error such as a failure to load a file.
// The tag describes what failed: eg. "Config Error".  Like internal errors,
// these prevent checking and so are always displayed.
func (r *Reporter) ReportStdError(tag string, err error) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++

	r.endPhase(false)
	r.displayTagged(ErrorStyleBG, ErrorColorFG, tag, err.Error())
}

// ReportInfo reports an informational message.  These are not subject to the
// log level since they are explicitly requested by the user (eg. the version).
func (r *Reporter) ReportInfo(tag, msg string) {
	r.m.Lock()
	defer r.m.Unlock()

	r.displayTagged(InfoStyleBG, InfoColorFG, tag, msg)
}

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" reporting functions that only run if the log
// level is verbose.

// ReportHeader reports the checker version and the program being checked.
func (r *Reporter) ReportHeader(version, progPath string) {
	if r.logLevel == LogLevelVerbose {
		r.m.Lock()
		defer r.m.Unlock()

		r.displayHeader(version, progPath)
	}
}

// ReportEnvironment reports a computed type environment.  The title names the
// scope the environment belongs to.
func (r *Reporter) ReportEnvironment(title string, decls ast.Declarations) {
	if r.logLevel == LogLevelVerbose {
		r.m.Lock()
		defer r.m.Unlock()

		r.endPhase(true)
		r.displayEnvironment(title, decls)
	}
}

// BeginPhase reports the start of a checking phase.
func (r *Reporter) BeginPhase(phase string) {
	if r.logLevel == LogLevelVerbose && r.interactive {
		r.m.Lock()
		defer r.m.Unlock()

		r.beginPhase(phase)
	}
}

// EndPhase reports the end of the current phase.
func (r *Reporter) EndPhase(success bool) {
	r.m.Lock()
	defer r.m.Unlock()

	r.endPhase(success)
}

// ReportFinished reports the concluding summary of a check.
func (r *Reporter) ReportFinished() {
	r.m.Lock()
	defer r.m.Unlock()

	r.endPhase(r.errorCount == 0)

	if r.logLevel > LogLevelSilent {
		r.displayFinished(r.errorCount == 0, r.errorCount)
	}
}

func (r *Reporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}
