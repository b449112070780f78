package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"clite/ast"
	"clite/common"
	"clite/config"
	"clite/report"
	"clite/syntax"
	"clite/walk"
)

// Driver is the data structure responsible for running the checker over one
// or more programs and reporting the results.
type Driver struct {
	cfg *config.Config
	rep *report.Reporter

	// out is where machine-readable output is written.
	out io.Writer
}

// Enumeration of exit statuses
const (
	StatusOK         = iota // every program is well-typed
	StatusTypeErrors        // type errors or load errors were found
	StatusInternal          // a malformed AST aborted checking
)

// NewDriver creates a new driver.  Human-readable messages are written to out
// unless the configured output format is YAML in which case out only receives
// the YAML documents and errors that prevent checking are written to errOut.
// The interactive flag indicates whether out is a terminal.
func NewDriver(cfg *config.Config, out, errOut io.Writer, interactive bool) *Driver {
	d := &Driver{cfg: cfg, out: out}

	if cfg.Output == config.OutputYAML {
		d.rep = report.NewReporter(errOut, report.LogLevelSilent, false)
	} else {
		d.rep = report.NewReporter(out, report.ParseLogLevel(cfg.LogLevel), interactive)
	}

	return d
}

// Reporter returns the driver's reporter.
func (d *Driver) Reporter() *report.Reporter {
	return d.rep
}

// envTrace is a type environment captured while checking.
type envTrace struct {
	title string
	decls ast.Declarations
}

// checkResult is the outcome of loading and checking one program.
type checkResult struct {
	progPath string

	loadErr  error
	checkErr error

	res    *walk.Result
	traces []envTrace
}

// Check checks the program at path.  If path is a directory, every program
// file directly inside it is checked.  It returns the exit status.
func (d *Driver) Check(path string) int {
	progPaths, err := collectPrograms(path)
	if err != nil {
		d.rep.ReportStdError("Path Error", err)
		d.rep.ReportFinished()
		return StatusTypeErrors
	}

	d.rep.ReportHeader(common.CliteVersion, path)

	// each program is checked concurrently: checks share no state.  Results
	// are reported afterwards in path order so output is deterministic.
	d.rep.BeginPhase("Checking")

	results := make([]*checkResult, len(progPaths))
	wg := &sync.WaitGroup{}
	for i, progPath := range progPaths {
		wg.Add(1)
		go func(i int, progPath string) {
			defer wg.Done()
			results[i] = d.checkProgram(progPath)
		}(i, progPath)
	}

	wg.Wait()

	var enc *report.DiagnosticEncoder
	if d.cfg.Output == config.OutputYAML {
		enc = report.NewDiagnosticEncoder(d.out)
	}

	for _, cr := range results {
		d.reportResult(cr, enc)
	}

	if enc != nil {
		if err := enc.Close(); err != nil {
			d.rep.ReportStdError("Output Error", err)
		}
	}

	d.rep.ReportFinished()

	if d.rep.AnyInternalErrors() {
		return StatusInternal
	} else if d.rep.AnyErrors() {
		return StatusTypeErrors
	}

	return StatusOK
}

// checkProgram loads and checks a single program.
func (d *Driver) checkProgram(progPath string) *checkResult {
	cr := &checkResult{progPath: progPath}

	prog, err := syntax.LoadProgram(progPath)
	if err != nil {
		cr.loadErr = err
		return cr
	}

	var opts []walk.Option
	if d.cfg.TraceEnvironments {
		opts = append(opts, walk.WithEnvironmentTrace(func(title string, tm walk.TypeMap) {
			cr.traces = append(cr.traces, envTrace{title: title, decls: tm.Declarations()})
		}))
	}

	cr.res, cr.checkErr = walk.Check(prog, opts...)
	return cr
}

// reportResult reports the outcome of checking one program.  If enc is not
// nil, the diagnostics are also encoded with it.
func (d *Driver) reportResult(cr *checkResult, enc *report.DiagnosticEncoder) {
	if cr.loadErr != nil {
		d.rep.ReportStdError("Program Error", cr.loadErr)
		d.encodeFailure(enc, cr.progPath, cr.loadErr)
		return
	}

	if cr.checkErr != nil {
		d.rep.ReportInternalError(fmt.Errorf("%s: %w", cr.progPath, cr.checkErr))
		d.encodeFailure(enc, cr.progPath, cr.checkErr)
		return
	}

	for _, trace := range cr.traces {
		d.rep.ReportEnvironment(trace.title, trace.decls)
	}

	d.rep.ReportDiagnostics(cr.progPath, cr.res.Diagnostics)

	if enc != nil {
		if err := enc.Encode(cr.progPath, cr.res.Diagnostics); err != nil {
			d.rep.ReportStdError("Output Error", err)
		}
	}
}

// encodeFailure encodes a program that could not be checked if enc is not nil.
func (d *Driver) encodeFailure(enc *report.DiagnosticEncoder, progPath string, err error) {
	if enc == nil {
		return
	}

	if err := enc.EncodeFailure(progPath, err); err != nil {
		d.rep.ReportStdError("Output Error", err)
	}
}

// -----------------------------------------------------------------------------

// collectPrograms returns the program files named by path.  A file path names
// itself; a directory names every program file directly inside it.
func collectPrograms(path string) ([]string, error) {
	finfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !finfo.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var progPaths []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), common.ProgramFileExtension) {
			progPaths = append(progPaths, filepath.Join(path, entry.Name()))
		}
	}

	if len(progPaths) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", common.ProgramFileExtension, path)
	}

	sort.Strings(progPaths)
	return progPaths, nil
}
