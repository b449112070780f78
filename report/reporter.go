package report

import (
	"io"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// Reporter is responsible for displaying diagnostics and other messages to the
// user.  It respects the selected log level and is synchronized: its methods
// can be safely called from multiple goroutines.  All messages are written to
// its io.Writer except for phase spinners: pterm always draws those on its
// default output (stdout) so they are only shown by interactive reporters,
// whose writer is that terminal.
type Reporter struct {
	// The mutex used to synchronize display.
	m sync.Mutex

	// out is where all messages are written.
	out io.Writer

	// The selected log level.  This must be one of the enumerated log levels.
	logLevel int

	// interactive indicates whether out is the terminal on stdout: phase
	// spinners are only shown if it is.
	interactive bool

	errorCount int
	isInternal bool

	// The spinner of the phase currently running, if any.
	phaseSpinner   *pterm.SpinnerPrinter
	currentPhase   string
	phaseStartTime time.Time
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and the closing summary
	LogLevelWarn           // errors, warnings and the closing summary
	LogLevelVerbose        // everything: header, phases, environments (DEFAULT)
)

// ParseLogLevel converts a log level name into a log level.  Invalid names
// default to verbose.
func ParseLogLevel(name string) int {
	switch name {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarn
	default:
		return LogLevelVerbose
	}
}

// NewReporter creates a new reporter writing to out.
func NewReporter(out io.Writer, logLevel int, interactive bool) *Reporter {
	return &Reporter{
		out:         out,
		logLevel:    logLevel,
		interactive: interactive,
	}
}

// LogLevel returns the reporter's log level.
func (r *Reporter) LogLevel() int {
	return r.logLevel
}

// ErrorCount returns the number of errors reported so far.
func (r *Reporter) ErrorCount() int {
	r.m.Lock()
	defer r.m.Unlock()

	return r.errorCount
}

// AnyErrors returns whether any errors have been reported.
func (r *Reporter) AnyErrors() bool {
	return r.ErrorCount() > 0
}

// AnyInternalErrors returns whether an internal error has been reported.
func (r *Reporter) AnyInternalErrors() bool {
	r.m.Lock()
	defer r.m.Unlock()

	return r.isInternal
}
