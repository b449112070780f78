package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"
	"github.com/kr/pretty"

	"clite/build"
	"clite/common"
	"clite/config"
	"clite/report"
	"clite/syntax"
)

// Enumeration of exit codes beyond those returned by the driver
const (
	exitUsage = 64
)

// Execute runs the main `clite` application and returns its exit code.
func Execute() int {
	return run(os.Args, os.Stdout, os.Stderr)
}

// newCLI sets up the argument parser and all its extended commands and
// arguments.
func newCLI() *olive.Command {
	cli := olive.NewCLI("clite", "clite is a static type checker for Clite programs", true)

	// the log level has no default value so that an explicit level can be told
	// apart from the one in the configuration file
	cli.AddSelectorArg("loglevel", "ll", "the checker log level", false, []string{"silent", "error", "warn", "verbose"})

	checkCmd := cli.AddSubcommand("check", "type check programs", true)
	checkCmd.AddPrimaryArg("program-path", "the path to a program file or a directory of program files", true)
	checkCmd.AddStringArg("config", "c", "the directory containing the configuration file", false)

	dumpCmd := cli.AddSubcommand("dump", "print the syntax tree of a program", true)
	dumpCmd.AddPrimaryArg("program-path", "the path to the program file", true)

	cli.AddSubcommand("init", "create a default configuration file", false)
	cli.AddSubcommand("version", "print the clite version", false)

	return cli
}

// run runs the application over the command line args writing to stdout and
// stderr.
func run(args []string, stdout, stderr *os.File) int {
	// messages produced before the configuration is loaded use the defaults
	rep := report.NewReporter(stdout, report.LogLevelVerbose, false)
	report.SetColor(colorEnabled(config.ColorAuto, stdout))

	// run the argument parser
	result, err := olive.ParseArgs(newCLI(), args)
	if err != nil {
		rep.ReportStdError("CLI Usage Error", err)
		return exitUsage
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		loglevel, hasLogLevel := result.Arguments["loglevel"].(string)
		return execCheckCommand(rep, subResult, loglevel, hasLogLevel, stdout, stderr)
	case "dump":
		return execDumpCommand(rep, subResult, stdout)
	case "init":
		return execInitCommand(rep)
	case "version":
		rep.ReportInfo("Clite Version", common.CliteVersion)
	}

	return build.StatusOK
}

// execCheckCommand executes the check subcommand and handles all errors
func execCheckCommand(rep *report.Reporter, result *olive.ArgParseResult, loglevel string, hasLogLevel bool, stdout, stderr *os.File) int {
	progRelPath, _ := result.PrimaryArg()

	cfg, err := loadCheckConfig(result, progRelPath, loglevel, hasLogLevel)
	if err != nil {
		rep.ReportStdError("Config Error", err)
		return build.StatusTypeErrors
	}

	report.SetColor(colorEnabled(cfg.Color, stdout))

	d := build.NewDriver(cfg, stdout, stderr, isTerminal(stdout))
	return d.Check(progRelPath)
}

// loadCheckConfig loads the configuration used to check the programs at
// progRelPath.  A log level given on the command line overrides the one in the
// configuration file.
func loadCheckConfig(result *olive.ArgParseResult, progRelPath, loglevel string, hasLogLevel bool) (*config.Config, error) {
	progPath, err := filepath.Abs(progRelPath)
	if err != nil {
		return nil, err
	}

	// the configuration is looked up next to the program unless specified
	cfgDir := filepath.Dir(progPath)
	if finfo, err := os.Stat(progPath); err == nil && finfo.IsDir() {
		cfgDir = progPath
	}

	if cfgArgVal, ok := result.Arguments["config"]; ok {
		cfgDir = cfgArgVal.(string)
	}

	cfg, err := config.Load(cfgDir)
	if err != nil {
		return nil, err
	}

	if hasLogLevel {
		cfg.LogLevel = loglevel
	}

	return cfg, nil
}

// execDumpCommand executes the dump subcommand
func execDumpCommand(rep *report.Reporter, result *olive.ArgParseResult, out io.Writer) int {
	progPath, _ := result.PrimaryArg()

	prog, err := syntax.LoadProgram(progPath)
	if err != nil {
		rep.ReportStdError("Program Error", err)
		return build.StatusTypeErrors
	}

	fmt.Fprintf(out, "globals: %# v\n", pretty.Formatter(prog.Globals))
	for _, fn := range prog.Functions.All() {
		fmt.Fprintf(out, "function %s: %# v\n", fn.Name, pretty.Formatter(fn))
	}

	return build.StatusOK
}

// execInitCommand executes the init subcommand
func execInitCommand(rep *report.Reporter) int {
	workDir, err := os.Getwd()
	if err != nil {
		rep.ReportStdError("Path Error", err)
		return build.StatusTypeErrors
	}

	if err := config.Init(workDir); err != nil {
		rep.ReportStdError("Config Init Error", err)
		return build.StatusTypeErrors
	}

	rep.ReportInfo("Created", filepath.Join(workDir, common.ConfigFileName))
	return build.StatusOK
}
