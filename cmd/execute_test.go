package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ComedicChimera/olive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clite/build"
	"clite/common"
)

const noMainProgram = `
functions:
  - name: helper
    type: void
    body:
      - skip: {}
`

// setupProject writes a program and a configuration file selecting the error
// log level into a new directory.  It returns the program's path.
func setupProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	cfg := "[checker]\nlog-level = \"error\"\ncolor = \"never\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, common.ConfigFileName), []byte(cfg), 0644))

	path := filepath.Join(dir, "prog.clite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(noMainProgram), 0644))
	return path
}

// runCLI runs the application and returns its exit code along with everything
// written to stdout and stderr.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	dir := t.TempDir()
	stdout, err := os.Create(filepath.Join(dir, "stdout"))
	require.NoError(t, err)
	defer stdout.Close()

	stderr, err := os.Create(filepath.Join(dir, "stderr"))
	require.NoError(t, err)
	defer stderr.Close()

	status := run(append([]string{"clite"}, args...), stdout, stderr)

	outBytes, err := os.ReadFile(stdout.Name())
	require.NoError(t, err)
	errBytes, err := os.ReadFile(stderr.Name())
	require.NoError(t, err)

	return status, string(outBytes), string(errBytes)
}

func TestCheckUsesConfiguredLogLevel(t *testing.T) {
	path := setupProject(t)

	status, out, _ := runCLI(t, "check", path)
	assert.Equal(t, build.StatusTypeErrors, status)
	assert.NotContains(t, out, "v"+common.CliteVersion)
	assert.Contains(t, out, "main function not found")
	assert.Contains(t, out, "Oh no!")
}

func TestCheckLogLevelArgumentOverridesConfig(t *testing.T) {
	path := setupProject(t)

	status, out, _ := runCLI(t, "check", "-ll=verbose", path)
	assert.Equal(t, build.StatusTypeErrors, status)
	assert.Contains(t, out, "clite v"+common.CliteVersion+" -- program: "+path)
	assert.Contains(t, out, "main function not found")

	status, out, _ = runCLI(t, "check", "--loglevel=silent", path)
	assert.Equal(t, build.StatusTypeErrors, status)
	assert.Empty(t, out)
}

func TestLoadCheckConfig(t *testing.T) {
	path := setupProject(t)
	otherDir := t.TempDir()

	parse := func(args ...string) (*olive.ArgParseResult, string, bool) {
		result, err := olive.ParseArgs(newCLI(), append([]string{"clite"}, args...))
		require.NoError(t, err)

		_, subResult, ok := result.Subcommand()
		require.True(t, ok)

		loglevel, hasLogLevel := result.Arguments["loglevel"].(string)
		return subResult, loglevel, hasLogLevel
	}

	subResult, loglevel, hasLogLevel := parse("check", path)
	assert.False(t, hasLogLevel)
	cfg, err := loadCheckConfig(subResult, path, loglevel, hasLogLevel)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)

	subResult, loglevel, hasLogLevel = parse("check", "-ll=verbose", path)
	assert.True(t, hasLogLevel)
	cfg, err = loadCheckConfig(subResult, path, loglevel, hasLogLevel)
	require.NoError(t, err)
	assert.Equal(t, "verbose", cfg.LogLevel)

	// a configuration directory without a file yields the defaults
	subResult, loglevel, hasLogLevel = parse("check", "-c="+otherDir, path)
	cfg, err = loadCheckConfig(subResult, path, loglevel, hasLogLevel)
	require.NoError(t, err)
	assert.Equal(t, "verbose", cfg.LogLevel)

	// the directory of programs holds the configuration
	subResult, loglevel, hasLogLevel = parse("check", filepath.Dir(path))
	cfg, err = loadCheckConfig(subResult, filepath.Dir(path), loglevel, hasLogLevel)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestOtherCommands(t *testing.T) {
	status, _, _ := runCLI(t, "bogus")
	assert.Equal(t, exitUsage, status)

	status, out, _ := runCLI(t, "version")
	assert.Equal(t, build.StatusOK, status)
	assert.Contains(t, out, common.CliteVersion)

	status, out, _ = runCLI(t, "dump", setupProject(t))
	assert.Equal(t, build.StatusOK, status)
	assert.Contains(t, out, "function helper:")
}
