package build

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"clite/config"
	"clite/report"
)

func TestMain(m *testing.M) {
	report.SetColor(false)
	os.Exit(m.Run())
}

const wellTyped = `
functions:
  - name: main
    type: void
    locals:
      - {name: x, type: float}
    body:
      - assign: {target: x, source: {int: "1"}}
`

const illTyped = `
globals:
  - {name: flag, type: bool}
functions:
  - name: count
    type: int
    body:
      - if:
          test: {var: flag}
          then:
            - return: {int: "1"}
  - name: main
    type: void
    body:
      - assign: {target: flag, source: {call: {name: count}}}
`

func writeProgram(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func yamlConfig() *config.Config {
	cfg := config.Default()
	cfg.Output = config.OutputYAML
	return cfg
}

// decodeReports decodes every YAML document written by the driver.
func decodeReports(t *testing.T, r io.Reader) []map[string]interface{} {
	t.Helper()

	var docs []map[string]interface{}
	dec := yaml.NewDecoder(r)
	for {
		var doc map[string]interface{}
		if err := dec.Decode(&doc); err != nil {
			require.True(t, errors.Is(err, io.EOF), "unexpected error: %v", err)
			return docs
		}

		docs = append(docs, doc)
	}
}

func TestCheckWellTyped(t *testing.T) {
	path := writeProgram(t, t.TempDir(), "ok.clite.yaml", wellTyped)

	var out, errOut bytes.Buffer
	status := NewDriver(yamlConfig(), &out, &errOut, false).Check(path)

	assert.Equal(t, StatusOK, status)
	assert.Empty(t, errOut.String())

	docs := decodeReports(t, &out)
	require.Len(t, docs, 1)
	assert.Equal(t, path, docs[0]["program"])
	assert.Equal(t, true, docs[0]["well-typed"])
}

func TestCheckIllTyped(t *testing.T) {
	path := writeProgram(t, t.TempDir(), "bad.clite.yaml", illTyped)

	var out, errOut bytes.Buffer
	status := NewDriver(yamlConfig(), &out, &errOut, false).Check(path)
	assert.Equal(t, StatusTypeErrors, status)

	docs := decodeReports(t, &out)
	require.Len(t, docs, 1)
	assert.Equal(t, false, docs[0]["well-typed"])

	diags, ok := docs[0]["diagnostics"].([]interface{})
	require.True(t, ok)
	require.Len(t, diags, 2)

	first := diags[0].(map[string]interface{})
	assert.Equal(t, "Return", first["kind"])
	assert.Equal(t, "count", first["function"])
	assert.Equal(t, "non-void function `count` missing return statement", first["message"])

	second := diags[1].(map[string]interface{})
	assert.Equal(t, "Type", second["kind"])
	assert.Equal(t, "main", second["function"])
	assert.Equal(t, "mixed mode assignment to `flag` (got a int, expected a bool)", second["message"])
	assert.Equal(t, "flag = count()", second["node"])
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()
	okPath := writeProgram(t, dir, "a.clite.yaml", wellTyped)
	badPath := writeProgram(t, dir, "b.clite.yaml", illTyped)
	writeProgram(t, dir, "notes.txt", "not a program")

	var out, errOut bytes.Buffer
	status := NewDriver(yamlConfig(), &out, &errOut, false).Check(dir)
	assert.Equal(t, StatusTypeErrors, status)
	assert.Empty(t, errOut.String())

	docs := decodeReports(t, &out)
	require.Len(t, docs, 2)
	assert.Equal(t, okPath, docs[0]["program"])
	assert.Equal(t, badPath, docs[1]["program"])
	assert.NotContains(t, docs[0], "error")
}

func TestCheckDirectoryWithMalformedProgram(t *testing.T) {
	dir := t.TempDir()
	okPath := writeProgram(t, dir, "a.clite.yaml", wellTyped)
	brokenPath := writeProgram(t, dir, "b.clite.yaml", "functions: [{name: main, type: text, body: []}]\n")

	var out, errOut bytes.Buffer
	status := NewDriver(yamlConfig(), &out, &errOut, false).Check(dir)
	assert.Equal(t, StatusTypeErrors, status)

	docs := decodeReports(t, &out)
	require.Len(t, docs, 2)
	assert.Equal(t, okPath, docs[0]["program"])
	assert.Equal(t, true, docs[0]["well-typed"])

	assert.Equal(t, brokenPath, docs[1]["program"])
	assert.Equal(t, false, docs[1]["well-typed"])
	assert.Equal(t, []interface{}{}, docs[1]["diagnostics"])
	assert.Contains(t, docs[1]["error"], "unknown type: `text`")

	assert.Contains(t, errOut.String(), "Program Error")
	assert.Contains(t, errOut.String(), "unknown type: `text`")
}

func TestCheckMissingPathInYAMLMode(t *testing.T) {
	var out, errOut bytes.Buffer
	status := NewDriver(yamlConfig(), &out, &errOut, false).Check(filepath.Join(t.TempDir(), "missing.clite.yaml"))

	assert.Equal(t, StatusTypeErrors, status)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Path Error")
}

func TestCheckLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing path", func(t *testing.T) {
		var out bytes.Buffer
		cfg := config.Default()
		cfg.LogLevel = "error"

		status := NewDriver(cfg, &out, &out, false).Check(filepath.Join(dir, "missing.clite.yaml"))
		assert.Equal(t, StatusTypeErrors, status)
		assert.Contains(t, out.String(), "Path Error")
	})

	t.Run("empty directory", func(t *testing.T) {
		var out bytes.Buffer
		d := NewDriver(yamlConfig(), &out, &out, false)
		assert.Equal(t, StatusTypeErrors, d.Check(dir))
		assert.Equal(t, 1, d.Reporter().ErrorCount())
	})

	t.Run("malformed document", func(t *testing.T) {
		path := writeProgram(t, dir, "broken.clite.yaml", "functions: [{name: main, type: text, body: []}]\n")

		var out bytes.Buffer
		cfg := config.Default()
		cfg.LogLevel = "error"

		status := NewDriver(cfg, &out, &out, false).Check(path)
		assert.Equal(t, StatusTypeErrors, status)
		assert.Contains(t, out.String(), "Program Error")
		assert.Contains(t, out.String(), "unknown type: `text`")
	})
}

func TestCheckPretty(t *testing.T) {
	path := writeProgram(t, t.TempDir(), "bad.clite.yaml", illTyped)

	var out, errOut bytes.Buffer
	cfg := config.Default()
	cfg.TraceEnvironments = true

	status := NewDriver(cfg, &out, &errOut, false).Check(path)
	assert.Equal(t, StatusTypeErrors, status)
	assert.Empty(t, errOut.String())

	text := out.String()
	assert.Contains(t, text, "Globals")
	assert.Contains(t, text, "Function count")
	assert.Contains(t, text, "Function main")
	assert.Contains(t, text, "Return Error")
	assert.Contains(t, text, "mixed mode assignment to `flag`")
	assert.Contains(t, text, "Oh no!")
}

func TestCheckSilent(t *testing.T) {
	path := writeProgram(t, t.TempDir(), "bad.clite.yaml", illTyped)

	var out bytes.Buffer
	cfg := config.Default()
	cfg.LogLevel = "silent"

	d := NewDriver(cfg, &out, &out, false)
	assert.Equal(t, StatusTypeErrors, d.Check(path))
	assert.Empty(t, out.String())
	assert.Equal(t, 2, d.Reporter().ErrorCount())
}
