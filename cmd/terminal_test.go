package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clite/config"
)

func TestColorEnabled(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, isTerminal(f))

	assert.True(t, colorEnabled(config.ColorAlways, f))
	assert.False(t, colorEnabled(config.ColorNever, f))

	// a plain file is never coloured automatically
	t.Setenv("TERM", "xterm")
	assert.False(t, colorEnabled(config.ColorAuto, f))

	t.Setenv("NO_COLOR", "1")
	assert.True(t, colorEnabled(config.ColorAlways, f))
	assert.False(t, colorEnabled(config.ColorAuto, os.Stdout))
}
