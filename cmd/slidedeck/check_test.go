package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"slidedeck/internal/deck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		deckPath = ""
		cfgFile = "slidedeck.yml"
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheck_SampleDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yml")
	require.NoError(t, os.WriteFile(path, deck.SampleYAML(), 0o644))

	out, err := runCommand(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 5 slides")
}

func TestCheck_ReportsFindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yml")
	data := []byte(`title: Broken
slides:
  - type: list
    title: Fine
    items: [a]
  - type: chart
    title: Unknown
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	out, err := runCommand(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, out, "slide 2: unrecognized slide type")
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := runCommand(t, "check", filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "slidedeck dev\n", out)
}
