package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, nil)

	require.NoError(t, err, "run() with no arguments should print usage and exit cleanly")
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_InvalidFlag(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, []string{"-log-level", "loud", "manifests"})
	require.Error(t, err)
}

func TestRun_GeneratesModule(t *testing.T) {
	t.Parallel()

	manifestDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "dist")
	manifest := `
extension "demo" {
  name  = "Demo Extension"
  color = "#ffcc00"

  block "say_hello" {
    type    = "command"
    text    = "say hello"
    handler = "say_hello"
  }

  block "sum" {
    type    = "reporter"
    text    = "add [A] and [B]"
    handler = "add"
  }
}
`
	filePath := filepath.Join(manifestDir, "demo.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(manifest), 0o600))

	out := &bytes.Buffer{}
	err := run(out, []string{"-out", outDir, "-log-level", "error", manifestDir})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "demo.js"))
	require.NoError(t, err)
	src := string(data)
	assert.Contains(t, src, `opcode: "sum"`)
	assert.Contains(t, src, "Scratch.ArgumentType.NUMBER")
}

func TestRun_BrokenManifest(t *testing.T) {
	t.Parallel()

	manifestDir := t.TempDir()
	invalidHCL := `
		extension "demo" {
			block "x" {
		// Missing closing braces here
	`
	filePath := filepath.Join(manifestDir, "demo.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600))

	err := run(&bytes.Buffer{}, []string{"-log-level", "error", manifestDir})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parse") || strings.Contains(err.Error(), "decode"),
		"the error should surface the underlying manifest problem, got: %v", err)
}
