package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_PositionalManifestPath(t *testing.T) {
	cfg, shouldExit, err := Parse([]string{"manifests"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "manifests", cfg.ManifestPath)
	assert.Equal(t, "dist", cfg.OutputDir)
	assert.Equal(t, 2*time.Second, cfg.WatchInterval)
	assert.Equal(t, 0, cfg.ServePort)
}

func TestParse_Flags(t *testing.T) {
	args := []string{
		"-manifest", "exts",
		"-out", "build",
		"-serve", "8080",
		"-watch-interval", "500ms",
		"-log-format", "text",
		"-log-level", "debug",
	}

	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "exts", cfg.ManifestPath)
	assert.Equal(t, "build", cfg.OutputDir)
	assert.Equal(t, 8080, cfg.ServePort)
	assert.Equal(t, 500*time.Millisecond, cfg.WatchInterval)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_InvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"bad log format", []string{"-log-format", "xml", "manifests"}},
		{"bad log level", []string{"-log-level", "loud", "manifests"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
