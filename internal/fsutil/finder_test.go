package fsutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "c.hcl"), []byte("x"), 0o600))

	files, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestLatestModTime(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.hcl")
	recent := filepath.Join(dir, "recent.hcl")
	require.NoError(t, os.WriteFile(old, []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(recent, []byte("x"), 0o600))

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))
	require.NoError(t, os.Chtimes(recent, future, future))

	latest, err := LatestModTime(dir, ".hcl")
	require.NoError(t, err)
	assert.WithinDuration(t, future, latest, time.Second)
}

func TestLatestModTime_Empty(t *testing.T) {
	latest, err := LatestModTime(t.TempDir(), ".hcl")
	require.NoError(t, err)
	assert.True(t, latest.IsZero())
}
