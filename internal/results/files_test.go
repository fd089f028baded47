// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b_results.txt", "a_results.json", "notes.md", "catalog.db"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.txt"), 0o755))

	files, err := ListFiles(dir)
	require.NoError(t, err)

	// Only result files, sorted by name; directories and the catalog
	// database are excluded.
	assert.Equal(t, []string{"a_results.json", "b_results.txt"}, files)
}

func TestListFilesMissingDir(t *testing.T) {
	files, err := ListFiles(filepath.Join(t.TempDir(), "nonexistent"))
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestListFilesEmptyDir(t *testing.T) {
	files, err := ListFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}
