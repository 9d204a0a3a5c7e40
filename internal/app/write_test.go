package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_ReplacesExistingFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	target := filepath.Join(dir, "topics.hpp")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))

	// --- Act ---
	path, err := writeFileAtomic(dir, "topics.hpp", []byte("new"))

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, target, path)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(outputFileMode), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	// --- Act ---
	_, err := writeFileAtomic(dir, "topics.hpp", []byte("x"))

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Join(dir, "topics.hpp"))
}
