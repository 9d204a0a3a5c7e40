package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("message X {}"), 0o644))
}

func TestFindFilesByExtension_Sorted(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "z.proto"))
	touch(t, filepath.Join(root, "a.proto"))
	touch(t, filepath.Join(root, "nested", "m.proto"))
	touch(t, filepath.Join(root, "notes.txt"))

	files, err := FindFilesByExtension(root, ".proto")

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.proto"),
		filepath.Join(root, "nested", "m.proto"),
		filepath.Join(root, "z.proto"),
	}, files)
}

func TestFindFilesByExtension_PanicsOnEmptyExtension(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir(), "") })
}

func TestCheckExist(t *testing.T) {
	root := t.TempDir()
	present := filepath.Join(root, "present.proto")
	touch(t, present)
	missing1 := filepath.Join(root, "missing1.proto")
	missing2 := filepath.Join(root, "missing2.proto")

	require.NoError(t, CheckExist([]string{present, root}))

	err := CheckExist([]string{present, missing1, missing2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingInput)
	var missingErr *MissingInputError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, missing1, missingErr.Path)
	assert.Equal(t, "schema file not found: "+missing1, err.Error())
}

func TestExpandInputs(t *testing.T) {
	root := t.TempDir()
	explicit := filepath.Join(root, "explicit.schema")
	touch(t, explicit)
	dir := filepath.Join(root, "protos")
	touch(t, filepath.Join(dir, "b.proto"))
	touch(t, filepath.Join(dir, "a.proto"))
	touch(t, filepath.Join(dir, "a.topics.hcl"))

	files, err := ExpandInputs([]string{explicit, dir}, ".proto")

	require.NoError(t, err)
	assert.Equal(t, []string{
		explicit,
		filepath.Join(dir, "a.proto"),
		filepath.Join(dir, "b.proto"),
	}, files)
}
