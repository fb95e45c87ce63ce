package filex

import (
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	fsys := osfs.New(t.TempDir())

	require.NoError(t, EnsureDir(fsys, filepath.Join("data", "nested")))

	fi, err := fsys.Stat(filepath.Join("data", "nested"))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	// idempotent
	require.NoError(t, EnsureDir(fsys, filepath.Join("data", "nested")))
}

func TestEnsureDir_EmptyIsNoop(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, EnsureDir(fsys, ""))
	require.NoError(t, EnsureDir(fsys, "."))
}

func TestWriteFile_TruncatesPreviousContent(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, EnsureDir(fsys, "data"))

	require.NoError(t, WriteFile(fsys, "data/a.txt", []byte("a much longer first version")))
	require.NoError(t, WriteFile(fsys, "data/a.txt", []byte("short")))

	got, err := ReadFile(fsys, "data/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestWriteFile_ErrorWhenTargetIsDirectory(t *testing.T) {
	fsys := osfs.New(t.TempDir())
	require.NoError(t, EnsureDir(fsys, filepath.Join("data", "taken")))

	err := WriteFile(fsys, filepath.Join("data", "taken"), []byte("x"))
	require.Error(t, err)
}

func TestExistsAndIsNotExist(t *testing.T) {
	fsys := memfs.New()

	assert.False(t, Exists(fsys, "missing.txt"))
	_, err := ReadFile(fsys, "missing.txt")
	require.Error(t, err)
	assert.True(t, IsNotExist(err))

	require.NoError(t, WriteFile(fsys, "present.txt", nil))
	assert.True(t, Exists(fsys, "present.txt"))
}
