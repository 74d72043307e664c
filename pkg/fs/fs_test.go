//go:build unit

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")

	exists, err := fs.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	exists, err = fs.Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestIsDir(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	isDir, err := fs.IsDir(dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = fs.IsDir(path)
	require.NoError(t, err)
	assert.False(t, isDir)

	_, err = fs.IsDir(filepath.Join(dir, "missing"))
	assert.True(t, fs.IsNotExist(err))
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), "nested", "deep", "file.txt")

	require.NoError(t, fs.WriteFile(path, []byte("content"), 0644))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)
}

func TestWriteFileAtomic(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	path := filepath.Join(dir, "state.yaml")

	require.NoError(t, fs.WriteFileAtomic(path, []byte("first"), 0644))
	require.NoError(t, fs.WriteFileAtomic(path, []byte("second"), 0644))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	// No temporary files left behind.
	entries, err := fs.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_PreservesPermissions(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), "script.sh")

	require.NoError(t, fs.WriteFileAtomic(path, []byte("#!/bin/sh\n"), 0755))

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestRemoveAll(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, fs.MkdirAll(nested, 0755))
	require.NoError(t, fs.WriteFile(filepath.Join(nested, "file.txt"), []byte("x"), 0644))

	require.NoError(t, fs.RemoveAll(filepath.Join(dir, "a")))

	exists, err := fs.Exists(filepath.Join(dir, "a"))
	require.NoError(t, err)
	assert.False(t, exists)
}
