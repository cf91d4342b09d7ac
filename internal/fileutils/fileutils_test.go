package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAndDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(file, []byte("salary: \"1\"\n"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "absent")))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(file))
	assert.False(t, DirectoryExists(filepath.Join(dir, "absent")))
}

func TestEnsureParentDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "finboard.db")

	require.NoError(t, EnsureParentDirectory(target))
	assert.True(t, DirectoryExists(filepath.Join(dir, "a", "b")))

	// Existing directories are left alone.
	require.NoError(t, EnsureParentDirectory(target))
}

func TestEnsureDirectoryExists_FileInTheWay(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	assert.Error(t, EnsureDirectoryExists(filepath.Join(blocker, "child")))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(file, []byte("ID\n"), 0600))

	data, err := ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "ID\n", string(data))

	_, err = ReadFile(filepath.Join(dir, "absent.csv"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "file does not exist")
}
