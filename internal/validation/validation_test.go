package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/finboard/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFile(t *testing.T) {
	tmpDir := t.TempDir()

	csvFile := filepath.Join(tmpDir, "in.csv")
	require.NoError(t, os.WriteFile(csvFile, []byte("ID\n"), 0600))
	upperFile := filepath.Join(tmpDir, "IN.CSV")
	require.NoError(t, os.WriteFile(upperFile, []byte("ID\n"), 0600))
	txtFile := filepath.Join(tmpDir, "in.txt")
	require.NoError(t, os.WriteFile(txtFile, []byte("ID\n"), 0600))
	dirWithExt := filepath.Join(tmpDir, "folder.csv")
	require.NoError(t, os.Mkdir(dirWithExt, 0750))

	tests := []struct {
		name        string
		path        string
		errContains string
	}{
		{name: "CSV file", path: csvFile},
		{name: "upper-case extension", path: upperFile},
		{name: "empty", path: " ", errContains: "input file is required"},
		{name: "missing", path: filepath.Join(tmpDir, "absent.csv"), errContains: "path does not exist"},
		{name: "directory", path: dirWithExt, errContains: "not a regular file"},
		{name: "wrong extension", path: txtFile, errContains: "unsupported file extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.InputFile(tt.path)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestOutputFile(t *testing.T) {
	tmpDir := t.TempDir()
	dirWithExt := filepath.Join(tmpDir, "folder.csv")
	require.NoError(t, os.Mkdir(dirWithExt, 0750))

	tests := []struct {
		name        string
		path        string
		errContains string
	}{
		{name: "new file in new directory", path: filepath.Join(tmpDir, "sub", "out.csv")},
		{name: "empty", path: "", errContains: "output file is required"},
		{name: "directory", path: dirWithExt, errContains: "is a directory"},
		{name: "wrong extension", path: filepath.Join(tmpDir, "out.json"), errContains: "unsupported file extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.OutputFile(tt.path)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
