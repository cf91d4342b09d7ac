// Package validation checks file paths given on the command line.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CSVExtension is the extension accepted for CSV import and export files.
const CSVExtension = ".csv"

// InputFile checks that path names an existing regular CSV file.
func InputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("input file is required")
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return checkExtension(path)
}

// OutputFile checks that path can be written as a CSV file: it must carry the
// CSV extension and must not name an existing directory.
func OutputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output file is required")
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("path %s is a directory", path)
	}
	return checkExtension(path)
}

func checkExtension(path string) error {
	if !strings.EqualFold(filepath.Ext(path), CSVExtension) {
		return fmt.Errorf("unsupported file extension for %s: expected %s", path, CSVExtension)
	}
	return nil
}
