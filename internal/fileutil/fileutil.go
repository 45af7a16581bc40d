// Package fileutil provides small helpers for local files and result CSVs.
package fileutil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toolbelterrors "toolbelt.dev/toolbelt/internal/errors"
)

// EnsureDir creates a directory (and parents) if it does not already exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// IsBlank reports whether a filename is empty after trimming whitespace.
func IsBlank(filename string) bool {
	return strings.TrimSpace(filename) == ""
}

// FileExists checks that a file exists inside a directory and returns its path.
// It returns ErrBlankFilename for an empty name and os.ErrNotExist when either
// the directory or the file is missing.
func FileExists(dir, filename string) (string, error) {
	if IsBlank(filename) {
		return "", toolbelterrors.ErrBlankFilename
	}

	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file %s: %w", path, err)
	}
	return path, nil
}

// VisibleFiles lists the non-hidden entries of a directory, sorted by name.
func VisibleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// WriteCSV writes a header and rows to the given path, creating parent
// directories as needed.
func WriteCSV(path string, header []string, rows [][]string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if len(header) > 0 {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
