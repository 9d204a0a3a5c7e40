// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrMissingInput is matched by every MissingInputError.
var ErrMissingInput = errors.New("input path not found")

// MissingInputError reports the first input path that does not exist.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("schema file not found: %s", e.Path)
}

func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns their full paths in lexical order.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// CheckExist stats every path in order and returns a MissingInputError for the
// first one that does not exist.
func CheckExist(paths []string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return &MissingInputError{Path: p}
			}
			return fmt.Errorf("error accessing path %s: %w", p, err)
		}
	}
	return nil
}

// ExpandInputs replaces each directory in paths with the files under it that
// end in extension, sorted. Plain files are kept in the given order whatever
// their extension. Paths must already exist (see CheckExist).
func ExpandInputs(paths []string, extension string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		found, err := FindFilesByExtension(p, extension)
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", p, err)
		}
		out = append(out, found...)
	}
	return out, nil
}
