// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrPathEmpty  = errors.New("path cannot be empty")
	ErrNotRegular = errors.New("path is not a regular file")
)

// defaultFilePermissions applies when the target does not exist yet.
const defaultFilePermissions = 0o644 // rw-r--r--

// HasExtension reports whether path ends with one of exts, ignoring case.
// Extensions are given with their leading dot (".html").
func HasExtension(path string, exts ...string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	for _, want := range exts {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "inline" -> false (name)
//   - "./inline.yaml" -> true (relative path)
//   - "/etc/imginline/site.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a remote URL.
// Protocol-relative references ("//cdn.example.com/a.png") count as URLs.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "//")
}

// WriteFile replaces the content of path, keeping the permission bits of an
// existing regular file. New files are created with 0644.
func WriteFile(path string, data []byte) error {
	if path == "" {
		return ErrPathEmpty
	}

	perm := fs.FileMode(defaultFilePermissions)
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.Mode().IsRegular():
		return fmt.Errorf("%w: %s", ErrNotRegular, path)
	case err == nil:
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	return os.WriteFile(path, data, perm) // #nosec G306 -- keeps the caller's existing mode
}
