// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ForNotHTML returns a hint for documents rejected by the extension check.
func ForNotHTML(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return format("the document path must end with .html")
	}
	return format(fmt.Sprintf("got %q, rename or export the document as .html", ext))
}

// ForMissingDocument returns a hint when the document path does not exist.
func ForMissingDocument() string {
	return format("paths are relative to the current directory")
}

// ForPermission returns a hint for permission errors on the document or an image.
func ForPermission() string {
	return format("check the file is readable and the document is writable")
}

// ForInvalidSizeLimit returns a hint for a malformed size limit.
func ForInvalidSizeLimit() string {
	return format("size limit is a whole number of bytes, e.g. 1048576 for 1 MiB")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-imginline/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/go-imginline") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
