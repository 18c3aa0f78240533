package main

import (
	"errors"
	"os"

	imginline "github.com/alnah/go-imginline"
	"github.com/alnah/go-imginline/internal/config"
)

// Exit codes for the imginline CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Document processed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid arguments, flags, or config
	ExitIO      = 3 // Document or image unreadable, output unwritable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrMissingPath) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrConflictingFlags) ||
		errors.Is(err, imginline.ErrEmptyPath) ||
		errors.Is(err, imginline.ErrNotHTML) ||
		errors.Is(err, imginline.ErrInvalidSizeLimit) ||
		errors.Is(err, imginline.ErrInvalidLineWidth) ||
		errors.Is(err, imginline.ErrInvalidWorkers) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidValue) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, imginline.ErrReadDocument) ||
		errors.Is(err, imginline.ErrReadImage) ||
		errors.Is(err, imginline.ErrWriteDocument) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
