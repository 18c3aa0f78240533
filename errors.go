package imginline

import "errors"

// Sentinel errors for library operations.
var (
	// Usage errors: raised before any file is opened.
	ErrEmptyPath        = errors.New("document path cannot be empty")
	ErrNotHTML          = errors.New("document must have .html extension")
	ErrInvalidSizeLimit = errors.New("invalid size limit")
	ErrInvalidLineWidth = errors.New("invalid line width")
	ErrInvalidWorkers   = errors.New("invalid worker count")

	// I/O errors.
	ErrReadDocument  = errors.New("failed to read document")
	ErrWriteDocument = errors.New("failed to write document")
	ErrReadImage     = errors.New("failed to read image")

	// HTML errors.
	ErrParseHTML  = errors.New("failed to parse HTML")
	ErrRenderHTML = errors.New("failed to render HTML")
)
