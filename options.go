package imginline

import (
	"log/slog"

	"github.com/alnah/go-imginline/internal/config"
)

// Default values applied by NewInliner.
const (
	DefaultSizeLimit = config.DefaultSizeLimit // 1 MiB
	DefaultLineWidth = config.DefaultLineWidth // base64 characters per line
)

// Option configures an Inliner.
type Option func(*Inliner)

// inlinerConfig holds internal configuration for Inliner.
type inlinerConfig struct {
	sizeLimit int64
	lineWidth int
	baseDir   string
	workers   int
}

// WithSizeLimit sets the largest image, in bytes, that is inlined.
// Larger images keep their original src. Negative values make NewInliner fail.
func WithSizeLimit(n int64) Option {
	return func(i *Inliner) {
		i.cfg.sizeLimit = n
	}
}

// WithLineWidth sets how many base64 characters go on each payload line.
func WithLineWidth(n int) Option {
	return func(i *Inliner) {
		i.cfg.lineWidth = n
	}
}

// WithBaseDir resolves relative src values against dir instead of the
// process working directory. Absolute src values are used as is.
func WithBaseDir(dir string) Option {
	return func(i *Inliner) {
		i.cfg.baseDir = dir
	}
}

// WithWorkers bounds how many images are read and encoded concurrently.
// Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(i *Inliner) {
		i.cfg.workers = n
	}
}

// WithFileSystem replaces the host filesystem used to stat and read images.
func WithFileSystem(fsys FileSystem) Option {
	return func(i *Inliner) {
		i.fsys = fsys
	}
}

// WithLogger sets the logger receiving one debug record per <img>.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Inliner) {
		i.logger = logger
	}
}
