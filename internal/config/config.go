package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-imginline/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Defaults shared by the library and the CLI.
const (
	DefaultSizeLimit int64 = 1024 * 1024 // 1 MiB
	DefaultLineWidth       = 100
)

// Upper bounds for config values.
const (
	MaxLineWidth  = 1 << 16
	MaxWorkers    = 256
	MaxPathLength = 4096
)

// configDirName is the directory under os.UserConfigDir searched for named configs.
const configDirName = "go-imginline"

// Config holds all configuration for an inlining run.
type Config struct {
	Inline InlineConfig `yaml:"inline"`
	Output OutputConfig `yaml:"output"`
}

// InlineConfig defines which images are embedded and how.
type InlineConfig struct {
	SizeLimit int64  `yaml:"sizeLimit"` // bytes; images larger than this stay external
	LineWidth int    `yaml:"lineWidth"` // base64 characters per line, 0 = default
	BaseDir   string `yaml:"baseDir"`   // empty = current directory
	Workers   int    `yaml:"workers"`   // 0 = auto
}

// OutputConfig defines where the rewritten document goes.
type OutputConfig struct {
	Path string `yaml:"path"` // empty = overwrite the input, "-" = stdout
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Inline: InlineConfig{
			SizeLimit: DefaultSizeLimit,
			LineWidth: DefaultLineWidth,
		},
	}
}

// Validate checks value ranges.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Inline.SizeLimit < 0 {
		return fmt.Errorf("%w: inline.sizeLimit must not be negative, got %d", ErrInvalidValue, c.Inline.SizeLimit)
	}
	if c.Inline.LineWidth < 0 || c.Inline.LineWidth > MaxLineWidth {
		return fmt.Errorf("%w: inline.lineWidth must be between 0 and %d, got %d", ErrInvalidValue, MaxLineWidth, c.Inline.LineWidth)
	}
	if c.Inline.Workers < 0 || c.Inline.Workers > MaxWorkers {
		return fmt.Errorf("%w: inline.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Inline.Workers)
	}
	if err := validatePathLength("inline.baseDir", c.Inline.BaseDir); err != nil {
		return err
	}
	return validatePathLength("output.path", c.Output.Path)
}

func validatePathLength(field, value string) error {
	if len(value) > MaxPathLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrInvalidValue, field, len(value), MaxPathLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Searched: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NotFoundError lists every location searched for a config file.
type NotFoundError struct {
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: tried %s", ErrConfigNotFound, strings.Join(e.Searched, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-imginline/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Searched: triedPaths}
}
