package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-imginline/internal/config"
)

const envPrefix = "IMGINLINE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
// Pointer fields stay nil when the variable is unset.
type envConfig struct {
	ConfigPath string // IMGINLINE_CONFIG: config file name or path
	BaseDir    string // IMGINLINE_BASE_DIR: directory for relative src values
	SizeLimit  *int64 // IMGINLINE_SIZE_LIMIT: bytes
	LineWidth  *int   // IMGINLINE_LINE_WIDTH: payload line width
	Workers    *int   // IMGINLINE_WORKERS: concurrent image reads
}

// knownEnvVars lists valid IMGINLINE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"IMGINLINE_CONFIG":     true,
	"IMGINLINE_BASE_DIR":   true,
	"IMGINLINE_SIZE_LIMIT": true,
	"IMGINLINE_LINE_WIDTH": true,
	"IMGINLINE_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Values that are not non-negative integers are reported on w and ignored.
func loadEnvConfig(env *Environment, w io.Writer) *envConfig {
	cfg := &envConfig{
		ConfigPath: env.Getenv("IMGINLINE_CONFIG"),
		BaseDir:    env.Getenv("IMGINLINE_BASE_DIR"),
	}

	if v := env.Getenv("IMGINLINE_SIZE_LIMIT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			cfg.SizeLimit = &n
		} else {
			fmt.Fprintf(w, "warning: ignoring IMGINLINE_SIZE_LIMIT=%q (want bytes >= 0)\n", v)
		}
	}

	if v := env.Getenv("IMGINLINE_LINE_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.LineWidth = &n
		} else {
			fmt.Fprintf(w, "warning: ignoring IMGINLINE_LINE_WIDTH=%q (want an integer >= 0)\n", v)
		}
	}

	if v := env.Getenv("IMGINLINE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Workers = &n
		} else {
			fmt.Fprintf(w, "warning: ignoring IMGINLINE_WORKERS=%q (want an integer >= 0)\n", v)
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized IMGINLINE_* variables.
// Helps catch typos like IMGINLINE_SIZELIMIT instead of IMGINLINE_SIZE_LIMIT.
func warnUnknownEnvVars(env *Environment, w io.Writer) {
	for _, kv := range env.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with environment values.
// CLI flags are applied afterwards by mergeFlags, giving
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.BaseDir != "" {
		cfg.Inline.BaseDir = env.BaseDir
	}
	if env.SizeLimit != nil {
		cfg.Inline.SizeLimit = *env.SizeLimit
	}
	if env.LineWidth != nil {
		cfg.Inline.LineWidth = *env.LineWidth
	}
	if env.Workers != nil {
		cfg.Inline.Workers = *env.Workers
	}
}
