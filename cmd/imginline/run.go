package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	imginline "github.com/alnah/go-imginline"
	"github.com/alnah/go-imginline/internal/config"
	"github.com/alnah/go-imginline/internal/fileutil"
	"github.com/alnah/go-imginline/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingPath      = errors.New("missing document path")
	ErrTooManyArgs      = errors.New("too many arguments")
	ErrInvalidArgs      = errors.New("invalid arguments")
	ErrConflictingFlags = errors.New("conflicting flags")
	ErrWriteOutput      = errors.New("failed to write output")
)

// stdoutPath is the --output value that selects standard output.
const stdoutPath = "-"

// run executes one invocation. args excludes the program name.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		printVersion(env.Stdout)
		return nil
	}
	if flags.quiet && flags.verbose {
		return fmt.Errorf("%w: --quiet and --verbose cannot be combined", ErrConflictingFlags)
	}

	warnings := env.Stderr
	if flags.quiet {
		warnings = io.Discard
	}
	warnUnknownEnvVars(env, warnings)

	docPath, limitArg, err := splitPositional(positional)
	if err != nil {
		return err
	}
	if err := imginline.ValidateDocumentPath(docPath); err != nil {
		if errors.Is(err, imginline.ErrNotHTML) {
			return fmt.Errorf("%w%s", err, hints.ForNotHTML(docPath))
		}
		return err
	}

	cfg, err := resolveConfig(flags, limitArg, loadEnvConfig(env, warnings))
	if err != nil {
		return err
	}

	inl, err := imginline.NewInliner(inlinerOptions(cfg, newLogger(env.Stderr, flags.verbose))...)
	if err != nil {
		return err
	}

	res, err := process(ctx, inl, docPath, cfg.Output.Path, env.Stdout)
	if err != nil {
		return withIOHint(err)
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "%s: %d inlined, %d skipped\n",
			destination(docPath, cfg.Output.Path), res.Inlined(), res.Skipped())
	}
	return nil
}

// splitPositional returns the document path and the optional size limit argument.
func splitPositional(args []string) (docPath, limitArg string, err error) {
	switch len(args) {
	case 0:
		return "", "", fmt.Errorf("%w\n%s", ErrMissingPath, usageLine)
	case 1:
		return args[0], "", nil
	case 2:
		return args[0], args[1], nil
	default:
		return "", "", fmt.Errorf("%w: got %d, want at most 2\n%s", ErrTooManyArgs, len(args), usageLine)
	}
}

const usageLine = "usage: imginline [flags] <document.html> [size-limit-bytes]"

// parseSizeLimit parses the positional size limit: a non-negative integer.
func parseSizeLimit(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q%s", imginline.ErrInvalidSizeLimit, s, hints.ForInvalidSizeLimit())
	}
	return n, nil
}

// resolveConfig layers defaults, config file, environment, flags and the
// positional size limit, in increasing priority.
func resolveConfig(flags *cliFlags, limitArg string, env *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	name := flags.config
	if name == "" {
		name = env.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			var notFound *config.NotFoundError
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(notFound.Searched))
			}
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if limitArg != "" {
		n, err := parseSizeLimit(limitArg)
		if err != nil {
			return nil, err
		}
		cfg.Inline.SizeLimit = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over cfg.
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.sizeLimitSet {
		cfg.Inline.SizeLimit = f.sizeLimit
	}
	if f.lineWidthSet {
		cfg.Inline.LineWidth = f.lineWidth
	}
	if f.baseDirSet {
		cfg.Inline.BaseDir = f.baseDir
	}
	if f.workersSet {
		cfg.Inline.Workers = f.workers
	}
	if f.outputSet {
		cfg.Output.Path = f.output
	}
}

// inlinerOptions converts cfg to library options. Zero values keep the
// library defaults.
func inlinerOptions(cfg *config.Config, logger *slog.Logger) []imginline.Option {
	opts := []imginline.Option{
		imginline.WithSizeLimit(cfg.Inline.SizeLimit),
		imginline.WithLogger(logger),
	}
	if cfg.Inline.LineWidth > 0 {
		opts = append(opts, imginline.WithLineWidth(cfg.Inline.LineWidth))
	}
	if cfg.Inline.BaseDir != "" {
		opts = append(opts, imginline.WithBaseDir(cfg.Inline.BaseDir))
	}
	if cfg.Inline.Workers > 0 {
		opts = append(opts, imginline.WithWorkers(cfg.Inline.Workers))
	}
	return opts
}

// newLogger returns a debug-level text logger on w when verbose, otherwise
// a logger that discards everything.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// process inlines docPath and writes the result: in place when output is
// empty, to stdout for "-", otherwise to the output path.
func process(ctx context.Context, inl *imginline.Inliner, docPath, output string, stdout io.Writer) (*imginline.Result, error) {
	if output == "" {
		return inl.Rewrite(ctx, docPath)
	}

	res, err := inl.InlineFile(ctx, docPath)
	if err != nil {
		return nil, err
	}

	if output == stdoutPath {
		if _, err := stdout.Write(res.HTML); err != nil {
			return nil, fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
		}
		return res, nil
	}

	if err := fileutil.WriteFile(output, res.HTML); err != nil {
		return nil, fmt.Errorf("%w: %s: %w%s", ErrWriteOutput, output, err, hints.ForOutputDirectory())
	}
	return res, nil
}

// destination names where the result went, for the verbose summary.
func destination(docPath, output string) string {
	switch output {
	case "":
		return docPath
	case stdoutPath:
		return "stdout"
	default:
		return output
	}
}

// withIOHint appends a hint for permission and missing-document failures.
func withIOHint(err error) error {
	switch {
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w%s", err, hints.ForPermission())
	case errors.Is(err, imginline.ErrReadDocument) && errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w%s", err, hints.ForMissingDocument())
	default:
		return err
	}
}
