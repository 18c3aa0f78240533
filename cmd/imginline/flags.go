package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command-line flag.
type cliFlags struct {
	config    string
	output    string
	baseDir   string
	sizeLimit int64
	lineWidth int
	workers   int
	quiet     bool
	verbose   bool
	help      bool
	version   bool

	// Set when the flag appeared on the command line, so an explicit
	// zero can override config and environment values.
	sizeLimitSet bool
	lineWidthSet bool
	workersSet   bool
	baseDirSet   bool
	outputSet    bool
}

// newFlagSet registers all flags on a fresh FlagSet bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("imginline", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.Int64VarP(&f.sizeLimit, "size-limit", "l", 0, "largest image to inline, in bytes")
	fs.IntVar(&f.lineWidth, "line-width", 0, "base64 characters per payload line")
	fs.StringVar(&f.baseDir, "base-dir", "", "directory relative src values resolve against")
	fs.StringVarP(&f.output, "output", "o", "", "write the result here instead of in place (- = stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "images read concurrently (0 = auto)")

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every image and print a summary")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")

	return fs
}

// parseFlags parses args (without the program name) and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.sizeLimitSet = fs.Changed("size-limit")
	f.lineWidthSet = fs.Changed("line-width")
	f.workersSet = fs.Changed("workers")
	f.baseDirSet = fs.Changed("base-dir")
	f.outputSet = fs.Changed("output")

	return f, fs.Args(), nil
}
