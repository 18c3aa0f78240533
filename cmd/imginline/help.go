package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: imginline [flags] <document.html> [size-limit-bytes]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Embed local images referenced by <img src> as base64 data URIs.")
	fmt.Fprintln(w, "The document is overwritten in place unless --output is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  document.html       HTML document to rewrite (must end with .html)")
	fmt.Fprintln(w, "  size-limit-bytes    Largest image to inline (default 1048576)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inlining:")
	fmt.Fprintln(w, "  -l, --size-limit <n>      Same as size-limit-bytes (the argument wins)")
	fmt.Fprintln(w, "      --line-width <n>      Base64 characters per payload line (default 100)")
	fmt.Fprintln(w, "      --base-dir <dir>      Resolve relative src values against dir")
	fmt.Fprintln(w, "  -w, --workers <n>         Images read concurrently (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Write here instead of in place (- = stdout)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every image and print a summary")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  IMGINLINE_CONFIG, IMGINLINE_SIZE_LIMIT, IMGINLINE_LINE_WIDTH,")
	fmt.Fprintln(w, "  IMGINLINE_BASE_DIR, IMGINLINE_WORKERS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  unexpected error")
	fmt.Fprintln(w, "  2  usage or config error")
	fmt.Fprintln(w, "  3  document or image could not be read or written")
}

// printVersion prints the version line.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "imginline %s\n", Version)
}
