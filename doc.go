// Package imginline embeds local images into HTML documents as base64 data URIs.
//
// # Quick Start
//
// Create an inliner and rewrite a document in place:
//
//	inl, err := imginline.NewInliner()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := inl.Rewrite(ctx, "report.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d inlined, %d skipped\n", res.Inlined(), res.Skipped())
//
// Use InlineFile to get the rewritten HTML without modifying the file, or
// InlineHTML to transform content that is already in memory.
//
// # Which Images Are Inlined
//
// Every <img> element is visited in document order. Its src is replaced when
// it names an existing regular file whose size does not exceed the size limit
// (1 MiB by default, see WithSizeLimit). Everything else is left untouched:
//
//   - no src attribute
//   - src already a data: URI (running twice changes nothing)
//   - http://, https:// and protocol-relative URLs
//   - paths with nothing behind them, directories, special files
//   - files larger than the limit
//
// Relative paths resolve against the process working directory unless
// WithBaseDir is given. The outcome for each element is reported in
// Result.Images.
//
// # Output Format
//
// A replaced src has the form
//
//	data:image/<subtype>;charset=utf-8;base64,<payload>
//
// where <subtype> is the text after the final "." of the file name (no content
// sniffing) and <payload> is standard base64 with a newline every 100
// characters (see WithLineWidth). Strip the newlines before decoding.
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go and can be checked with errors.Is:
//
//	res, err := inl.Rewrite(ctx, path)
//	if errors.Is(err, imginline.ErrNotHTML) {
//	    // usage error, nothing was read or written
//	}
//
// A failure to read a qualifying image aborts the run before anything is
// written. The document file is read completely before it is reopened for
// writing, but the write itself is not atomic and no backup is kept.
//
// # Testing
//
// FileSystem abstracts image lookups. FromFS adapts any fs.FS, so tests can
// use fstest.MapFS instead of files on disk:
//
//	inl, _ := imginline.NewInliner(imginline.WithFileSystem(
//	    imginline.FromFS(fstest.MapFS{"logo.png": {Data: png}}),
//	))
package imginline
