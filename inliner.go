package imginline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-imginline/internal/fileutil"
	"github.com/alnah/go-imginline/internal/pipeline"
)

// htmlExtension is the only document suffix accepted by InlineFile and Rewrite.
const htmlExtension = ".html"

// maxLoggedSrc truncates src values in log records; inlined values are large.
const maxLoggedSrc = 80

// Inliner embeds local images referenced by <img src> as base64 data URIs.
// Create with NewInliner. An Inliner holds no per-run state and is safe for
// concurrent use.
type Inliner struct {
	cfg    inlinerConfig
	fsys   FileSystem
	logger *slog.Logger
}

// NewInliner creates an Inliner with default configuration:
// 1 MiB size limit, 100-character payload lines, host filesystem,
// paths relative to the working directory, GOMAXPROCS workers.
// Returns an error wrapping ErrInvalidSizeLimit, ErrInvalidLineWidth or
// ErrInvalidWorkers when an option is out of range.
func NewInliner(opts ...Option) (*Inliner, error) {
	i := &Inliner{
		cfg: inlinerConfig{
			sizeLimit: DefaultSizeLimit,
			lineWidth: DefaultLineWidth,
			workers:   runtime.GOMAXPROCS(0),
		},
		fsys: OSFileSystem{},
	}

	for _, opt := range opts {
		opt(i)
	}

	if i.cfg.sizeLimit < 0 {
		return nil, fmt.Errorf("%w: %d (must not be negative)", ErrInvalidSizeLimit, i.cfg.sizeLimit)
	}
	if i.cfg.lineWidth < 1 {
		return nil, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidLineWidth, i.cfg.lineWidth)
	}
	if i.cfg.workers < 1 {
		return nil, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidWorkers, i.cfg.workers)
	}
	if i.fsys == nil {
		i.fsys = OSFileSystem{}
	}
	if i.logger == nil {
		i.logger = slog.New(slog.DiscardHandler)
	}

	return i, nil
}

// Rewrite inlines the images of the document at docPath and overwrites the
// file with the result. The document is read completely before the file is
// reopened for writing; nothing is written when any step fails.
func (i *Inliner) Rewrite(ctx context.Context, docPath string) (*Result, error) {
	res, err := i.InlineFile(ctx, docPath)
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFile(docPath, res.HTML); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}

	return res, nil
}

// InlineFile reads the document at docPath and returns the rewritten HTML
// without touching the file. docPath must end with .html.
func (i *Inliner) InlineFile(ctx context.Context, docPath string) (*Result, error) {
	if err := ValidateDocumentPath(docPath); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(docPath) // #nosec G304 -- user-provided document path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	return i.InlineHTML(ctx, string(content))
}

// ValidateDocumentPath checks that path is non-empty and ends with .html
// (case-insensitive). It performs no I/O.
func ValidateDocumentPath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if !fileutil.HasExtension(path, htmlExtension) {
		return fmt.Errorf("%w: %s", ErrNotHTML, path)
	}
	return nil
}

// InlineHTML rewrites every qualifying <img> in content and returns the
// rendered document. An image qualifies when its src names an existing
// regular file no larger than the size limit. Missing, remote, oversized and
// already-inlined images are left untouched and reported in Result.Images.
// A read error on a qualifying image aborts the run.
//
// Recovers from internal panics to prevent crashes from propagating to callers.
func (i *Inliner) InlineHTML(ctx context.Context, content string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	doc, err := pipeline.ParseDocument(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseHTML, err)
	}

	images := doc.Images()
	outcomes := make([]ImageOutcome, len(images))
	var selected []int
	for idx, img := range images {
		outcomes[idx] = i.classify(img)
		if outcomes[idx].Action == Inlined {
			selected = append(selected, idx)
		}
	}

	uris, err := i.encodeAll(ctx, outcomes, selected)
	if err != nil {
		return nil, err
	}

	// Assign in document order once every payload is ready.
	for _, idx := range selected {
		images[idx].SetSrc(uris[idx])
	}

	for idx, o := range outcomes {
		i.logger.DebugContext(ctx, "image",
			slog.Int("index", idx),
			slog.String("src", truncate(o.Src, maxLoggedSrc)),
			slog.String("action", o.Action.String()),
			slog.Int64("size", o.Size),
		)
	}

	rendered, err := doc.Render()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderHTML, err)
	}

	return &Result{HTML: []byte(rendered), Images: outcomes}, nil
}

// classify decides whether img qualifies for inlining using only Stat.
func (i *Inliner) classify(img *pipeline.Image) ImageOutcome {
	src, ok := img.Src()
	if !ok {
		return ImageOutcome{Action: SkipNoSrc}
	}

	out := ImageOutcome{Src: src}
	switch {
	case pipeline.IsDataURI(src):
		out.Action = SkipDataURI
		return out
	case fileutil.IsURL(src):
		out.Action = SkipRemote
		return out
	case src == "":
		out.Action = SkipMissing
		return out
	}

	out.Path = i.resolvePath(src)
	info, err := i.fsys.Stat(out.Path)
	if err != nil {
		// Any stat failure is treated as "nothing there", like a missing asset.
		out.Action = SkipMissing
		return out
	}
	if !info.Mode().IsRegular() {
		out.Action = SkipNotRegular
		return out
	}

	out.Size = info.Size()
	if out.Size > i.cfg.sizeLimit {
		out.Action = SkipTooLarge
		return out
	}

	out.Action = Inlined
	return out
}

// encodeAll reads and encodes the selected images with at most cfg.workers
// goroutines. The returned slice is indexed like outcomes.
func (i *Inliner) encodeAll(ctx context.Context, outcomes []ImageOutcome, selected []int) ([]string, error) {
	uris := make([]string, len(outcomes))
	if len(selected) == 0 {
		return uris, ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.cfg.workers)

	for _, idx := range selected {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			uri, err := i.encode(outcomes[idx])
			if err != nil {
				return err
			}
			uris[idx] = uri
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup cancels gctx, not the parent; report a parent cancellation
	// that arrived after the last image was encoded.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return uris, nil
}

// encode builds the data URI for one qualifying image.
func (i *Inliner) encode(o ImageOutcome) (string, error) {
	data, err := i.fsys.ReadFile(o.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadImage, o.Src, err)
	}
	payload := pipeline.EncodePayload(data, i.cfg.lineWidth)
	return pipeline.BuildDataURI(pipeline.SubtypeFromPath(o.Src), payload), nil
}

// resolvePath joins relative src values onto the base directory.
func (i *Inliner) resolvePath(src string) string {
	if i.cfg.baseDir == "" || filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(i.cfg.baseDir, src)
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
