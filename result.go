package imginline

// Action records what happened to one <img> element.
type Action int

const (
	// Inlined means src was replaced with a data URI.
	Inlined Action = iota
	// SkipNoSrc means the element has no src attribute.
	SkipNoSrc
	// SkipDataURI means src is already a data URI.
	SkipDataURI
	// SkipRemote means src is an http(s) or protocol-relative URL.
	SkipRemote
	// SkipMissing means nothing exists at the resolved path.
	SkipMissing
	// SkipNotRegular means the path is a directory or special file.
	SkipNotRegular
	// SkipTooLarge means the file exceeds the size limit.
	SkipTooLarge
)

// String returns a short lowercase label for logs.
func (a Action) String() string {
	switch a {
	case Inlined:
		return "inlined"
	case SkipNoSrc:
		return "no-src"
	case SkipDataURI:
		return "already-inlined"
	case SkipRemote:
		return "remote"
	case SkipMissing:
		return "missing"
	case SkipNotRegular:
		return "not-regular"
	case SkipTooLarge:
		return "too-large"
	default:
		return "unknown"
	}
}

// ImageOutcome describes one <img> element after processing.
type ImageOutcome struct {
	Src    string // original src value
	Path   string // resolved filesystem path, empty when not checked
	Action Action
	Size   int64 // file size in bytes, 0 when not checked
}

// Result holds the rewritten document and per-image outcomes in document order.
type Result struct {
	HTML   []byte
	Images []ImageOutcome
}

// Inlined returns how many images were embedded.
func (r *Result) Inlined() int {
	n := 0
	for _, img := range r.Images {
		if img.Action == Inlined {
			n++
		}
	}
	return n
}

// Skipped returns how many images kept their original src.
func (r *Result) Skipped() int {
	return len(r.Images) - r.Inlined()
}
