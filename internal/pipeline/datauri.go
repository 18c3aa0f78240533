package pipeline

import (
	"encoding/base64"
	"path/filepath"
	"strings"
)

// DataURICharset is declared in every data URI header.
const DataURICharset = "utf-8"

const dataURIScheme = "data:"

// EncodePayload base64-encodes data and inserts a newline every width characters.
// Decoders must strip the newlines before decoding.
func EncodePayload(data []byte, width int) string {
	return WrapLines(base64.StdEncoding.EncodeToString(data), width, "\n")
}

// WrapLines joins consecutive width-sized chunks of s with delim.
// No delimiter is added after the last chunk. A width below 1 returns s unchanged.
func WrapLines(s string, width int, delim string) string {
	if width < 1 || len(s) <= width {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + (len(s)/width)*len(delim))
	for i := 0; i < len(s); i += width {
		if i > 0 {
			b.WriteString(delim)
		}
		end := min(i+width, len(s))
		b.WriteString(s[i:end])
	}
	return b.String()
}

// SubtypeFromPath returns the image subtype implied by the path's extension:
// the text after the final "." of the last path element, as written.
// A name without a dot is returned whole.
//
// Examples:
//   - "img/logo.png" -> "png"
//   - "photo.JPEG" -> "JPEG"
//   - "archive.tar.gz" -> "gz"
//   - "icons/sprite" -> "sprite"
func SubtypeFromPath(p string) string {
	base := filepath.Base(filepath.FromSlash(p))
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[i+1:]
	}
	return base
}

// BuildDataURI assembles an image data URI from a subtype and an encoded payload.
func BuildDataURI(subtype, payload string) string {
	return dataURIScheme + "image/" + subtype + ";charset=" + DataURICharset + ";base64," + payload
}

// IsDataURI reports whether s is already a data URI.
func IsDataURI(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= len(dataURIScheme) && strings.EqualFold(s[:len(dataURIScheme)], dataURIScheme)
}
