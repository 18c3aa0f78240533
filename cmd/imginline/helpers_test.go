package main

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"
)

// newTestEnv returns an Environment with captured output and the given
// variables as the whole process environment.
func newTestEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Environment{
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(key string) string { return vars[key] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			sort.Strings(out)
			return out
		},
	}, stdout, stderr
}

// writeFile creates path with content, creating parent directories.
func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// readFile returns the content of path as a string.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// setupDocument writes an image of imageSize bytes and an HTML document
// referencing it by absolute path. Returns the document path, the image
// path and the image bytes.
func setupDocument(t *testing.T, imageName string, imageSize int) (docPath, imgPath string, data []byte) {
	t.Helper()
	dir := t.TempDir()

	data = bytes.Repeat([]byte{0xAB, 0x01, 0x7F}, imageSize/3+1)[:imageSize]
	imgPath = filepath.Join(dir, "img", imageName)
	writeFile(t, imgPath, data)

	docPath = filepath.Join(dir, "page.html")
	writeFile(t, docPath, []byte(`<p>Hello</p><img src="`+imgPath+`" alt="pic">`))

	return docPath, imgPath, data
}

var srcPattern = regexp.MustCompile(`src="([^"]*)"`)

// srcValues returns every src attribute value in document order.
func srcValues(html string) []string {
	var out []string
	for _, m := range srcPattern.FindAllStringSubmatch(html, -1) {
		out = append(out, m[1])
	}
	return out
}

// decodeDataURI checks the prefix of uri and returns its decoded payload.
func decodeDataURI(t *testing.T, uri, subtype string) []byte {
	t.Helper()
	prefix := "data:image/" + subtype + ";charset=utf-8;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("src = %.60q, want prefix %q", uri, prefix)
	}
	payload := strings.ReplaceAll(strings.TrimPrefix(uri, prefix), "\n", "")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	return data
}
