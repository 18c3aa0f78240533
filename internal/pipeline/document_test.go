package pipeline

// Notes:
// - Tests ParseDocument/Images/Render through their public API only
// - Error branches of html.Parse/html.Render are not exercised: the html
//   package does not fail on in-memory readers and writers
// - Rendering normalizes markup (void elements gain "/>", attribute quotes are
//   added); assertions target substrings rather than whole documents where the
//   exact serialization is not the point of the test

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseDocument - Document vs fragment detection
// ---------------------------------------------------------------------------

func TestParseDocument(t *testing.T) {
	t.Parallel()

	const page = `<html lang="fr"><head><title>T</title></head><body class="x"><img src="a.png"></body></html>`
	const rendered = `<html lang="fr"><head><title>T</title></head><body class="x"><img src="a.png"/></body></html>`

	tests := []struct {
		name     string
		html     string
		wantFull bool
		want     string // exact rendering, checked when non-empty
	}{
		{
			name:     "doctype",
			html:     "<!DOCTYPE html><html><body><p>x</p></body></html>",
			wantFull: true,
			want:     "<!DOCTYPE html><html><head></head><body><p>x</p></body></html>",
		},
		{
			name:     "lowercase doctype with leading whitespace",
			html:     "\n  <!doctype html><p>x</p>",
			wantFull: true,
		},
		{
			name:     "html root without doctype",
			html:     "<html><body><p>x</p></body></html>",
			wantFull: true,
		},
		{
			name:     "head without html",
			html:     "<head><title>T</title></head><p>x</p>",
			wantFull: true,
		},
		{
			name:     "comment before doctype",
			html:     "<!-- generated -->\n<!DOCTYPE html>\n" + page,
			wantFull: true,
			want:     "<!-- generated --><!DOCTYPE html>" + rendered,
		},
		{
			name:     "byte order mark before doctype",
			html:     "\ufeff<!DOCTYPE html>\n" + page,
			wantFull: true,
			want:     "\ufeff<!DOCTYPE html>" + rendered,
		},
		{
			name:     "byte order mark and comment",
			html:     "\ufeff  <!-- a --><!-- b -->\n" + page,
			wantFull: true,
			want:     "\ufeff<!-- a --><!-- b -->" + rendered,
		},
		{
			name:     "xml processing instruction",
			html:     `<?xml version="1.0"?>` + "\n" + page,
			wantFull: true,
		},
		{
			name:     "bare fragment",
			html:     `<p>Hello</p><img src="a.png">`,
			wantFull: false,
			want:     `<p>Hello</p><img src="a.png"/>`,
		},
		{
			name:     "fragment with byte order mark",
			html:     "\ufeff<p>x</p>",
			wantFull: false,
			want:     "\ufeff<p>x</p>",
		},
		{
			name:     "comment before fragment",
			html:     "<!-- c --><p>x</p>",
			wantFull: false,
			want:     "<!-- c --><p>x</p>",
		},
		{
			name:     "text before body tag",
			html:     "hello <body>",
			wantFull: false,
		},
		{
			name:     "empty input",
			html:     "",
			wantFull: false,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseDocument(tt.html)
			if err != nil {
				t.Fatalf("ParseDocument() error = %v", err)
			}
			got, err := doc.Render()
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			if full := strings.Contains(got, "<html"); full != tt.wantFull {
				t.Errorf("rendered as full document = %v, want %v:\n%q", full, tt.wantFull, got)
			}
			if (tt.want != "" || tt.html == "") && got != tt.want {
				t.Errorf("Render() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Images - <img> lookup
// ---------------------------------------------------------------------------

func TestDocument_Images(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		wantSrcs []string
		wantOK   []bool
	}{
		{
			name:     "no images",
			html:     "<p>text only</p>",
			wantSrcs: []string{},
			wantOK:   []bool{},
		},
		{
			name:     "document order across nesting",
			html:     `<div><img src="a.png"><p><img src="b.gif"></p></div><img src="c.jpg">`,
			wantSrcs: []string{"a.png", "b.gif", "c.jpg"},
			wantOK:   []bool{true, true, true},
		},
		{
			name:     "image without src",
			html:     `<img alt="decorative"><img src="x.png">`,
			wantSrcs: []string{"", "x.png"},
			wantOK:   []bool{false, true},
		},
		{
			name:     "empty src is present",
			html:     `<img src="">`,
			wantSrcs: []string{""},
			wantOK:   []bool{true},
		},
		{
			name:     "uppercase tag and attribute",
			html:     `<IMG SRC="logo.png">`,
			wantSrcs: []string{"logo.png"},
			wantOK:   []bool{true},
		},
		{
			name:     "full document",
			html:     `<!DOCTYPE html><html><head><title>t</title></head><body><img src="a.png"></body></html>`,
			wantSrcs: []string{"a.png"},
			wantOK:   []bool{true},
		},
		{
			name:     "picture source is not an img",
			html:     `<picture><source srcset="a.webp"><img src="a.png"></picture>`,
			wantSrcs: []string{"a.png"},
			wantOK:   []bool{true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseDocument(tt.html)
			if err != nil {
				t.Fatalf("ParseDocument() error = %v", err)
			}

			images := doc.Images()
			if len(images) != len(tt.wantSrcs) {
				t.Fatalf("len(Images()) = %d, want %d", len(images), len(tt.wantSrcs))
			}
			for i, img := range images {
				src, ok := img.Src()
				if src != tt.wantSrcs[i] || ok != tt.wantOK[i] {
					t.Errorf("image %d: Src() = (%q, %v), want (%q, %v)", i, src, ok, tt.wantSrcs[i], tt.wantOK[i])
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestImage_SetSrc - Attribute mutation
// ---------------------------------------------------------------------------

func TestImage_SetSrc(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument(`<p>intro</p><img alt="logo" src="logo.png" width="10"><img src="keep.png">`)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	images := doc.Images()
	images[0].SetSrc("data:image/png;charset=utf-8;base64,QUJD")

	got, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := `<p>intro</p><img alt="logo" src="data:image/png;charset=utf-8;base64,QUJD" width="10"/><img src="keep.png"/>`
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestImage_SetSrc_AddsMissingAttribute(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument(`<img alt="x">`)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	img := doc.Images()[0]
	img.SetSrc("a.png")

	if src, ok := img.Src(); !ok || src != "a.png" {
		t.Errorf("Src() = (%q, %v), want (\"a.png\", true)", src, ok)
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Render - Serialization
// ---------------------------------------------------------------------------

func TestDocument_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		html         string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "fragment is not wrapped",
			html:         `<p>Hello <b>world</b></p>`,
			wantContains: []string{`<p>Hello <b>world</b></p>`},
			wantExcludes: []string{"<html>", "<body>", "<head>"},
		},
		{
			name:         "full document keeps structure",
			html:         `<!DOCTYPE html><html><head><title>T</title></head><body><p>x</p></body></html>`,
			wantContains: []string{"<!DOCTYPE html>", "<title>T</title>", "<body><p>x</p></body>"},
		},
		{
			name:         "text and comments preserved",
			html:         `<!-- note --><p>a &amp; b</p>`,
			wantContains: []string{"<!-- note -->", "<p>a &amp; b</p>"},
		},
		{
			name:         "newlines inside attribute survive",
			html:         "<img src=\"data:image/png;base64,AAAA\nBBBB\">",
			wantContains: []string{"AAAA\nBBBB"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseDocument(tt.html)
			if err != nil {
				t.Fatalf("ParseDocument() error = %v", err)
			}

			got, err := doc.Render()
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Render() missing %q in:\n%s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("Render() should not contain %q in:\n%s", exclude, got)
				}
			}
		})
	}
}

func TestDocument_Render_Nil(t *testing.T) {
	t.Parallel()

	var doc *Document
	if _, err := doc.Render(); !errors.Is(err, ErrNilDocument) {
		t.Errorf("Render() on nil document error = %v, want ErrNilDocument", err)
	}
}
