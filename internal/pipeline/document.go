package pipeline

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNilDocument is returned when rendering a Document that was never parsed.
var ErrNilDocument = errors.New("document not parsed")

// srcAttr is the attribute rewritten on <img> elements.
const srcAttr = "src"

// byteOrderMark is the UTF-8 BOM. It is removed before parsing and written
// back in front of the rendered output.
const byteOrderMark = "\ufeff"

// Document is a parsed HTML tree that can be inspected and rendered back.
// Full documents keep their <html> structure; fragments render without
// the <html><head><body> wrapper the parser would otherwise add.
type Document struct {
	root       *html.Node
	isFragment bool
	hasBOM     bool
}

// Image is a handle onto the src attribute of one <img> element.
type Image struct {
	sel *goquery.Selection
}

// ParseDocument parses HTML content, handling both full documents and fragments.
// Content is a full document when its first significant token is a doctype
// or an <html>, <head> or <body> start tag; a leading BOM, comments,
// processing instructions and whitespace are skipped for that check.
func ParseDocument(content string) (*Document, error) {
	content, hasBOM := strings.CutPrefix(content, byteOrderMark)

	if isFullDocument(content) {
		root, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return nil, err
		}
		return &Document{root: root, hasBOM: hasBOM}, nil
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return &Document{root: container, isFragment: true, hasBOM: hasBOM}, nil
}

// isFullDocument reports whether the first token that is not a comment or
// whitespace opens a full document.
func isFullDocument(content string) bool {
	z := html.NewTokenizer(strings.NewReader(content))
	for {
		switch z.Next() {
		case html.CommentToken:
			// <!-- ... --> and <?xml ...?> both arrive here.
			continue
		case html.TextToken:
			if strings.TrimSpace(string(z.Text())) == "" {
				continue
			}
			return false
		case html.DoctypeToken:
			return true
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Html, atom.Head, atom.Body:
				return true
			}
			return false
		default:
			return false
		}
	}
}

// Images returns every <img> element in document order.
func (d *Document) Images() []*Image {
	sel := goquery.NewDocumentFromNode(d.root).Find(atom.Img.String())
	images := make([]*Image, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		images = append(images, &Image{sel: s})
	})
	return images
}

// Src returns the src attribute and whether it is present.
func (img *Image) Src() (string, bool) {
	return img.sel.Attr(srcAttr)
}

// SetSrc overwrites the src attribute.
func (img *Image) SetSrc(value string) {
	img.sel.SetAttr(srcAttr, value)
}

// Render serializes the document back to HTML.
// For fragments, only the top-level nodes are rendered.
func (d *Document) Render() (string, error) {
	if d == nil || d.root == nil {
		return "", ErrNilDocument
	}

	var buf strings.Builder
	if d.hasBOM {
		buf.WriteString(byteOrderMark)
	}

	if d.isFragment {
		for c := d.root.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, d.root); err != nil {
		return "", err
	}
	return buf.String(), nil
}
