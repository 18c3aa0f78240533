// Package pipeline implements the HTML side of image inlining.
//
// It covers two concerns:
//   - parsing a document into a mutable tree, finding <img> elements,
//     reading and writing their src attribute, and rendering the tree back
//   - building data URIs: base64 payload, line wrapping, subtype from the
//     file extension, and the data:image/... header
//
// Filesystem access and the decision of which images qualify live in the
// root imginline package; nothing here performs I/O.
package pipeline
