// ABOUTME: One-shot HTML parsing into a read-only document shared by all extractors
// ABOUTME: Exposes both goquery selection and the raw node tree for scope-sensitive walks

package htmldoc

import (
	"strings"
	"unicode/utf8"

	"pagemeta-api/core/errors"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed HTML document. It is built once per extraction call,
// read-only afterwards, and safe for concurrent extractor scans.
type Document struct {
	// Root is the document root node for tree walks.
	Root *html.Node

	// Query wraps the same tree for selector-based lookups.
	Query *goquery.Document

	// BaseURL is the caller-supplied base for resolving relative URLs.
	// May be empty.
	BaseURL string
}

// Parse builds a Document from raw HTML. Malformed markup is recovered per
// the HTML5 algorithm and never fails; the only parse-time error is invalid
// UTF-8 input.
func Parse(htmlText, baseURL string) (*Document, error) {
	if !utf8.ValidString(htmlText) {
		return nil, &errors.InvalidInputError{Field: "html", Message: "not valid UTF-8"}
	}

	root, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, &errors.InvalidInputError{Field: "html", Message: err.Error()}
	}

	return &Document{
		Root:    root,
		Query:   goquery.NewDocumentFromNode(root),
		BaseURL: baseURL,
	}, nil
}

// Attr returns the value of the named attribute, or "" when absent.
func Attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the node carries the named attribute, even empty.
// Boolean attributes like itemscope appear with an empty value.
func HasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// TextContent returns the node's text with whitespace collapsed and trimmed.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// InnerHTML serializes the node's children back to markup, unparsed.
func InnerHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		// Render only fails on unwritable writers; strings.Builder never is.
		_ = html.Render(&b, c)
	}
	return b.String()
}

// ClassList returns the whitespace-split class tokens of the node.
func ClassList(n *html.Node) []string {
	return strings.Fields(Attr(n, "class"))
}

// WalkElements visits every element node under root in document order.
// Returning false from visit skips the element's subtree.
func WalkElements(root *html.Node, visit func(*html.Node) bool) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && !visit(n) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}
