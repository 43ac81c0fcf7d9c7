// ABOUTME: HTML5 Microdata extractor building nested item trees from itemscope markup
// ABOUTME: Implements nearest-owner scoping so nested items are absorbed exactly once

package microdata

import (
	"strings"

	"pagemeta-api/core/domain"
	"pagemeta-api/core/htmldoc"
	"pagemeta-api/core/urlutil"

	"golang.org/x/net/html"
)

// Extract returns every top-level microdata item in document order.
//
// An itemscope element is top-level unless a closer enclosing itemscope
// claims it through itemprop. itemref is not supported: property collection
// is a pure subtree walk.
func Extract(doc *htmldoc.Document) []*domain.StructuredItem {
	var items []*domain.StructuredItem
	htmldoc.WalkElements(doc.Root, func(n *html.Node) bool {
		if htmldoc.HasAttr(n, "itemscope") && isTopLevel(n) {
			items = append(items, parseItem(n, doc.BaseURL))
		}
		return true
	})
	return items
}

// isTopLevel reports whether the itemscope element is owned by no parent
// item. An itemprop-bearing scope belongs to the nearest enclosing
// itemscope when one exists.
func isTopLevel(n *html.Node) bool {
	if !htmldoc.HasAttr(n, "itemprop") {
		return true
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && htmldoc.HasAttr(p, "itemscope") {
			return false
		}
	}
	return true
}

// parseItem builds one item from its itemscope element, recursing into
// claimed nested scopes.
func parseItem(scope *html.Node, base string) *domain.StructuredItem {
	item := domain.NewStructuredItem()

	for _, t := range strings.Fields(htmldoc.Attr(scope, "itemtype")) {
		if urlutil.IsURLShaped(t) {
			t = urlutil.Resolve(t, base)
		}
		item.Types = append(item.Types, t)
	}
	if id := htmldoc.Attr(scope, "itemid"); id != "" {
		item.ID = urlutil.Resolve(id, base)
	}

	collectProperties(scope, item, base)
	return item
}

// collectProperties walks the scope's subtree and attributes each itemprop
// element to this item, stopping at nested itemscope boundaries.
func collectProperties(scope *html.Node, item *domain.StructuredItem, base string) {
	for c := scope.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}

		name := htmldoc.Attr(c, "itemprop")
		nested := htmldoc.HasAttr(c, "itemscope")

		switch {
		case name != "" && nested:
			// A claimed nested scope contributes one item value; its own
			// subtree belongs to it, not to us.
			item.AddProperty(name, domain.ItemValue(parseItem(c, base)))
		case name != "":
			item.AddProperty(name, domain.TextValue(propertyValue(c, base)))
			collectProperties(c, item, base)
		case nested:
			// An unclaimed scope inside ours is someone else's top-level item.
		default:
			collectProperties(c, item, base)
		}
	}
}

// propertyValue extracts the text value of a non-itemscope property element
// according to its tag.
func propertyValue(n *html.Node, base string) string {
	switch n.Data {
	case "meta":
		return htmldoc.Attr(n, "content")
	case "link", "a", "area":
		return urlutil.Resolve(htmldoc.Attr(n, "href"), base)
	case "img", "audio", "video", "source", "track", "embed", "iframe":
		return urlutil.Resolve(htmldoc.Attr(n, "src"), base)
	case "object":
		return urlutil.Resolve(htmldoc.Attr(n, "data"), base)
	case "data", "meter":
		return htmldoc.Attr(n, "value")
	case "time":
		if dt := htmldoc.Attr(n, "datetime"); dt != "" {
			return dt
		}
		return htmldoc.TextContent(n)
	default:
		return htmldoc.TextContent(n)
	}
}
