// ABOUTME: RDFa Lite extractor building nested item trees from vocab/typeof/property markup
// ABOUTME: Prefix and vocab declarations are lexically scoped through a CURIE scope chain

package rdfa

import (
	"strings"

	"pagemeta-api/core/curie"
	"pagemeta-api/core/domain"
	"pagemeta-api/core/htmldoc"
	"pagemeta-api/core/urlutil"

	"golang.org/x/net/html"
)

// Extract returns every top-level RDFa item using the built-in prefix table.
func Extract(doc *htmldoc.Document) []*domain.StructuredItem {
	return ExtractWith(doc, curie.BuiltinPrefixes())
}

// ExtractWith is Extract with a caller-extended prefix table. The table is
// the outermost lexical scope; prefix attributes in the document shadow it.
func ExtractWith(doc *htmldoc.Document, prefixes curie.Table) []*domain.StructuredItem {
	var items []*domain.StructuredItem
	scan(doc.Root, curie.NewScope(prefixes), doc.BaseURL, &items)
	return items
}

// scan walks the whole tree looking for unabsorbed typeof elements,
// maintaining the prefix/vocab scope along the way.
func scan(n *html.Node, scope *curie.Scope, base string, out *[]*domain.StructuredItem) {
	if n.Type == html.ElementNode {
		scope = pushScope(n, scope)
		if htmldoc.HasAttr(n, "typeof") && isTopLevel(n) {
			*out = append(*out, parseItem(n, scope, base))
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		scan(c, scope, base, out)
	}
}

// isTopLevel reports whether no enclosing item claims this typeof element.
// A typeof element carrying a property attribute belongs to the nearest
// typeof-bearing ancestor when one exists.
func isTopLevel(n *html.Node) bool {
	if !htmldoc.HasAttr(n, "property") {
		return true
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && htmldoc.HasAttr(p, "typeof") {
			return false
		}
	}
	return true
}

// pushScope derives a child scope when the element declares prefix or vocab.
func pushScope(n *html.Node, scope *curie.Scope) *curie.Scope {
	prefixAttr := htmldoc.Attr(n, "prefix")
	vocabAttr := htmldoc.Attr(n, "vocab")
	if prefixAttr == "" && vocabAttr == "" {
		return scope
	}
	return scope.Push(prefixAttr, vocabAttr)
}

// parseItem builds one item from a typeof element. The scope must already
// include the element's own prefix/vocab declarations.
func parseItem(n *html.Node, scope *curie.Scope, base string) *domain.StructuredItem {
	item := domain.NewStructuredItem()

	for _, t := range strings.Fields(htmldoc.Attr(n, "typeof")) {
		item.Types = append(item.Types, scope.Expand(t))
	}
	if about := htmldoc.Attr(n, "about"); about != "" {
		item.ID = urlutil.Resolve(about, base)
	} else if res := htmldoc.Attr(n, "resource"); res != "" {
		item.ID = urlutil.Resolve(res, base)
	}

	collectProperties(n, item, scope, base)
	return item
}

// collectProperties attributes each property element in the subtree to this
// item, stopping at nested typeof boundaries.
func collectProperties(n *html.Node, item *domain.StructuredItem, scope *curie.Scope, base string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}

		cscope := pushScope(c, scope)
		props := strings.Fields(htmldoc.Attr(c, "property"))
		hasTypeof := htmldoc.HasAttr(c, "typeof")

		switch {
		case len(props) > 0 && hasTypeof:
			// Nested item with its own (possibly overridden) scope. Each
			// property token records the nested item.
			nested := parseItem(c, cscope, base)
			for _, p := range props {
				item.AddProperty(cscope.Expand(p), domain.ItemValue(nested))
			}
		case len(props) > 0:
			val := propertyValue(c, base)
			for _, p := range props {
				item.AddProperty(cscope.Expand(p), domain.TextValue(val))
			}
			collectProperties(c, item, cscope, base)
		case hasTypeof:
			// An unclaimed typeof scope is someone else's top-level item.
		default:
			collectProperties(c, item, cscope, base)
		}
	}
}

// propertyValue resolves a property element's value with the precedence
// content attribute, then the type-specific URL attribute, then text.
// datatype is attached metadata, never a value source.
func propertyValue(n *html.Node, base string) string {
	if content := htmldoc.Attr(n, "content"); content != "" {
		return content
	}
	if href := htmldoc.Attr(n, "href"); href != "" {
		return urlutil.Resolve(href, base)
	}
	if src := htmldoc.Attr(n, "src"); src != "" {
		return urlutil.Resolve(src, base)
	}
	if res := htmldoc.Attr(n, "resource"); res != "" {
		return urlutil.Resolve(res, base)
	}
	return htmldoc.TextContent(n)
}
