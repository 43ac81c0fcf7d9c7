// ABOUTME: Microformats2 extractor driven by the h-*/p-*/u-*/dt-*/e-* class conventions
// ABOUTME: Fixed prefix matcher with nearest-root attribution and implied name derivation

package mf2

import (
	"strings"

	"pagemeta-api/core/domain"
	"pagemeta-api/core/htmldoc"
	"pagemeta-api/core/urlutil"

	"golang.org/x/net/html"
)

// propKind is one of the recognized microformat property class prefixes.
// The vocabulary is informal; the matcher is a fixed enumeration, nothing
// reflective.
type propKind int

const (
	kindNone propKind = iota
	kindPlain          // p-*
	kindURL            // u-*
	kindDatetime       // dt-*
	kindEmbedded       // e-*
)

// classifyProperty matches a class token against the property prefixes and
// returns its kind and the prefix-stripped name.
func classifyProperty(token string) (propKind, string) {
	switch {
	case strings.HasPrefix(token, "p-"):
		return kindPlain, token[2:]
	case strings.HasPrefix(token, "u-"):
		return kindURL, token[2:]
	case strings.HasPrefix(token, "dt-"):
		return kindDatetime, token[3:]
	case strings.HasPrefix(token, "e-"):
		return kindEmbedded, token[2:]
	}
	return kindNone, ""
}

// rootClasses returns the h-* tokens of the node's class list.
func rootClasses(n *html.Node) []string {
	var roots []string
	for _, token := range htmldoc.ClassList(n) {
		if strings.HasPrefix(token, "h-") && len(token) > 2 {
			roots = append(roots, token)
		}
	}
	return roots
}

// Extract returns every top-level microformat item, keyed by root class.
// An item carrying several h-* tokens appears under each of its keys.
func Extract(doc *htmldoc.Document) map[string][]*domain.MicroformatItem {
	var items []*domain.MicroformatItem
	htmldoc.WalkElements(doc.Root, func(n *html.Node) bool {
		if len(rootClasses(n)) == 0 {
			return true
		}
		items = append(items, parseRoot(n, doc.BaseURL))
		// A root owns its subtree; nested roots were absorbed by parseRoot.
		return false
	})

	if len(items) == 0 {
		return nil
	}
	byClass := map[string][]*domain.MicroformatItem{}
	for _, item := range items {
		for _, t := range item.Types {
			byClass[t] = append(byClass[t], item)
		}
	}
	return byClass
}

// ExtractType returns the top-level items of one root class ("h-card").
func ExtractType(doc *htmldoc.Document, rootClass string) []*domain.MicroformatItem {
	return Extract(doc)[rootClass]
}

// parseRoot builds one item from its root element, absorbing nested roots.
func parseRoot(root *html.Node, base string) *domain.MicroformatItem {
	item := domain.NewMicroformatItem()
	item.Types = rootClasses(root)

	collectProperties(root, item, base)

	if len(item.Properties["name"]) == 0 {
		if name := impliedName(root); name != "" {
			item.AddProperty("name", domain.MFText(name))
		}
	}
	return item
}

// collectProperties attributes each property class in the subtree to this
// item, stopping at nested root boundaries.
func collectProperties(n *html.Node, item *domain.MicroformatItem, base string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}

		classes := htmldoc.ClassList(c)
		if len(rootClasses(c)) > 0 {
			nested := parseRoot(c, base)
			claimed := false
			for _, token := range classes {
				if kind, name := classifyProperty(token); kind != kindNone {
					item.AddProperty(name, domain.MFNested(nested))
					claimed = true
				}
			}
			if !claimed {
				item.Children = append(item.Children, nested)
			}
			continue
		}

		for _, token := range classes {
			kind, name := classifyProperty(token)
			if kind == kindNone {
				continue
			}
			item.AddProperty(name, propertyValue(kind, c, base))
		}
		collectProperties(c, item, base)
	}
}

// propertyValue extracts one value according to the property kind.
func propertyValue(kind propKind, n *html.Node, base string) domain.MicroformatValue {
	switch kind {
	case kindURL:
		return urlValue(n, base)
	case kindDatetime:
		if dt := htmldoc.Attr(n, "datetime"); dt != "" {
			return domain.MFText(dt)
		}
		return domain.MFText(htmldoc.TextContent(n))
	case kindEmbedded:
		return domain.MFText(htmldoc.InnerHTML(n))
	default: // kindPlain
		return domain.MFText(plainValue(n))
	}
}

// plainValue prefers the natural text carrier of the tag over its content.
func plainValue(n *html.Node) string {
	switch n.Data {
	case "img", "area":
		if alt := htmldoc.Attr(n, "alt"); alt != "" {
			return alt
		}
	case "abbr":
		if title := htmldoc.Attr(n, "title"); title != "" {
			return title
		}
	}
	return htmldoc.TextContent(n)
}

// urlValue pulls the URL attribute the tag supports, stripping mailto: and
// tel: schemes and resolving URL-shaped values against the base.
func urlValue(n *html.Node, base string) domain.MicroformatValue {
	var raw string
	fromAttr := true
	switch n.Data {
	case "a", "area", "link":
		raw = htmldoc.Attr(n, "href")
	case "img", "audio", "video", "source", "iframe", "embed":
		raw = htmldoc.Attr(n, "src")
	case "object":
		raw = htmldoc.Attr(n, "data")
	default:
		raw = htmldoc.TextContent(n)
		fromAttr = false
	}

	// Stripped mailto:/tel: values are bare addresses, not resolvable URLs.
	if strings.HasPrefix(raw, "mailto:") || strings.HasPrefix(raw, "tel:") {
		raw = strings.TrimPrefix(raw, "mailto:")
		raw = strings.TrimPrefix(raw, "tel:")
		return domain.MFURL(raw)
	}

	if fromAttr || urlutil.IsURLShaped(raw) {
		return domain.MFURL(urlutil.Resolve(raw, base))
	}
	return domain.MFText(raw)
}

// impliedName derives a best-effort name for roots lacking an explicit
// p-name: the root's own alt text, a lone image's alt text, or the
// accumulated text content. It never fails; it may return "".
func impliedName(root *html.Node) string {
	if root.Data == "img" || root.Data == "area" {
		return strings.TrimSpace(htmldoc.Attr(root, "alt"))
	}
	var imgAlt string
	htmldoc.WalkElements(root, func(n *html.Node) bool {
		if n != root && n.Data == "img" && imgAlt == "" {
			imgAlt = strings.TrimSpace(htmldoc.Attr(n, "alt"))
		}
		return true
	})
	if text := htmldoc.TextContent(root); text != "" {
		return text
	}
	return imgAlt
}
