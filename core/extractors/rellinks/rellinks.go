// ABOUTME: rel-* link relationship extractor grouping link elements by rel token
// ABOUTME: Asset hints (stylesheet, preload, ...) are skipped; they are not relationships

package rellinks

import (
	"strings"

	"pagemeta-api/core/domain"
	"pagemeta-api/core/htmldoc"
	"pagemeta-api/core/urlutil"

	"github.com/PuerkitoBio/goquery"
)

// skippedRels are rel tokens that describe resource loading rather than a
// document relationship.
var skippedRels = map[string]bool{
	"stylesheet":    true,
	"preload":       true,
	"prefetch":      true,
	"preconnect":    true,
	"dns-prefetch":  true,
	"modulepreload": true,
}

// Extract groups the document's link elements by rel token, each token
// accumulating entries in document order. Returns nil when no relationship
// link exists.
func Extract(doc *htmldoc.Document) map[string][]domain.RelLink {
	links := map[string][]domain.RelLink{}

	doc.Query.Find("link[rel]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" {
			return
		}
		rel, _ := s.Attr("rel")

		entry := domain.RelLink{
			Href:     urlutil.Resolve(href, doc.BaseURL),
			Type:     s.AttrOr("type", ""),
			Title:    s.AttrOr("title", ""),
			Hreflang: s.AttrOr("hreflang", ""),
			Media:    s.AttrOr("media", ""),
		}

		for _, token := range strings.Fields(rel) {
			token = strings.ToLower(token)
			if skippedRels[token] {
				continue
			}
			links[token] = append(links[token], entry)
		}
	})

	if len(links) == 0 {
		return nil
	}
	return links
}
