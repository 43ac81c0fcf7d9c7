// ABOUTME: oEmbed endpoint discovery over link[rel=alternate] elements
// ABOUTME: Captures the first JSON and XML endpoint hrefs, resolved against the base

package oembed

import (
	"strings"

	"pagemeta-api/core/domain"
	"pagemeta-api/core/htmldoc"
	"pagemeta-api/core/urlutil"

	"github.com/PuerkitoBio/goquery"
)

const (
	jsonType = "application/json+oembed"
	xmlType  = "text/xml+oembed"
)

// Extract discovers oEmbed endpoint links. Returns nil when none exist.
func Extract(doc *htmldoc.Document) *domain.OEmbedDiscovery {
	o := &domain.OEmbedDiscovery{}

	doc.Query.Find("link[rel]").Each(func(_ int, s *goquery.Selection) {
		rel, _ := s.Attr("rel")
		if !hasToken(rel, "alternate") {
			return
		}
		typ, _ := s.Attr("type")
		href, _ := s.Attr("href")
		if href == "" {
			return
		}

		switch strings.ToLower(strings.TrimSpace(typ)) {
		case jsonType:
			if o.JSONURL == "" {
				o.JSONURL = urlutil.Resolve(href, doc.BaseURL)
				if title, ok := s.Attr("title"); ok && o.Title == "" {
					o.Title = title
				}
			}
		case xmlType, "application/xml+oembed":
			if o.XMLURL == "" {
				o.XMLURL = urlutil.Resolve(href, doc.BaseURL)
				if title, ok := s.Attr("title"); ok && o.Title == "" {
					o.Title = title
				}
			}
		}
	})

	if o.IsEmpty() {
		return nil
	}
	return o
}

func hasToken(list, want string) bool {
	for _, token := range strings.Fields(list) {
		if strings.EqualFold(token, want) {
			return true
		}
	}
	return false
}
