// ABOUTME: Basic HTML meta tag extractor (title, description, keywords, canonical, ...)
// ABOUTME: Simple attribute-name lookups; no scoping logic

package meta

import (
	"strings"

	"pagemeta-api/core/domain"
	"pagemeta-api/core/htmldoc"
	"pagemeta-api/core/urlutil"

	"github.com/PuerkitoBio/goquery"
)

// Extract scans the document's meta tags. Returns nil when nothing was found.
func Extract(doc *htmldoc.Document) *domain.MetaTags {
	m := &domain.MetaTags{}

	if title := doc.Query.Find("title").First().Text(); title != "" {
		m.Title = strings.TrimSpace(title)
	}

	doc.Query.Find("meta").Each(func(_ int, s *goquery.Selection) {
		if charset, ok := s.Attr("charset"); ok && charset != "" {
			m.Charset = charset
			return
		}

		content, _ := s.Attr("content")
		if content == "" {
			return
		}
		name, _ := s.Attr("name")
		switch strings.ToLower(name) {
		case "description":
			m.Description = content
		case "keywords":
			m.Keywords = splitKeywords(content)
		case "author":
			m.Author = content
		case "robots":
			m.Robots = content
		case "generator":
			m.Generator = content
		case "theme-color":
			m.ThemeColor = content
		case "viewport":
			m.Viewport = content
		case "google-site-verification":
			m.GoogleSiteVerification = content
		case "facebook-domain-verification":
			m.FacebookDomainVerification = content
		}

		if m.Charset == "" {
			if equiv, _ := s.Attr("http-equiv"); strings.EqualFold(equiv, "content-type") {
				if idx := strings.Index(strings.ToLower(content), "charset="); idx >= 0 {
					m.Charset = strings.TrimSpace(content[idx+len("charset="):])
				}
			}
		}
	})

	doc.Query.Find("link[rel]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rel, _ := s.Attr("rel")
		for _, token := range strings.Fields(rel) {
			if strings.EqualFold(token, "canonical") {
				href, _ := s.Attr("href")
				m.Canonical = urlutil.Resolve(href, doc.BaseURL)
				return false
			}
		}
		return true
	})

	if m.IsEmpty() {
		return nil
	}
	return m
}

// splitKeywords splits a keywords attribute on commas and trims each entry.
func splitKeywords(content string) []string {
	var keywords []string
	for _, k := range strings.Split(content, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
