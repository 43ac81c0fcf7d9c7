// ABOUTME: Open Graph protocol extractor over meta[property=og:*] tags
// ABOUTME: Structured media sub-properties attach to the most recent media entry

package opengraph

import (
	"strconv"
	"strings"

	"pagemeta-api/core/domain"
	"pagemeta-api/core/htmldoc"
	"pagemeta-api/core/urlutil"

	"github.com/PuerkitoBio/goquery"
)

// Extract scans og: meta tags. Returns nil when none are present.
func Extract(doc *htmldoc.Document) *domain.OpenGraph {
	og := &domain.OpenGraph{}

	doc.Query.Find("meta[property]").Each(func(_ int, s *goquery.Selection) {
		property, _ := s.Attr("property")
		content, _ := s.Attr("content")
		property = strings.ToLower(strings.TrimSpace(property))
		if content == "" || !strings.HasPrefix(property, "og:") {
			return
		}

		switch property {
		case "og:title":
			og.Title = content
		case "og:type":
			og.Type = content
		case "og:url":
			og.URL = urlutil.Resolve(content, doc.BaseURL)
		case "og:description":
			og.Description = content
		case "og:site_name":
			og.SiteName = content
		case "og:locale":
			og.Locale = content
		case "og:determiner":
			og.Determiner = content
		case "og:image", "og:image:url":
			og.Images = append(og.Images, domain.OGMedia{URL: urlutil.Resolve(content, doc.BaseURL)})
		case "og:video", "og:video:url":
			og.Videos = append(og.Videos, domain.OGMedia{URL: urlutil.Resolve(content, doc.BaseURL)})
		case "og:audio", "og:audio:url":
			og.Audio = append(og.Audio, domain.OGMedia{URL: urlutil.Resolve(content, doc.BaseURL)})
		default:
			attachMediaDetail(og, property, content)
		}
	})

	if og.IsEmpty() {
		return nil
	}
	return og
}

// attachMediaDetail sets a structured sub-property (og:image:width, ...) on
// the most recently opened media entry of the matching kind.
func attachMediaDetail(og *domain.OpenGraph, property, content string) {
	var list []domain.OGMedia
	var suffix string
	switch {
	case strings.HasPrefix(property, "og:image:"):
		list, suffix = og.Images, property[len("og:image:"):]
	case strings.HasPrefix(property, "og:video:"):
		list, suffix = og.Videos, property[len("og:video:"):]
	case strings.HasPrefix(property, "og:audio:"):
		list, suffix = og.Audio, property[len("og:audio:"):]
	default:
		return
	}
	if len(list) == 0 {
		return
	}

	last := &list[len(list)-1]
	switch suffix {
	case "secure_url":
		last.SecureURL = content
	case "type":
		last.Type = content
	case "alt":
		last.Alt = content
	case "width":
		last.Width, _ = strconv.Atoi(content)
	case "height":
		last.Height, _ = strconv.Atoi(content)
	}
}
