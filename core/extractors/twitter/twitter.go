// ABOUTME: Twitter Card extractor over meta[name=twitter:*] tags
// ABOUTME: Offers an Open Graph fallback merge for sites that only ship og: tags

package twitter

import (
	"strconv"
	"strings"

	"pagemeta-api/core/domain"
	"pagemeta-api/core/extractors/opengraph"
	"pagemeta-api/core/htmldoc"
	"pagemeta-api/core/urlutil"

	"github.com/PuerkitoBio/goquery"
)

// Extract scans twitter: meta tags. Some sites publish them under the
// property attribute instead of name; both are accepted. Returns nil when
// none are present.
func Extract(doc *htmldoc.Document) *domain.TwitterCard {
	t := &domain.TwitterCard{}

	doc.Query.Find("meta").Each(func(_ int, s *goquery.Selection) {
		key, _ := s.Attr("name")
		if key == "" {
			key, _ = s.Attr("property")
		}
		key = strings.ToLower(strings.TrimSpace(key))
		content, _ := s.Attr("content")
		if content == "" || !strings.HasPrefix(key, "twitter:") {
			return
		}

		switch key {
		case "twitter:card":
			t.Card = content
		case "twitter:site":
			t.Site = content
		case "twitter:site:id":
			t.SiteID = content
		case "twitter:creator":
			t.Creator = content
		case "twitter:creator:id":
			t.CreatorID = content
		case "twitter:title":
			t.Title = content
		case "twitter:description":
			t.Description = content
		case "twitter:image":
			t.Image = urlutil.Resolve(content, doc.BaseURL)
		case "twitter:image:alt":
			t.ImageAlt = content
		case "twitter:player":
			t.Player = urlutil.Resolve(content, doc.BaseURL)
		case "twitter:player:width":
			t.PlayerWidth, _ = strconv.Atoi(content)
		case "twitter:player:height":
			t.PlayerHeight, _ = strconv.Atoi(content)
		}
	})

	if t.IsEmpty() {
		return nil
	}
	return t
}

// ExtractWithFallback fills blank card fields from Open Graph metadata so
// consumers still get a usable preview from og:-only pages.
func ExtractWithFallback(doc *htmldoc.Document) *domain.TwitterCard {
	t := Extract(doc)
	og := opengraph.Extract(doc)
	if og == nil {
		return t
	}
	if t == nil {
		t = &domain.TwitterCard{}
	}

	if t.Title == "" {
		t.Title = og.Title
	}
	if t.Description == "" {
		t.Description = og.Description
	}
	if t.Image == "" && len(og.Images) > 0 {
		t.Image = og.Images[0].URL
	}

	if t.IsEmpty() {
		return nil
	}
	return t
}
