// ABOUTME: Web app manifest discovery and manifest JSON parsing
// ABOUTME: The one extractor whose parse failure surfaces instead of degrading to absence

package manifest

import (
	"strings"

	"pagemeta-api/core/domain"
	coreerrors "pagemeta-api/core/errors"
	"pagemeta-api/core/htmldoc"
	"pagemeta-api/core/urlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/goccy/go-json"
)

// Discover finds the first manifest link in the document. It returns nil
// when the document declares no manifest; that is not an error.
func Discover(doc *htmldoc.Document) *domain.ManifestDiscovery {
	var found *domain.ManifestDiscovery
	doc.Query.Find("link[rel]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rel, _ := s.Attr("rel")
		for _, token := range strings.Fields(rel) {
			if !strings.EqualFold(token, "manifest") {
				continue
			}
			href, _ := s.Attr("href")
			crossorigin, _ := s.Attr("crossorigin")
			found = &domain.ManifestDiscovery{
				Href:        urlutil.Resolve(href, doc.BaseURL),
				CrossOrigin: crossorigin,
			}
			return false
		}
		return true
	})
	return found
}

// Parse deserializes manifest JSON fetched by the caller. Embedded URLs
// (start_url, scope, icon/shortcut/screenshot sources) resolve against the
// manifest's own URL. Malformed JSON returns a ManifestParseError.
func Parse(jsonText, manifestURL string) (*domain.WebAppManifest, error) {
	var m domain.WebAppManifest
	if err := json.Unmarshal([]byte(jsonText), &m); err != nil {
		return nil, &coreerrors.ManifestParseError{Cause: err}
	}

	m.StartURL = urlutil.Resolve(m.StartURL, manifestURL)
	m.Scope = urlutil.Resolve(m.Scope, manifestURL)

	resolveImages(m.Icons, manifestURL)
	resolveImages(m.Screenshots, manifestURL)
	for i := range m.Shortcuts {
		m.Shortcuts[i].URL = urlutil.Resolve(m.Shortcuts[i].URL, manifestURL)
		resolveImages(m.Shortcuts[i].Icons, manifestURL)
	}

	return &m, nil
}

func resolveImages(images []domain.ManifestImage, base string) {
	for i := range images {
		images[i].Src = urlutil.Resolve(images[i].Src, base)
	}
}
