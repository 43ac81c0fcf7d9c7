// ABOUTME: Dublin Core extractor over DC.* / dcterms.* meta tags
// ABOUTME: Case-insensitive name matching; commonly repeated elements accumulate

package dublincore

import (
	"strings"

	"pagemeta-api/core/domain"
	"pagemeta-api/core/htmldoc"

	"github.com/PuerkitoBio/goquery"
)

// Extract scans Dublin Core meta tags. Returns nil when none are present.
func Extract(doc *htmldoc.Document) *domain.DublinCore {
	dc := &domain.DublinCore{}

	doc.Query.Find("meta[name]").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		content, _ := s.Attr("content")
		if content == "" {
			return
		}

		element, ok := dcElement(name)
		if !ok {
			return
		}
		switch element {
		case "title":
			dc.Title = content
		case "creator":
			dc.Creator = append(dc.Creator, content)
		case "subject":
			dc.Subject = append(dc.Subject, content)
		case "description":
			dc.Description = content
		case "publisher":
			dc.Publisher = content
		case "contributor":
			dc.Contributor = append(dc.Contributor, content)
		case "date":
			dc.Date = content
		case "type":
			dc.Type = content
		case "format":
			dc.Format = content
		case "identifier":
			dc.Identifier = content
		case "source":
			dc.Source = content
		case "language":
			dc.Language = content
		case "relation":
			dc.Relation = content
		case "coverage":
			dc.Coverage = content
		case "rights":
			dc.Rights = content
		}
	})

	if dc.IsEmpty() {
		return nil
	}
	return dc
}

// dcElement strips a recognized Dublin Core prefix from a meta name and
// returns the lowercased element name.
func dcElement(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, prefix := range []string{"dc.", "dcterms."} {
		if strings.HasPrefix(lower, prefix) {
			return lower[len(prefix):], true
		}
	}
	return "", false
}
