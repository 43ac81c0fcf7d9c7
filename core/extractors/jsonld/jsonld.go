// ABOUTME: JSON-LD extractor collecting embedded script blocks in document order
// ABOUTME: Each block parses independently; one bad block never poisons its siblings

package jsonld

import (
	"fmt"
	"strings"

	"pagemeta-api/core/htmldoc"

	"github.com/PuerkitoBio/goquery"
	"github.com/goccy/go-json"
)

const contentType = "application/ld+json"

// Extract collects and parses every JSON-LD script block in document order.
// Entries are the successfully parsed blocks; skipped records the decode
// error of each failed block. A top-level array flattens one level, a
// top-level object becomes one entry.
func Extract(doc *htmldoc.Document) (entries []interface{}, skipped []error) {
	doc.Query.Find("script[type]").Each(func(i int, s *goquery.Selection) {
		typ, _ := s.Attr("type")
		if !strings.EqualFold(strings.TrimSpace(typ), contentType) {
			return
		}

		var parsed interface{}
		if err := json.Unmarshal([]byte(s.Text()), &parsed); err != nil {
			skipped = append(skipped, fmt.Errorf("json-ld block %d: %w", i, err))
			return
		}

		if arr, ok := parsed.([]interface{}); ok {
			entries = append(entries, arr...)
			return
		}
		entries = append(entries, parsed)
	})
	return entries, skipped
}
