// ABOUTME: Aggregate extraction result with one optional slot per metadata format
// ABOUTME: A nil slot means the format was not found; found-but-empty never occurs

package domain

// AggregateResult is the combined output of running every extractor against
// one document. Each slot is independent: a nil slot means that format was
// absent from the document or its extractor failed internally.
type AggregateResult struct {
	Meta         *MetaTags                     `json:"meta,omitempty"`
	OpenGraph    *OpenGraph                    `json:"open_graph,omitempty"`
	Twitter      *TwitterCard                  `json:"twitter,omitempty"`
	JSONLD       []interface{}                 `json:"json_ld,omitempty"`
	Microdata    []*StructuredItem             `json:"microdata,omitempty"`
	Microformats map[string][]*MicroformatItem `json:"microformats,omitempty"`
	RDFa         []*StructuredItem             `json:"rdfa,omitempty"`
	DublinCore   *DublinCore                   `json:"dublin_core,omitempty"`
	Manifest     *ManifestDiscovery            `json:"manifest,omitempty"`
	OEmbed       *OEmbedDiscovery              `json:"oembed,omitempty"`
	RelLinks     map[string][]RelLink          `json:"rel_links,omitempty"`
}

// FormatCount returns how many formats were found in the document.
func (r *AggregateResult) FormatCount() int {
	count := 0
	if r.Meta != nil {
		count++
	}
	if r.OpenGraph != nil {
		count++
	}
	if r.Twitter != nil {
		count++
	}
	if len(r.JSONLD) > 0 {
		count++
	}
	if len(r.Microdata) > 0 {
		count++
	}
	if len(r.Microformats) > 0 {
		count++
	}
	if len(r.RDFa) > 0 {
		count++
	}
	if r.DublinCore != nil {
		count++
	}
	if r.Manifest != nil {
		count++
	}
	if r.OEmbed != nil {
		count++
	}
	if len(r.RelLinks) > 0 {
		count++
	}
	return count
}
