// ABOUTME: Aggregator service running every metadata extractor against one parsed document
// ABOUTME: Extractors fan out in parallel with independent slots and partial-failure tolerance

package extract

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"pagemeta-api/core/curie"
	"pagemeta-api/core/domain"
	coreerrors "pagemeta-api/core/errors"
	"pagemeta-api/core/extractors/dublincore"
	"pagemeta-api/core/extractors/jsonld"
	"pagemeta-api/core/extractors/manifest"
	"pagemeta-api/core/extractors/meta"
	"pagemeta-api/core/extractors/mf2"
	"pagemeta-api/core/extractors/microdata"
	"pagemeta-api/core/extractors/oembed"
	"pagemeta-api/core/extractors/opengraph"
	"pagemeta-api/core/extractors/rdfa"
	"pagemeta-api/core/extractors/rellinks"
	"pagemeta-api/core/extractors/twitter"
	"pagemeta-api/core/htmldoc"
	"pagemeta-api/core/interfaces"
)

const defaultCacheTTL = 24 * time.Hour

// Service aggregates the per-format extractors behind one entry point.
type Service struct {
	deps     interfaces.Dependencies
	cacheTTL time.Duration
}

// NewService creates a new extraction service.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		deps:     deps,
		cacheTTL: defaultCacheTTL,
	}
}

// WithCacheTTL overrides the TTL used when memoizing aggregate results.
func (s *Service) WithCacheTTL(ttl time.Duration) *Service {
	s.cacheTTL = ttl
	return s
}

// ExtractAll parses the HTML once and runs every extractor against the
// parsed document. Each slot is independent: an extractor that finds
// nothing, or fails internally, leaves its slot absent without disturbing
// the others. The only whole-call errors are missing or non-UTF-8 input,
// raised before any extractor runs.
func (s *Service) ExtractAll(ctx context.Context, htmlText, baseURL string) (*domain.AggregateResult, error) {
	if htmlText == "" {
		return nil, &coreerrors.InvalidInputError{Field: "html", Message: "html text is required"}
	}

	cacheKey := ""
	if s.deps.Cache != nil {
		cacheKey = "extract:" + contentHash(htmlText, baseURL)
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached domain.AggregateResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}

	result := s.runExtractors(doc)

	if s.deps.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, s.cacheTTL)
		}
	}

	return result, nil
}

// runExtractors fans the extractors out over the read-only document. The
// document is immutable after parsing, so the goroutines share it freely;
// each one writes only its own result slot.
func (s *Service) runExtractors(doc *htmldoc.Document) *domain.AggregateResult {
	result := &domain.AggregateResult{}

	var wg sync.WaitGroup
	run := func(name string, fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.logDebug("extractor failed", map[string]interface{}{
						"extractor": name,
						"panic":     r,
					})
				}
			}()
			fn()
		}()
	}

	run("meta", func() { result.Meta = meta.Extract(doc) })
	run("open_graph", func() { result.OpenGraph = opengraph.Extract(doc) })
	run("twitter", func() { result.Twitter = twitter.Extract(doc) })
	run("json_ld", func() {
		entries, skipped := jsonld.Extract(doc)
		result.JSONLD = entries
		for _, err := range skipped {
			s.logDebug("JSON-LD block skipped", map[string]interface{}{
				"error": err.Error(),
			})
		}
	})
	run("microdata", func() { result.Microdata = microdata.Extract(doc) })
	run("microformats", func() { result.Microformats = mf2.Extract(doc) })
	run("rdfa", func() { result.RDFa = rdfa.Extract(doc) })
	run("dublin_core", func() { result.DublinCore = dublincore.Extract(doc) })
	run("manifest", func() { result.Manifest = manifest.Discover(doc) })
	run("oembed", func() { result.OEmbed = oembed.Extract(doc) })
	run("rel_links", func() { result.RelLinks = rellinks.Extract(doc) })

	wg.Wait()
	return result
}

// Meta extracts only basic meta tags.
func (s *Service) Meta(htmlText, baseURL string) (*domain.MetaTags, error) {
	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}
	return meta.Extract(doc), nil
}

// OpenGraph extracts only Open Graph metadata.
func (s *Service) OpenGraph(htmlText, baseURL string) (*domain.OpenGraph, error) {
	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}
	return opengraph.Extract(doc), nil
}

// Twitter extracts only Twitter Card metadata.
func (s *Service) Twitter(htmlText, baseURL string) (*domain.TwitterCard, error) {
	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}
	return twitter.Extract(doc), nil
}

// TwitterWithFallback extracts Twitter Card metadata with Open Graph
// values filling any blanks.
func (s *Service) TwitterWithFallback(htmlText, baseURL string) (*domain.TwitterCard, error) {
	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}
	return twitter.ExtractWithFallback(doc), nil
}

// JSONLD extracts the successfully parsed JSON-LD entries.
func (s *Service) JSONLD(htmlText string) ([]interface{}, error) {
	doc, err := htmldoc.Parse(htmlText, "")
	if err != nil {
		return nil, err
	}
	entries, skipped := jsonld.Extract(doc)
	for _, serr := range skipped {
		s.logDebug("JSON-LD block skipped", map[string]interface{}{
			"error": serr.Error(),
		})
	}
	return entries, nil
}

// Microdata extracts the document's microdata items.
func (s *Service) Microdata(htmlText, baseURL string) ([]*domain.StructuredItem, error) {
	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}
	return microdata.Extract(doc), nil
}

// Microformats extracts every microformat item, keyed by root class.
func (s *Service) Microformats(htmlText, baseURL string) (map[string][]*domain.MicroformatItem, error) {
	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}
	return mf2.Extract(doc), nil
}

// MicroformatType extracts the items of one root class, such as "h-card".
func (s *Service) MicroformatType(htmlText, baseURL, rootClass string) ([]*domain.MicroformatItem, error) {
	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}
	return mf2.ExtractType(doc, rootClass), nil
}

// RDFa extracts the document's RDFa items with the built-in prefix table.
func (s *Service) RDFa(htmlText, baseURL string) ([]*domain.StructuredItem, error) {
	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}
	return rdfa.Extract(doc), nil
}

// RDFaWithPrefixes extracts RDFa items with a caller-extended prefix table.
func (s *Service) RDFaWithPrefixes(htmlText, baseURL string, prefixes curie.Table) ([]*domain.StructuredItem, error) {
	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}
	return rdfa.ExtractWith(doc, prefixes), nil
}

// DublinCore extracts only Dublin Core metadata.
func (s *Service) DublinCore(htmlText string) (*domain.DublinCore, error) {
	doc, err := htmldoc.Parse(htmlText, "")
	if err != nil {
		return nil, err
	}
	return dublincore.Extract(doc), nil
}

// DiscoverManifest finds the document's manifest link, if any.
func (s *Service) DiscoverManifest(htmlText, baseURL string) (*domain.ManifestDiscovery, error) {
	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}
	return manifest.Discover(doc), nil
}

// ParseManifest parses manifest JSON fetched by the caller. Unlike the HTML
// extractors, a malformed manifest surfaces as an error: a manifest is one
// self-contained document with no partial-success shape.
func (s *Service) ParseManifest(jsonText, manifestURL string) (*domain.WebAppManifest, error) {
	return manifest.Parse(jsonText, manifestURL)
}

// OEmbed discovers the document's oEmbed endpoints, if any.
func (s *Service) OEmbed(htmlText, baseURL string) (*domain.OEmbedDiscovery, error) {
	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}
	return oembed.Extract(doc), nil
}

// RelLinks extracts the document's link relationships grouped by rel token.
func (s *Service) RelLinks(htmlText, baseURL string) (map[string][]domain.RelLink, error) {
	doc, err := htmldoc.Parse(htmlText, baseURL)
	if err != nil {
		return nil, err
	}
	return rellinks.Extract(doc), nil
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

// contentHash keys cache entries by the exact input pair.
func contentHash(htmlText, baseURL string) string {
	h := sha256.New()
	h.Write([]byte(htmlText))
	h.Write([]byte{0})
	h.Write([]byte(baseURL))
	return hex.EncodeToString(h.Sum(nil))
}
