package extract

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	coreerrors "pagemeta-api/core/errors"
	"pagemeta-api/core/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	data, ok := c.entries[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return data, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func newTestService() *Service {
	return NewService(interfaces.Dependencies{Logger: nopLogger{}})
}

const richPage = `
	<html><head>
		<title>Rich Page</title>
		<meta name="description" content="A bit of everything">
		<meta property="og:title" content="Rich Page OG">
		<meta name="twitter:card" content="summary">
		<meta name="DC.creator" content="Jane Doe">
		<link rel="manifest" href="/manifest.json">
		<link rel="alternate" type="application/json+oembed" href="/oembed.json">
		<link rel="icon" href="/favicon.ico">
		<script type="application/ld+json">{"@type": "WebPage"}</script>
	</head><body>
		<div itemscope itemtype="https://schema.org/Person">
			<span itemprop="name">Jane Doe</span>
		</div>
		<div class="h-card"><span class="p-name">Jane Doe</span></div>
		<p vocab="https://schema.org/" typeof="Person"><span property="name">Jane Doe</span></p>
	</body></html>`

func TestExtractAll_EmptyInput(t *testing.T) {
	_, err := newTestService().ExtractAll(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, coreerrors.IsInvalidInput(err))
}

func TestExtractAll_InvalidUTF8(t *testing.T) {
	_, err := newTestService().ExtractAll(context.Background(), "<html>\xff\xfe</html>", "")
	require.Error(t, err)
	assert.True(t, coreerrors.IsInvalidInput(err))
}

func TestExtractAll_EmptyDocumentHasNoFormats(t *testing.T) {
	result, err := newTestService().ExtractAll(context.Background(), "<html></html>", "")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Zero(t, result.FormatCount())
	assert.Nil(t, result.Meta)
	assert.Nil(t, result.OpenGraph)
	assert.Nil(t, result.Microdata)
	assert.Nil(t, result.Microformats)
}

func TestExtractAll_AllSlotsFilled(t *testing.T) {
	result, err := newTestService().ExtractAll(context.Background(), richPage, "https://example.com/page")
	require.NoError(t, err)

	require.NotNil(t, result.Meta)
	assert.Equal(t, "Rich Page", result.Meta.Title)
	require.NotNil(t, result.OpenGraph)
	assert.Equal(t, "Rich Page OG", result.OpenGraph.Title)
	require.NotNil(t, result.Twitter)
	assert.Equal(t, "summary", result.Twitter.Card)
	require.NotNil(t, result.DublinCore)
	require.NotNil(t, result.Manifest)
	assert.Equal(t, "https://example.com/manifest.json", result.Manifest.Href)
	require.NotNil(t, result.OEmbed)
	require.Len(t, result.JSONLD, 1)
	require.Len(t, result.Microdata, 1)
	assert.Equal(t, "Jane Doe", result.Microdata[0].Properties["name"][0].Text)
	require.Len(t, result.Microformats["h-card"], 1)
	require.Len(t, result.RDFa, 1)
	require.NotEmpty(t, result.RelLinks["icon"])

	assert.Equal(t, 11, result.FormatCount())
}

func TestExtractAll_CachesResult(t *testing.T) {
	cache := newFakeCache()
	svc := NewService(interfaces.Dependencies{Cache: cache, Logger: nopLogger{}})

	first, err := svc.ExtractAll(context.Background(), richPage, "https://example.com/page")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.ExtractAll(context.Background(), richPage, "https://example.com/page")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets, "second call should hit the cache")
	assert.Equal(t, first.Meta.Title, second.Meta.Title)
	assert.Equal(t, first.FormatCount(), second.FormatCount())
}

func TestExtractAll_CacheKeyIncludesBase(t *testing.T) {
	cache := newFakeCache()
	svc := NewService(interfaces.Dependencies{Cache: cache, Logger: nopLogger{}})

	_, err := svc.ExtractAll(context.Background(), richPage, "https://a.example/")
	require.NoError(t, err)
	_, err = svc.ExtractAll(context.Background(), richPage, "https://b.example/")
	require.NoError(t, err)

	assert.Equal(t, 2, cache.sets, "different bases must not share an entry")
}

func TestExtractAll_BrokenJSONLDLeavesOtherSlots(t *testing.T) {
	html := `
		<title>Still Here</title>
		<script type="application/ld+json">{broken</script>`
	result, err := newTestService().ExtractAll(context.Background(), html, "")
	require.NoError(t, err)
	assert.Empty(t, result.JSONLD)
	require.NotNil(t, result.Meta)
	assert.Equal(t, "Still Here", result.Meta.Title)
}

func TestPerFormatMethods(t *testing.T) {
	svc := newTestService()

	m, err := svc.Meta(richPage, "https://example.com/page")
	require.NoError(t, err)
	assert.Equal(t, "Rich Page", m.Title)

	og, err := svc.OpenGraph(richPage, "https://example.com/page")
	require.NoError(t, err)
	assert.Equal(t, "Rich Page OG", og.Title)

	card, err := svc.TwitterWithFallback(richPage, "https://example.com/page")
	require.NoError(t, err)
	assert.Equal(t, "Rich Page OG", card.Title, "fallback fills title from Open Graph")

	items, err := svc.Microdata(richPage, "https://example.com/page")
	require.NoError(t, err)
	require.Len(t, items, 1)

	cards, err := svc.MicroformatType(richPage, "https://example.com/page", "h-card")
	require.NoError(t, err)
	require.Len(t, cards, 1)

	entries, err := svc.JSONLD(richPage)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	discovery, err := svc.DiscoverManifest(richPage, "https://example.com/page")
	require.NoError(t, err)
	require.NotNil(t, discovery)
}

func TestParseManifest(t *testing.T) {
	svc := newTestService()

	m, err := svc.ParseManifest(`{"name": "App", "start_url": "/"}`, "https://app.example/manifest.json")
	require.NoError(t, err)
	assert.Equal(t, "https://app.example/", m.StartURL)

	_, err = svc.ParseManifest(`{bad`, "https://app.example/manifest.json")
	require.Error(t, err)
	assert.True(t, coreerrors.IsManifestParse(err))
}

func TestWithCacheTTL(t *testing.T) {
	svc := newTestService().WithCacheTTL(time.Minute)
	assert.Equal(t, time.Minute, svc.cacheTTL)
}
