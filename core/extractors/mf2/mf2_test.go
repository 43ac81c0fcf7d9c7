package mf2

import (
	"testing"

	"pagemeta-api/core/htmldoc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html, base string) *htmldoc.Document {
	t.Helper()
	doc, err := htmldoc.Parse(html, base)
	require.NoError(t, err)
	return doc
}

func TestExtract_HCard(t *testing.T) {
	html := `
		<div class="h-card">
			<span class="p-name">Jane Doe</span>
			<a class="u-url" href="https://example.com">Website</a>
			<img class="u-photo" src="/photo.jpg" alt="Photo">
		</div>`
	result := Extract(parse(t, html, "https://example.com/about"))

	cards := result["h-card"]
	require.Len(t, cards, 1)
	card := cards[0]
	assert.Equal(t, []string{"h-card"}, card.Types)
	assert.Equal(t, "Jane Doe", card.Properties["name"][0].Text)
	assert.Equal(t, "https://example.com", card.Properties["url"][0].URL)
	assert.Equal(t, "https://example.com/photo.jpg", card.Properties["photo"][0].URL)
}

func TestExtract_NestedCardUnderPropertyClass(t *testing.T) {
	html := `
		<article class="h-entry">
			<h1 class="p-name">Post Title</h1>
			<div class="p-author h-card">
				<span class="p-name">Jane</span>
			</div>
		</article>`
	result := Extract(parse(t, html, ""))

	entries := result["h-entry"]
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Post Title", entry.Properties["name"][0].Text)

	authors := entry.Properties["author"]
	require.Len(t, authors, 1)
	author := authors[0].Nested
	require.NotNil(t, author)
	assert.Equal(t, []string{"h-card"}, author.Types)
	assert.Equal(t, "Jane", author.Properties["name"][0].Text)

	// The nested card's properties stay out of the entry.
	require.Len(t, entry.Properties["name"], 1)
	// Nested roots claimed by a property do not surface as top-level items.
	assert.NotContains(t, result, "h-card")
}

func TestExtract_PropertylessNestedRootBecomesChild(t *testing.T) {
	html := `
		<div class="h-feed">
			<span class="p-name">My Blog</span>
			<article class="h-entry"><h1 class="p-name">Post 1</h1></article>
			<article class="h-entry"><h1 class="p-name">Post 2</h1></article>
		</div>`
	result := Extract(parse(t, html, ""))

	feeds := result["h-feed"]
	require.Len(t, feeds, 1)
	require.Len(t, feeds[0].Children, 2)
	assert.Equal(t, "Post 1", feeds[0].Children[0].Properties["name"][0].Text)
	assert.Equal(t, "Post 2", feeds[0].Children[1].Properties["name"][0].Text)
}

func TestExtract_CategoryOrderPreserved(t *testing.T) {
	html := `
		<div class="h-entry">
			<span class="p-name">Post</span>
			<span class="p-category">go</span>
			<span class="p-category">html</span>
			<span class="p-category">metadata</span>
		</div>`
	result := Extract(parse(t, html, ""))

	entries := result["h-entry"]
	require.Len(t, entries, 1)
	categories := entries[0].Properties["category"]
	require.Len(t, categories, 3)
	assert.Equal(t, "go", categories[0].Text)
	assert.Equal(t, "html", categories[1].Text)
	assert.Equal(t, "metadata", categories[2].Text)
}

func TestExtract_EmailAndTelSchemesStripped(t *testing.T) {
	html := `
		<div class="h-card">
			<span class="p-name">Jane</span>
			<a class="u-email" href="mailto:jane@example.com">email</a>
			<a class="u-tel" href="tel:+15551234567">call</a>
		</div>`
	result := Extract(parse(t, html, "https://example.com/"))

	card := result["h-card"][0]
	assert.Equal(t, "jane@example.com", card.Properties["email"][0].URL)
	assert.Equal(t, "+15551234567", card.Properties["tel"][0].URL)
}

func TestExtract_DatetimeAttributePreferred(t *testing.T) {
	html := `
		<div class="h-event">
			<span class="p-name">Launch</span>
			<time class="dt-start" datetime="2024-06-15T10:00:00">June 15</time>
			<span class="dt-duration">PT2H</span>
		</div>`
	result := Extract(parse(t, html, ""))

	event := result["h-event"][0]
	assert.Equal(t, "2024-06-15T10:00:00", event.Properties["start"][0].Text)
	assert.Equal(t, "PT2H", event.Properties["duration"][0].Text)
}

func TestExtract_EmbeddedMarkupKeptUnparsed(t *testing.T) {
	html := `
		<article class="h-entry">
			<h1 class="p-name">Post</h1>
			<div class="e-content"><p>Hello <b>world</b></p></div>
		</article>`
	result := Extract(parse(t, html, ""))

	entry := result["h-entry"][0]
	assert.Equal(t, "<p>Hello <b>world</b></p>", entry.Properties["content"][0].Text)
}

func TestExtract_ImpliedNameFromImageAlt(t *testing.T) {
	html := `<div class="h-card"><img class="u-photo" src="/jane.jpg" alt="Jane Doe"></div>`
	result := Extract(parse(t, html, "https://example.com/"))

	card := result["h-card"][0]
	require.Len(t, card.Properties["name"], 1)
	assert.Equal(t, "Jane Doe", card.Properties["name"][0].Text)
}

func TestExtract_ImpliedNameFromText(t *testing.T) {
	html := `<a class="h-card" href="/jane">Jane Doe</a>`
	result := Extract(parse(t, html, ""))

	card := result["h-card"][0]
	require.Len(t, card.Properties["name"], 1)
	assert.Equal(t, "Jane Doe", card.Properties["name"][0].Text)
}

func TestExtract_ExplicitNameSuppressesImplied(t *testing.T) {
	html := `
		<div class="h-card">
			<span class="p-name">Jane</span>
			extra text
		</div>`
	result := Extract(parse(t, html, ""))

	card := result["h-card"][0]
	require.Len(t, card.Properties["name"], 1)
	assert.Equal(t, "Jane", card.Properties["name"][0].Text)
}

func TestExtract_MultipleRootClassesOneItem(t *testing.T) {
	html := `<div class="h-card h-adr"><span class="p-name">Jane</span></div>`
	result := Extract(parse(t, html, ""))

	require.Len(t, result["h-card"], 1)
	require.Len(t, result["h-adr"], 1)
	assert.Same(t, result["h-card"][0], result["h-adr"][0])
	assert.Equal(t, []string{"h-card", "h-adr"}, result["h-card"][0].Types)
}

func TestExtract_AbbrTitleAsPlainValue(t *testing.T) {
	html := `
		<div class="h-geo">
			<abbr class="p-latitude" title="37.7749">N</abbr>
			<abbr class="p-longitude" title="-122.4194">W</abbr>
		</div>`
	result := Extract(parse(t, html, ""))

	geo := result["h-geo"][0]
	assert.Equal(t, "37.7749", geo.Properties["latitude"][0].Text)
	assert.Equal(t, "-122.4194", geo.Properties["longitude"][0].Text)
}

func TestExtractType_FiltersByRootClass(t *testing.T) {
	html := `
		<div class="h-card"><span class="p-name">Jane</span></div>
		<div class="h-event"><span class="p-name">Launch</span></div>`
	doc := parse(t, html, "")

	cards := ExtractType(doc, "h-card")
	require.Len(t, cards, 1)
	assert.Equal(t, "Jane", cards[0].Properties["name"][0].Text)

	assert.Empty(t, ExtractType(doc, "h-recipe"))
}

func TestExtract_NoItemsReturnsNil(t *testing.T) {
	result := Extract(parse(t, "<html><body><p>plain</p></body></html>", ""))
	assert.Nil(t, result)
}
