package oembed

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

func TestExtract_JSONAndXMLEndpoints(t *testing.T) {
	html := `
		<link rel="alternate" type="application/json+oembed" href="/oembed?format=json" title="oEmbed">
		<link rel="alternate" type="text/xml+oembed" href="/oembed?format=xml">`
	o := Extract(parse(t, html, "https://example.com/video/1"))

	require.NotNil(t, o)
	assert.Equal(t, "https://example.com/oembed?format=json", o.JSONURL)
	assert.Equal(t, "https://example.com/oembed?format=xml", o.XMLURL)
	assert.Equal(t, "oEmbed", o.Title)
}

func TestExtract_FirstEndpointOfEachTypeWins(t *testing.T) {
	html := `
		<link rel="alternate" type="application/json+oembed" href="/first.json">
		<link rel="alternate" type="application/json+oembed" href="/second.json">`
	o := Extract(parse(t, html, "https://example.com/"))

	require.NotNil(t, o)
	assert.Equal(t, "https://example.com/first.json", o.JSONURL)
}

func TestExtract_ApplicationXMLVariantAccepted(t *testing.T) {
	html := `<link rel="alternate" type="application/xml+oembed" href="https://example.com/o.xml">`
	o := Extract(parse(t, html, ""))

	require.NotNil(t, o)
	assert.Equal(t, "https://example.com/o.xml", o.XMLURL)
}

func TestExtract_RequiresAlternateRel(t *testing.T) {
	html := `<link rel="stylesheet" type="application/json+oembed" href="/oembed.json">`
	assert.Nil(t, Extract(parse(t, html, "")))
}

func TestExtract_NoEndpointsReturnsNil(t *testing.T) {
	html := `<link rel="alternate" type="application/rss+xml" href="/feed.xml">`
	assert.Nil(t, Extract(parse(t, html, "")))
}
