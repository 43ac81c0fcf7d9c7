package dublincore

import (
	"testing"

	"pagemeta-api/core/htmldoc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *htmldoc.Document {
	t.Helper()
	doc, err := htmldoc.Parse(html, "")
	require.NoError(t, err)
	return doc
}

func TestExtract_DCPrefix(t *testing.T) {
	html := `
		<meta name="DC.title" content="Annual Report">
		<meta name="DC.creator" content="Jane Doe">
		<meta name="DC.date" content="2024-01-15">
		<meta name="DC.language" content="en">`
	dc := Extract(parse(t, html))

	require.NotNil(t, dc)
	assert.Equal(t, "Annual Report", dc.Title)
	assert.Equal(t, []string{"Jane Doe"}, dc.Creator)
	assert.Equal(t, "2024-01-15", dc.Date)
	assert.Equal(t, "en", dc.Language)
}

func TestExtract_DCTermsPrefix(t *testing.T) {
	html := `
		<meta name="dcterms.title" content="Report">
		<meta name="dcterms.rights" content="CC-BY-4.0">`
	dc := Extract(parse(t, html))

	require.NotNil(t, dc)
	assert.Equal(t, "Report", dc.Title)
	assert.Equal(t, "CC-BY-4.0", dc.Rights)
}

func TestExtract_RepeatedElementsAccumulate(t *testing.T) {
	html := `
		<meta name="DC.creator" content="Jane Doe">
		<meta name="DC.creator" content="John Smith">
		<meta name="DC.subject" content="economics">
		<meta name="DC.subject" content="finance">
		<meta name="DC.contributor" content="Editor">`
	dc := Extract(parse(t, html))

	require.NotNil(t, dc)
	assert.Equal(t, []string{"Jane Doe", "John Smith"}, dc.Creator)
	assert.Equal(t, []string{"economics", "finance"}, dc.Subject)
	assert.Equal(t, []string{"Editor"}, dc.Contributor)
}

func TestExtract_CaseInsensitiveNames(t *testing.T) {
	html := `<meta name="dc.Title" content="Lowered">`
	dc := Extract(parse(t, html))

	require.NotNil(t, dc)
	assert.Equal(t, "Lowered", dc.Title)
}

func TestExtract_NonDCTagsIgnored(t *testing.T) {
	html := `<meta name="description" content="not dublin core">`
	assert.Nil(t, Extract(parse(t, html)))
}
