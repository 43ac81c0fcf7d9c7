// ABOUTME: Web App Manifest models covering discovery links and parsed manifest documents
// ABOUTME: Optional fields are omitted from JSON output rather than emitted as null

package domain

// ManifestDiscovery describes the first manifest link found in a document.
// A nil ManifestDiscovery means no manifest link exists.
type ManifestDiscovery struct {
	// Href is the manifest URL, resolved against the document base.
	Href string `json:"href,omitempty"`

	// CrossOrigin carries the link's crossorigin attribute when present.
	CrossOrigin string `json:"crossorigin,omitempty"`
}

// WebAppManifest is a parsed web app manifest document. Recognized scalar
// fields are copied verbatim except start_url and scope, which resolve
// against the manifest's own URL.
type WebAppManifest struct {
	Name            string   `json:"name,omitempty"`
	ShortName       string   `json:"short_name,omitempty"`
	Description     string   `json:"description,omitempty"`
	Display         string   `json:"display,omitempty"`
	Orientation     string   `json:"orientation,omitempty"`
	ThemeColor      string   `json:"theme_color,omitempty"`
	BackgroundColor string   `json:"background_color,omitempty"`
	Scope           string   `json:"scope,omitempty"`
	StartURL        string   `json:"start_url,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	IARCRatingID    string   `json:"iarc_rating_id,omitempty"`
	Dir             string   `json:"dir,omitempty"`
	Lang            string   `json:"lang,omitempty"`

	PreferRelatedApplications *bool                `json:"prefer_related_applications,omitempty"`
	RelatedApplications       []RelatedApplication `json:"related_applications,omitempty"`

	Icons       []ManifestImage    `json:"icons,omitempty"`
	Shortcuts   []ManifestShortcut `json:"shortcuts,omitempty"`
	Screenshots []ManifestImage    `json:"screenshots,omitempty"`
}

// ManifestImage is one icon or screenshot entry with its src resolved
// against the manifest URL.
type ManifestImage struct {
	Src      string `json:"src,omitempty"`
	Sizes    string `json:"sizes,omitempty"`
	Type     string `json:"type,omitempty"`
	Purpose  string `json:"purpose,omitempty"`
	Label    string `json:"label,omitempty"`
	Platform string `json:"platform,omitempty"`
}

// ManifestShortcut is one app shortcut, with its url and nested icon srcs
// resolved against the manifest URL.
type ManifestShortcut struct {
	Name        string          `json:"name,omitempty"`
	ShortName   string          `json:"short_name,omitempty"`
	Description string          `json:"description,omitempty"`
	URL         string          `json:"url,omitempty"`
	Icons       []ManifestImage `json:"icons,omitempty"`
}

// RelatedApplication points at a native application related to the site.
type RelatedApplication struct {
	Platform string `json:"platform,omitempty"`
	URL      string `json:"url,omitempty"`
	ID       string `json:"id,omitempty"`
}
