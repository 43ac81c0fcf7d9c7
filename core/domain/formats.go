// ABOUTME: Output models for the single-key-value metadata formats
// ABOUTME: Basic meta tags, Open Graph, Twitter Cards, Dublin Core, oEmbed, rel-links

package domain

// MetaTags holds the basic HTML head metadata.
type MetaTags struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Author      string   `json:"author,omitempty"`
	Canonical   string   `json:"canonical,omitempty"`
	Robots      string   `json:"robots,omitempty"`
	Generator   string   `json:"generator,omitempty"`
	ThemeColor  string   `json:"theme_color,omitempty"`
	Viewport    string   `json:"viewport,omitempty"`
	Charset     string   `json:"charset,omitempty"`

	GoogleSiteVerification     string `json:"google_site_verification,omitempty"`
	FacebookDomainVerification string `json:"facebook_domain_verification,omitempty"`
}

// IsEmpty reports whether no meta tag was found at all.
func (m *MetaTags) IsEmpty() bool {
	return m.Title == "" && m.Description == "" && len(m.Keywords) == 0 &&
		m.Author == "" && m.Canonical == "" && m.Robots == "" &&
		m.Generator == "" && m.ThemeColor == "" && m.Viewport == "" &&
		m.Charset == "" && m.GoogleSiteVerification == "" &&
		m.FacebookDomainVerification == ""
}

// OGMedia is one Open Graph image, video, or audio entry together with its
// structured sub-properties.
type OGMedia struct {
	URL       string `json:"url"`
	SecureURL string `json:"secure_url,omitempty"`
	Type      string `json:"type,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Alt       string `json:"alt,omitempty"`
}

// OpenGraph holds Open Graph protocol metadata.
type OpenGraph struct {
	Title       string    `json:"title,omitempty"`
	Type        string    `json:"type,omitempty"`
	URL         string    `json:"url,omitempty"`
	Description string    `json:"description,omitempty"`
	SiteName    string    `json:"site_name,omitempty"`
	Locale      string    `json:"locale,omitempty"`
	Determiner  string    `json:"determiner,omitempty"`
	Images      []OGMedia `json:"images,omitempty"`
	Videos      []OGMedia `json:"videos,omitempty"`
	Audio       []OGMedia `json:"audio,omitempty"`
}

// IsEmpty reports whether no og: tag was found.
func (og *OpenGraph) IsEmpty() bool {
	return og.Title == "" && og.Type == "" && og.URL == "" &&
		og.Description == "" && og.SiteName == "" && og.Locale == "" &&
		og.Determiner == "" && len(og.Images) == 0 &&
		len(og.Videos) == 0 && len(og.Audio) == 0
}

// TwitterCard holds Twitter Card metadata.
type TwitterCard struct {
	Card         string `json:"card,omitempty"`
	Site         string `json:"site,omitempty"`
	SiteID       string `json:"site_id,omitempty"`
	Creator      string `json:"creator,omitempty"`
	CreatorID    string `json:"creator_id,omitempty"`
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	ImageAlt     string `json:"image_alt,omitempty"`
	Player       string `json:"player,omitempty"`
	PlayerWidth  int    `json:"player_width,omitempty"`
	PlayerHeight int    `json:"player_height,omitempty"`
}

// IsEmpty reports whether no twitter: tag was found.
func (t *TwitterCard) IsEmpty() bool {
	return t.Card == "" && t.Site == "" && t.SiteID == "" &&
		t.Creator == "" && t.CreatorID == "" && t.Title == "" &&
		t.Description == "" && t.Image == "" && t.ImageAlt == "" &&
		t.Player == "" && t.PlayerWidth == 0 && t.PlayerHeight == 0
}

// DublinCore holds Dublin Core metadata from DC.* / dcterms.* meta tags.
// Fields that commonly repeat in the wild are lists.
type DublinCore struct {
	Title       string   `json:"title,omitempty"`
	Creator     []string `json:"creator,omitempty"`
	Subject     []string `json:"subject,omitempty"`
	Description string   `json:"description,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	Contributor []string `json:"contributor,omitempty"`
	Date        string   `json:"date,omitempty"`
	Type        string   `json:"type,omitempty"`
	Format      string   `json:"format,omitempty"`
	Identifier  string   `json:"identifier,omitempty"`
	Source      string   `json:"source,omitempty"`
	Language    string   `json:"language,omitempty"`
	Relation    string   `json:"relation,omitempty"`
	Coverage    string   `json:"coverage,omitempty"`
	Rights      string   `json:"rights,omitempty"`
}

// IsEmpty reports whether no Dublin Core tag was found.
func (dc *DublinCore) IsEmpty() bool {
	return dc.Title == "" && len(dc.Creator) == 0 && len(dc.Subject) == 0 &&
		dc.Description == "" && dc.Publisher == "" && len(dc.Contributor) == 0 &&
		dc.Date == "" && dc.Type == "" && dc.Format == "" &&
		dc.Identifier == "" && dc.Source == "" && dc.Language == "" &&
		dc.Relation == "" && dc.Coverage == "" && dc.Rights == ""
}

// OEmbedDiscovery holds discovered oEmbed endpoint links.
type OEmbedDiscovery struct {
	JSONURL string `json:"json_url,omitempty"`
	XMLURL  string `json:"xml_url,omitempty"`
	Title   string `json:"title,omitempty"`
}

// IsEmpty reports whether no oEmbed endpoint link was found.
func (o *OEmbedDiscovery) IsEmpty() bool {
	return o.JSONURL == "" && o.XMLURL == ""
}

// RelLink is one link element grouped under a rel token.
type RelLink struct {
	Href     string `json:"href"`
	Type     string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	Hreflang string `json:"hreflang,omitempty"`
	Media    string `json:"media,omitempty"`
}
