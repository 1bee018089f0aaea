package models

// Site describes the published site: URLs, display copy, and the identity
// entities embedded in the structured-data graph. It is loaded from the
// `site:` section of the config file.
type Site struct {
	// BaseURL is the canonical URL of the glossary, with trailing slash.
	BaseURL  string `yaml:"base_url"`
	HomeURL  string `yaml:"home_url"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	// Description is used for the meta tag and the WebPage/DefinedTermSet nodes.
	Description string `yaml:"description"`
	// Intro is the index page lead paragraph; the renderer prefixes it
	// with the term count.
	Intro    string `yaml:"intro"`
	Language string `yaml:"language"`
	License  string `yaml:"license"`

	Person    Person    `yaml:"person"`
	Publisher Publisher `yaml:"publisher"`
	Website   Website   `yaml:"website"`
	Page      Page      `yaml:"page"`
	TermSet   TermSet   `yaml:"termset"`

	// AnchorResolver is the base URL identifiers resolve at; the UUID hex
	// of a node is appended.
	AnchorResolver string `yaml:"anchor_resolver"`

	// NoWorkRoots are root URLs that never classify as a defining work
	// for a term's first link.
	NoWorkRoots []string `yaml:"no_work_roots"`
	// ArchiveHost marks first links that classify as forum postings.
	ArchiveHost string `yaml:"archive_host"`
	// SeriesSegment marks first links that classify as a series.
	SeriesSegment string `yaml:"series_segment"`

	Analytics Analytics `yaml:"analytics"`
}

// TermURL returns the canonical URL for a slug: BaseURL + slug + "/".
func (s *Site) TermURL(slug string) string {
	return s.BaseURL + slug + "/"
}

// Person is the author entity of the identity graph.
type Person struct {
	ID             string   `yaml:"id"` // graph @id, a fixed fragment URL
	Name           string   `yaml:"name"`
	GivenName      string   `yaml:"given_name"`
	FamilyName     string   `yaml:"family_name"`
	AlternateNames []string `yaml:"alternate_names"`
	URL            string   `yaml:"url"`
	UUID           string   `yaml:"uuid"` // urn:uuid identifier
	SameAs         []string `yaml:"same_as"`
}

// Publisher is the publishing organization of the identity graph.
type Publisher struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	UUID string `yaml:"uuid"`
}

// Website is the website node of the identity graph.
type Website struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Page holds the WebPage node's fixed identifier and dates.
type Page struct {
	ID           string `yaml:"id"`
	DateCreated  string `yaml:"date_created"`
	DateModified string `yaml:"date_modified"`
}

// TermSet holds the DefinedTermSet node's fixed identifier.
type TermSet struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Analytics optionally injects a page-view tracking script.
type Analytics struct {
	ScriptURL string `yaml:"script_url"`
	WebsiteID string `yaml:"website_id"`
}
