package jsonld

// Node types for the schema.org structured-data graph. Only the properties
// the site emits are modelled; everything optional carries omitempty so the
// serialized graph stays minimal.

// Ref is a reference to another node by @id.
type Ref struct {
	ID string `json:"@id"`
}

// PropertyValue is a typed identifier attached to an entity.
type PropertyValue struct {
	Type       string `json:"@type"`
	PropertyID string `json:"propertyID"`
	Value      string `json:"value"`
}

// PersonNode is the author entity.
type PersonNode struct {
	Type          string          `json:"@type"`
	ID            string          `json:"@id"`
	Name          string          `json:"name"`
	GivenName     string          `json:"givenName,omitempty"`
	FamilyName    string          `json:"familyName,omitempty"`
	AlternateName []string        `json:"alternateName,omitempty"`
	Identifier    []PropertyValue `json:"identifier,omitempty"`
	URL           string          `json:"url,omitempty"`
	SameAs        []string        `json:"sameAs,omitempty"`
}

// OrganizationNode is the publisher entity.
type OrganizationNode struct {
	Type       string          `json:"@type"`
	ID         string          `json:"@id"`
	Name       string          `json:"name"`
	Identifier []PropertyValue `json:"identifier,omitempty"`
	URL        string          `json:"url,omitempty"`
	Founder    *Ref            `json:"founder,omitempty"`
	SameAs     []string        `json:"sameAs,omitempty"`
}

// WebSiteNode is the site entity.
type WebSiteNode struct {
	Type       string `json:"@type"`
	ID         string `json:"@id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Publisher  *Ref   `json:"publisher,omitempty"`
	MainEntity *Ref   `json:"mainEntity,omitempty"`
}

// WebPageNode is the glossary index page entity.
type WebPageNode struct {
	Type         string `json:"@type"`
	ID           string `json:"@id"`
	URL          string `json:"url"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IsPartOf     *Ref   `json:"isPartOf,omitempty"`
	About        *Ref   `json:"about,omitempty"`
	Author       *Ref   `json:"author,omitempty"`
	Publisher    *Ref   `json:"publisher,omitempty"`
	DateCreated  string `json:"dateCreated,omitempty"`
	DateModified string `json:"dateModified,omitempty"`
	InLanguage   string `json:"inLanguage,omitempty"`
	License      string `json:"license,omitempty"`
}

// DefinedTermSetNode is the term collection entity.
type DefinedTermSetNode struct {
	Type           string `json:"@type"`
	ID             string `json:"@id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	URL            string `json:"url"`
	Creator        *Ref   `json:"creator,omitempty"`
	Publisher      *Ref   `json:"publisher,omitempty"`
	InLanguage     string `json:"inLanguage,omitempty"`
	License        string `json:"license,omitempty"`
	HasDefinedTerm []Ref  `json:"hasDefinedTerm,omitempty"`
}

// Relation is the tagged classification of a term's first linked work.
type Relation struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

// DefinedTermNode is one glossary term entity.
type DefinedTermNode struct {
	Type             string          `json:"@type"`
	ID               string          `json:"@id"`
	Name             string          `json:"name"`
	TermCode         string          `json:"termCode"`
	Description      string          `json:"description"`
	InDefinedTermSet Ref             `json:"inDefinedTermSet"`
	URL              string          `json:"url"`
	Creator          *Ref            `json:"creator,omitempty"`
	DateCreated      string          `json:"dateCreated,omitempty"`
	TemporalCoverage string          `json:"temporalCoverage,omitempty"`
	StartDate        string          `json:"startDate,omitempty"`
	EndDate          string          `json:"endDate,omitempty"`
	IsDefinedIn      *Relation       `json:"isDefinedIn,omitempty"`
	Identifier       []PropertyValue `json:"identifier,omitempty"`
	SameAs           []string        `json:"sameAs,omitempty"`
}

// ListItem is one breadcrumb element.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbNode is the breadcrumb trail for the glossary.
type BreadcrumbNode struct {
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// Document is a complete JSON-LD document with a schema.org context.
type Document struct {
	Context string `json:"@context"`
	Graph   []any  `json:"@graph"`
}
