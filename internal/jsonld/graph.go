// Package jsonld assembles the schema.org structured-data graph embedded
// in the generated pages: the author, publisher, website, and term-set
// entities plus one DefinedTerm node per glossary term.
package jsonld

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lowerpower/www.mycal.net/internal/models"
)

const schemaContext = "https://schema.org"

// Builder assembles JSON-LD documents for a configured site.
type Builder struct {
	site       models.Site
	classifier *Classifier
}

// New creates a Builder for the given site.
func New(site models.Site) *Builder {
	return &Builder{site: site, classifier: NewClassifier(site)}
}

// identifiers returns the canonical-uuid / AnchorID property pair for a
// urn:uuid identifier. Nodes without a UUID get none.
func (b *Builder) identifiers(urn string) []PropertyValue {
	if urn == "" {
		return nil
	}
	out := []PropertyValue{
		{Type: "PropertyValue", PropertyID: "canonical-uuid", Value: urn},
	}
	if b.site.AnchorResolver != "" {
		hex := strings.TrimPrefix(urn, "urn:uuid:")
		out = append(out, PropertyValue{
			Type: "PropertyValue", PropertyID: "AnchorID", Value: b.site.AnchorResolver + hex,
		})
	}
	return out
}

// anchorURL returns the resolver URL for a urn:uuid, or empty string.
func (b *Builder) anchorURL(urn string) string {
	if urn == "" || b.site.AnchorResolver == "" {
		return ""
	}
	return b.site.AnchorResolver + strings.TrimPrefix(urn, "urn:uuid:")
}

func (b *Builder) personNode() PersonNode {
	p := b.site.Person
	sameAs := p.SameAs
	if anchor := b.anchorURL(p.UUID); anchor != "" {
		sameAs = append([]string{anchor}, p.SameAs...)
	}
	return PersonNode{
		Type:          "Person",
		ID:            p.ID,
		Name:          p.Name,
		GivenName:     p.GivenName,
		FamilyName:    p.FamilyName,
		AlternateName: p.AlternateNames,
		Identifier:    b.identifiers(p.UUID),
		URL:           p.URL,
		SameAs:        sameAs,
	}
}

func (b *Builder) publisherNode() OrganizationNode {
	o := b.site.Publisher
	node := OrganizationNode{
		Type:       "Organization",
		ID:         o.ID,
		Name:       o.Name,
		Identifier: b.identifiers(o.UUID),
		URL:        o.URL,
		Founder:    &Ref{ID: b.site.Person.ID},
	}
	if anchor := b.anchorURL(o.UUID); anchor != "" {
		node.SameAs = []string{anchor}
	}
	return node
}

func (b *Builder) websiteNode() WebSiteNode {
	w := b.site.Website
	return WebSiteNode{
		Type:       "WebSite",
		ID:         w.ID,
		Name:       w.Name,
		URL:        w.URL,
		Publisher:  &Ref{ID: b.site.Publisher.ID},
		MainEntity: &Ref{ID: b.site.Person.ID},
	}
}

func (b *Builder) webPageNode() WebPageNode {
	return WebPageNode{
		Type:         "WebPage",
		ID:           b.site.Page.ID,
		URL:          b.site.BaseURL,
		Name:         b.site.Title + " — " + b.site.Subtitle,
		Description:  b.site.Description,
		IsPartOf:     &Ref{ID: b.site.Website.ID},
		About:        &Ref{ID: b.site.TermSet.ID},
		Author:       &Ref{ID: b.site.Person.ID},
		Publisher:    &Ref{ID: b.site.Publisher.ID},
		DateCreated:  b.site.Page.DateCreated,
		DateModified: b.site.Page.DateModified,
		InLanguage:   b.site.Language,
		License:      b.site.License,
	}
}

func (b *Builder) termSetNode(terms []models.Term) DefinedTermSetNode {
	refs := make([]Ref, 0, len(terms))
	for _, t := range terms {
		refs = append(refs, Ref{ID: b.site.TermURL(t.Slug)})
	}
	return DefinedTermSetNode{
		Type:           "DefinedTermSet",
		ID:             b.site.TermSet.ID,
		Name:           b.site.TermSet.Name,
		Description:    b.site.Description,
		URL:            b.site.BaseURL,
		Creator:        &Ref{ID: b.site.Person.ID},
		Publisher:      &Ref{ID: b.site.Publisher.ID},
		InLanguage:     b.site.Language,
		License:        b.site.License,
		HasDefinedTerm: refs,
	}
}

// TermNode builds the DefinedTerm entity for one term. Only the first link
// participates in the isDefinedIn classification; later links are
// presentational.
func (b *Builder) TermNode(t models.Term) DefinedTermNode {
	dateCreated := t.Date
	if t.DateISO != "" {
		dateCreated = t.DateISO
	}
	node := DefinedTermNode{
		Type:             "DefinedTerm",
		ID:               b.site.TermURL(t.Slug),
		Name:             t.Name,
		TermCode:         t.Slug,
		Description:      t.Description,
		InDefinedTermSet: Ref{ID: b.site.TermSet.ID},
		URL:              b.site.TermURL(t.Slug),
		Creator:          &Ref{ID: b.site.Person.ID},
		DateCreated:      dateCreated,
		TemporalCoverage: t.TemporalCoverage,
		StartDate:        t.StartDate,
		EndDate:          t.EndDate,
		IsDefinedIn:      b.classifier.Classify(t.FirstLink()),
		SameAs:           t.SameAs,
	}
	if t.TermID != "" {
		node.Identifier = []PropertyValue{
			{Type: "PropertyValue", PropertyID: "canonical-uuid", Value: t.TermID},
		}
	}
	return node
}

func (b *Builder) breadcrumbNode() BreadcrumbNode {
	return BreadcrumbNode{
		Type: "BreadcrumbList",
		ItemListElement: []ListItem{
			{Type: "ListItem", Position: 1, Name: "Home", Item: b.site.HomeURL},
			{Type: "ListItem", Position: 2, Name: b.site.Title, Item: b.site.BaseURL},
		},
	}
}

// Build assembles the full graph for the index page: identity entities,
// the term set, every term, and the breadcrumb trail.
func (b *Builder) Build(terms []models.Term) *Document {
	graph := []any{
		b.personNode(),
		b.publisherNode(),
		b.websiteNode(),
		b.webPageNode(),
		b.termSetNode(terms),
	}
	for _, t := range terms {
		graph = append(graph, b.TermNode(t))
	}
	graph = append(graph, b.breadcrumbNode())
	return &Document{Context: schemaContext, Graph: graph}
}

// Subset assembles the minimal graph for a single term page: the term, the
// set it belongs to, the shared identity entities, and the breadcrumb.
func (b *Builder) Subset(t models.Term) *Document {
	return &Document{
		Context: schemaContext,
		Graph: []any{
			b.personNode(),
			b.publisherNode(),
			b.websiteNode(),
			b.termSetNode([]models.Term{t}),
			b.TermNode(t),
			b.breadcrumbNode(),
		},
	}
}

// Marshal serializes a document as indented JSON for embedding in a page.
func Marshal(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("jsonld: marshal: %w", err)
	}
	return data, nil
}
