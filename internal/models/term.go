// Package models defines the domain types for the terms site generator.
package models

import "time"

// Term is the normalized in-memory representation of one glossary entry.
// It is built from a single JSON source file whose filename stem becomes
// the slug.
type Term struct {
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Date             string   `json:"date"`
	Description      string   `json:"description"`
	Links            []Link   `json:"links"`
	SameAs           []string `json:"sameAs,omitempty"`
	Aliases          []string `json:"aliases,omitempty"`
	TermID           string   `json:"termId,omitempty"`
	TemporalCoverage string   `json:"temporalCoverage,omitempty"`
	StartDate        string   `json:"startDate,omitempty"`
	EndDate          string   `json:"endDate,omitempty"`
	DateISO          string   `json:"dateISO,omitempty"`

	// Bookkeeping, never serialized.
	SourcePath string    `json:"-"`
	ModTime    time.Time `json:"-"`
}

// Link is one reference from a term back to the work where it appeared.
// Order is significant: the first link determines the term's relationship
// classification in the structured-data graph.
type Link struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// FirstLink returns the URL of the first link, or empty string if the term
// has no links (which a validated term never does).
func (t *Term) FirstLink() string {
	if len(t.Links) == 0 {
		return ""
	}
	return t.Links[0].URL
}
