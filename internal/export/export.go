// Package export serializes the normalized term list to machine-readable
// formats: a bulk JSON list, a line-delimited NDJSON stream, and the
// sitemap for the generated pages.
package export

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/lowerpower/www.mycal.net/internal/models"
)

// ExportedTerm is one term record as published in the exports: every public
// term field plus the derived canonical URL. Bookkeeping fields never leave
// the process.
type ExportedTerm struct {
	models.Term
	URL string `json:"url"`
}

// Records returns the export records for a term list, preserving order.
func Records(site models.Site, terms []models.Term) []ExportedTerm {
	out := make([]ExportedTerm, 0, len(terms))
	for _, t := range terms {
		out = append(out, ExportedTerm{Term: t, URL: site.TermURL(t.Slug)})
	}
	return out
}

// TermsJSON serializes the term list as one indented JSON array.
func TermsJSON(site models.Site, terms []models.Term) ([]byte, error) {
	data, err := json.MarshalIndent(Records(site, terms), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: terms json: %w", err)
	}
	return append(data, '\n'), nil
}

// TermsNDJSON serializes the term list as one JSON object per line.
func TermsNDJSON(site models.Site, terms []models.Term) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, rec := range Records(site, terms) {
		if err := enc.Encode(rec); err != nil {
			return nil, fmt.Errorf("export: terms ndjson: %w", err)
		}
	}
	return buf.Bytes(), nil
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap builds sitemap.xml: the index page plus one entry per canonical
// term URL. Alias redirect pages are not listed. Last-modified
// dates come from the source file mtimes; the index carries the newest one.
func Sitemap(site models.Site, terms []models.Term) ([]byte, error) {
	var newest time.Time
	for _, t := range terms {
		if t.ModTime.After(newest) {
			newest = t.ModTime
		}
	}

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: site.BaseURL, LastMod: lastMod(newest)}},
	}
	for _, t := range terms {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     site.TermURL(t.Slug),
			LastMod: lastMod(t.ModTime),
		})
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: sitemap: %w", err)
	}
	out := append([]byte(xml.Header), data...)
	return append(out, '\n'), nil
}

func lastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
