// Package render turns normalized terms, the alias map, and the
// structured-data graph into the site's HTML pages. It performs no
// validation of its own; everything it receives has already passed the
// loader.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/lowerpower/www.mycal.net/internal/jsonld"
	"github.com/lowerpower/www.mycal.net/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer renders the index, term, and redirect pages for one site.
type Renderer struct {
	site models.Site
	tpl  *template.Template
}

// New parses the embedded templates and returns a Renderer.
func New(site models.Site) (*Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	return &Renderer{site: site, tpl: tpl}, nil
}

type indexData struct {
	Site      models.Site
	Terms     []models.Term
	Count     int
	GraphJSON template.JS
	AliasJSON template.JS
}

// Index renders the glossary index page with the full graph embedded and
// the alias map available to the page script for hash navigation.
func (r *Renderer) Index(terms []models.Term, aliases map[string]string, graph *jsonld.Document) ([]byte, error) {
	graphJSON, err := jsonld.Marshal(graph)
	if err != nil {
		return nil, err
	}
	aliasJSON, err := json.Marshal(aliases)
	if err != nil {
		return nil, fmt.Errorf("render: marshal aliases: %w", err)
	}
	return r.execute("index.html.tmpl", indexData{
		Site:      r.site,
		Terms:     terms,
		Count:     len(terms),
		GraphJSON: template.JS(graphJSON),
		AliasJSON: template.JS(aliasJSON),
	})
}

type termData struct {
	Site      models.Site
	Term      models.Term
	URL       string
	GraphJSON template.JS
}

// TermPage renders the standalone page for one canonical term, embedding
// the minimal graph subset.
func (r *Renderer) TermPage(t models.Term, graph *jsonld.Document) ([]byte, error) {
	graphJSON, err := jsonld.Marshal(graph)
	if err != nil {
		return nil, err
	}
	return r.execute("term.html.tmpl", termData{
		Site:      r.site,
		Term:      t,
		URL:       r.site.TermURL(t.Slug),
		GraphJSON: template.JS(graphJSON),
	})
}

type redirectData struct {
	Site      models.Site
	Alias     string
	Target    string
	TargetURL string
}

// Redirect renders the redirect page placed at an alias slug, pointing at
// the canonical term URL.
func (r *Renderer) Redirect(aliasSlug, targetSlug string) ([]byte, error) {
	return r.execute("redirect.html.tmpl", redirectData{
		Site:      r.site,
		Alias:     aliasSlug,
		Target:    targetSlug,
		TargetURL: r.site.TermURL(targetSlug),
	})
}

func (r *Renderer) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render: %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
