package jsonld

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lowerpower/www.mycal.net/internal/models"
)

func sampleTerms() []models.Term {
	return []models.Term{
		{
			Slug:        "alpha",
			Name:        "Alpha",
			Date:        "2025",
			Description: "First",
			Links:       []models.Link{{URL: "https://blog.mycal.net/alpha-post/", Label: "Alpha Post"}},
			TermID:      "urn:uuid:11111111-2222-3333-4444-555555555555",
		},
		{
			Slug:        "beta",
			Name:        "Beta",
			Date:        "2024",
			DateISO:     "2024-06-01",
			Description: "Second",
			Links:       []models.Link{{URL: "https://blog.mycal.net/", Label: "home"}},
			SameAs:      []string{"https://example.org/beta"},
		},
	}
}

func TestBuildGraphShape(t *testing.T) {
	b := New(testSite())
	doc := b.Build(sampleTerms())

	// Person, Organization, WebSite, WebPage, DefinedTermSet,
	// two DefinedTerms, BreadcrumbList.
	if len(doc.Graph) != 8 {
		t.Fatalf("len(graph) = %d, want 8", len(doc.Graph))
	}

	set, ok := doc.Graph[4].(DefinedTermSetNode)
	if !ok {
		t.Fatalf("graph[4] is %T, want DefinedTermSetNode", doc.Graph[4])
	}
	if len(set.HasDefinedTerm) != 2 {
		t.Errorf("hasDefinedTerm = %d refs, want 2", len(set.HasDefinedTerm))
	}
	if set.HasDefinedTerm[0].ID != "https://www.mycal.net/terms/alpha/" {
		t.Errorf("first term ref = %q", set.HasDefinedTerm[0].ID)
	}
}

func TestTermNode(t *testing.T) {
	b := New(testSite())
	terms := sampleTerms()

	alpha := b.TermNode(terms[0])
	if alpha.ID != "https://www.mycal.net/terms/alpha/" || alpha.URL != alpha.ID {
		t.Errorf("alpha id/url = %q / %q", alpha.ID, alpha.URL)
	}
	if alpha.TermCode != "alpha" || alpha.DateCreated != "2025" {
		t.Errorf("alpha termCode/dateCreated = %q / %q", alpha.TermCode, alpha.DateCreated)
	}
	if alpha.IsDefinedIn == nil || alpha.IsDefinedIn.Type != "Article" {
		t.Errorf("alpha isDefinedIn = %+v, want Article", alpha.IsDefinedIn)
	}
	if len(alpha.Identifier) != 1 || alpha.Identifier[0].Value != terms[0].TermID {
		t.Errorf("alpha identifier = %+v", alpha.Identifier)
	}

	beta := b.TermNode(terms[1])
	if beta.IsDefinedIn != nil {
		t.Errorf("beta isDefinedIn = %+v, want none for a no-work root", beta.IsDefinedIn)
	}
	// dateISO wins over the free-form date when present.
	if beta.DateCreated != "2024-06-01" {
		t.Errorf("beta dateCreated = %q, want ISO date", beta.DateCreated)
	}
	if len(beta.SameAs) != 1 {
		t.Errorf("beta sameAs = %v", beta.SameAs)
	}
}

func TestPersonIdentifiers(t *testing.T) {
	b := New(testSite())
	p := b.personNode()
	if len(p.Identifier) != 2 {
		t.Fatalf("identifier count = %d, want 2", len(p.Identifier))
	}
	if p.Identifier[0].PropertyID != "canonical-uuid" || p.Identifier[1].PropertyID != "AnchorID" {
		t.Errorf("identifier ids = %q, %q", p.Identifier[0].PropertyID, p.Identifier[1].PropertyID)
	}
	wantAnchor := "https://anchorid.net/resolve/4ff7ed97-b78f-4ae6-9011-5af714ee241c"
	if p.Identifier[1].Value != wantAnchor {
		t.Errorf("anchor = %q, want %q", p.Identifier[1].Value, wantAnchor)
	}
	if len(p.SameAs) == 0 || p.SameAs[0] != wantAnchor {
		t.Errorf("sameAs does not lead with the anchor URL: %v", p.SameAs)
	}
}

func TestSubset(t *testing.T) {
	b := New(testSite())
	doc := b.Subset(sampleTerms()[0])
	if len(doc.Graph) != 6 {
		t.Fatalf("len(graph) = %d, want 6", len(doc.Graph))
	}
	set := doc.Graph[3].(DefinedTermSetNode)
	if len(set.HasDefinedTerm) != 1 {
		t.Errorf("subset term set has %d refs, want 1", len(set.HasDefinedTerm))
	}
}

func TestMarshalStableAndValid(t *testing.T) {
	b := New(testSite())
	doc := b.Build(sampleTerms())

	first, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, _ := Marshal(b.Build(sampleTerms()))
	if string(first) != string(second) {
		t.Error("marshalling the same input twice produced different output")
	}

	var parsed map[string]any
	if err := json.Unmarshal(first, &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["@context"] != "https://schema.org" {
		t.Errorf("@context = %v", parsed["@context"])
	}
	if !strings.Contains(string(first), `"@graph"`) {
		t.Error("output missing @graph")
	}
}
