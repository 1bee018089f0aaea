package jsonld

import (
	"strings"

	"github.com/lowerpower/www.mycal.net/internal/models"
)

// matcher inspects a first-link URL and either produces a Relation or
// declines. Matchers run in order; the first hit wins.
type matcher struct {
	name  string
	match func(url string) (*Relation, bool)
}

// Classifier decides how a term relates to the work its first link points
// at. The rules are ordered: home-page roots produce no relation at all,
// archive URLs are forum postings, tag URLs are series, and anything else
// is a plain article.
type Classifier struct {
	matchers []matcher
}

// NewClassifier builds the ordered matcher set from the site settings.
func NewClassifier(site models.Site) *Classifier {
	noWork := make(map[string]struct{}, len(site.NoWorkRoots))
	for _, root := range site.NoWorkRoots {
		noWork[root] = struct{}{}
	}

	return &Classifier{matchers: []matcher{
		{
			name: "no-work root",
			match: func(url string) (*Relation, bool) {
				_, ok := noWork[url]
				return nil, ok
			},
		},
		{
			name: "archive posting",
			match: func(url string) (*Relation, bool) {
				if site.ArchiveHost == "" || !strings.Contains(url, site.ArchiveHost) {
					return nil, false
				}
				return &Relation{Type: "DiscussionForumPosting", ID: url}, true
			},
		},
		{
			name: "series",
			match: func(url string) (*Relation, bool) {
				if site.SeriesSegment == "" || !strings.Contains(url, site.SeriesSegment) {
					return nil, false
				}
				return &Relation{Type: "CreativeWorkSeries", ID: url}, true
			},
		},
		{
			name: "article",
			match: func(url string) (*Relation, bool) {
				return &Relation{Type: "Article", ID: url + "#article"}, true
			},
		},
	}}
}

// Classify returns the relation for a first-link URL, or nil when the URL
// is a bare home page that defines no external work.
func (c *Classifier) Classify(url string) *Relation {
	for _, m := range c.matchers {
		if rel, ok := m.match(url); ok {
			return rel
		}
	}
	return nil
}
