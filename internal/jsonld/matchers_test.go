package jsonld

import (
	"testing"

	"github.com/lowerpower/www.mycal.net/internal/models"
)

func testSite() models.Site {
	return models.Site{
		BaseURL:  "https://www.mycal.net/terms/",
		HomeURL:  "https://www.mycal.net/",
		Title:    "Mycal Terms",
		Subtitle: "A Lexicon of Original Concepts",
		Language: "en-US",
		Person: models.Person{
			ID:   "https://blog.mycal.net/about/#mycal",
			Name: "Mike Johnson",
			UUID: "urn:uuid:4ff7ed97-b78f-4ae6-9011-5af714ee241c",
		},
		Publisher: models.Publisher{
			ID:   "https://blog.mycal.net/#publisher",
			Name: "Mycal Labs",
		},
		Website: models.Website{
			ID:   "https://www.mycal.net/#website",
			Name: "Mycal.net",
			URL:  "https://www.mycal.net/",
		},
		TermSet: models.TermSet{
			ID:   "https://www.mycal.net/terms/#termset",
			Name: "Mycal Terms",
		},
		AnchorResolver: "https://anchorid.net/resolve/",
		NoWorkRoots: []string{
			"https://blog.mycal.net/",
			"https://nobgp.com/",
		},
		ArchiveHost:   "archive.mycal.net",
		SeriesSegment: "tag/",
	}
}

func TestClassify(t *testing.T) {
	c := NewClassifier(testSite())

	cases := []struct {
		name     string
		url      string
		wantType string
		wantID   string
	}{
		{"no-work root", "https://blog.mycal.net/", "", ""},
		{"second no-work root", "https://nobgp.com/", "", ""},
		{"archive posting", "https://archive.mycal.net/usenet/raw/post.txt", "DiscussionForumPosting", "https://archive.mycal.net/usenet/raw/post.txt"},
		{"series", "https://blog.mycal.net/tag/substrate-war/", "CreativeWorkSeries", "https://blog.mycal.net/tag/substrate-war/"},
		{"article", "https://blog.mycal.net/the-three-empires/", "Article", "https://blog.mycal.net/the-three-empires/#article"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rel := c.Classify(tc.url)
			if tc.wantType == "" {
				if rel != nil {
					t.Fatalf("Classify(%q) = %+v, want nil", tc.url, rel)
				}
				return
			}
			if rel == nil {
				t.Fatalf("Classify(%q) = nil, want %s", tc.url, tc.wantType)
			}
			if rel.Type != tc.wantType || rel.ID != tc.wantID {
				t.Errorf("Classify(%q) = %+v, want {%s %s}", tc.url, rel, tc.wantType, tc.wantID)
			}
		})
	}
}

func TestClassifyOrderArchiveBeforeSeries(t *testing.T) {
	// An archive URL containing a tag segment must still classify as a
	// forum posting: matchers are ordered.
	c := NewClassifier(testSite())
	rel := c.Classify("https://archive.mycal.net/tag/old/")
	if rel == nil || rel.Type != "DiscussionForumPosting" {
		t.Errorf("rel = %+v, want DiscussionForumPosting", rel)
	}
}
