package alias

import (
	"errors"
	"strings"
	"testing"

	"github.com/lowerpower/www.mycal.net/internal/apperr"
	"github.com/lowerpower/www.mycal.net/internal/models"
)

func term(slug string, aliases ...string) models.Term {
	return models.Term{Slug: slug, Aliases: aliases}
}

func TestResolve(t *testing.T) {
	m, err := Resolve([]models.Term{
		term("alpha"),
		term("beta", "alpha-old", "b"),
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("len(m) = %d, want 2", len(m))
	}
	if m["alpha-old"] != "beta" || m["b"] != "beta" {
		t.Errorf("map = %v", m)
	}
}

func TestResolveAliasShadowsCanonicalSlug(t *testing.T) {
	_, err := Resolve([]models.Term{
		term("alpha"),
		term("beta", "alpha"),
	})
	if !errors.Is(err, apperr.ErrCollision) {
		t.Fatalf("err = %v, want ErrCollision", err)
	}
	if !strings.Contains(err.Error(), "alpha") || !strings.Contains(err.Error(), "beta") {
		t.Errorf("error does not name the conflicting slugs: %v", err)
	}
}

func TestResolveAliasClaimedTwice(t *testing.T) {
	_, err := Resolve([]models.Term{
		term("alpha", "shared"),
		term("beta", "shared"),
	})
	if !errors.Is(err, apperr.ErrCollision) {
		t.Fatalf("err = %v, want ErrCollision", err)
	}
	for _, want := range []string{"shared", "alpha", "beta"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}

func TestResolveDuplicateAliasWithinTerm(t *testing.T) {
	// The same term listing an alias twice is harmless.
	m, err := Resolve([]models.Term{term("alpha", "old", "old")})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if m["old"] != "alpha" {
		t.Errorf("map = %v", m)
	}
}
