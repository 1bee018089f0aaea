// Package alias builds the mapping from alternate slugs to canonical slugs.
package alias

import (
	"fmt"

	"github.com/lowerpower/www.mycal.net/internal/apperr"
	"github.com/lowerpower/www.mycal.net/internal/models"
)

// Resolve returns a collision-free map from alias slug to canonical slug.
//
// An alias is rejected when it equals any canonical slug, or when two terms
// both claim it. The returned error names the conflicting slugs.
func Resolve(terms []models.Term) (map[string]string, error) {
	canonical := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		canonical[t.Slug] = struct{}{}
	}

	out := make(map[string]string)
	for _, t := range terms {
		for _, a := range t.Aliases {
			if _, exists := canonical[a]; exists {
				return nil, fmt.Errorf("alias %q of term %q collides with canonical slug %q: %w",
					a, t.Slug, a, apperr.ErrCollision)
			}
			if prev, exists := out[a]; exists && prev != t.Slug {
				return nil, fmt.Errorf("alias %q claimed by both %q and %q: %w",
					a, prev, t.Slug, apperr.ErrCollision)
			}
			out[a] = t.Slug
		}
	}
	return out, nil
}
