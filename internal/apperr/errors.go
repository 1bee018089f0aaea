// Package apperr defines sentinel errors shared across the build pipeline.
package apperr

import "errors"

var (
	// ErrCollision marks alias conflicts: an alias that shadows a
	// canonical slug or is claimed by more than one term.
	ErrCollision = errors.New("collision")
	// ErrNoTerms marks an empty data directory.
	ErrNoTerms = errors.New("no term files found")
)
