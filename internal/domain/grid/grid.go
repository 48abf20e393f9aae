// Package grid turns one venue's raw booking-grid markup into unvalidated
// time spans. The browser adapter delivers rows of markers; a per-venue
// strategy decodes them. Everything downstream (normalization, merging,
// persistence) lives in the interval package.
package grid

import (
	"context"

	"github.com/example/courtwatch/internal/domain/timeofday"
	"github.com/example/courtwatch/internal/domain/venue"
)

// Marker is one raw signal on the grid: either a positioned block (X/Width
// set) or an attribute-encoded span (Start/End set). Unused fields are zero.
type Marker struct {
	X     float64
	Width float64
	Class string

	// Attribute-encoded endpoints, "HH:MM" or bare hour. Empty when the
	// venue encodes geometrically.
	Start string
	End   string
}

// ResourceRow is one court's row: its display label plus every marker found
// in it, in document order.
type ResourceRow struct {
	Resource string
	Markers  []Marker
}

// Source is the acquisition boundary. Implementations must return an empty
// slice (not an error) when the page renders no grid rows, and must never
// panic past this boundary.
type Source interface {
	FetchGrid(ctx context.Context, v venue.Venue) ([]ResourceRow, error)
}

// RawInterval is a decoded but unvalidated span. End at or before Start is
// legal here; the normalizer resolves midnight wraparound later.
type RawInterval struct {
	Start timeofday.Time
	End   timeofday.Time
}
