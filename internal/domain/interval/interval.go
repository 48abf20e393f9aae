// Package interval owns the canonical slot model: normalization of raw grid
// spans and consolidation of the per-run interval set.
package interval

import (
	"time"

	"github.com/google/uuid"

	"github.com/example/courtwatch/internal/domain/timeofday"
)

// Status records which kind of marker produced an interval. Geometry markers
// paint occupied cells, attribute markers denote bookable slots; the mapping
// is fixed here, not inferred downstream.
type Status string

const (
	StatusBooked    Status = "booked"
	StatusAvailable Status = "available"
)

// Interval is one validated, mergeable time span for a court on a date.
// Start < End holds in elapsed terms after wraparound resolution, but the
// stored End stays within the day, so a span crossing midnight has End < Start
// on the clock while DurationMinutes reflects the true elapsed span.
type Interval struct {
	CourtID         uuid.UUID
	Date            time.Time
	Start           timeofday.Time
	End             timeofday.Time
	DurationMinutes int
	Status          Status
	RunID           uuid.UUID
	ObservedAt      time.Time
}

// endElapsed is the end point in minutes from the day's midnight, past 1440
// for spans that wrap. Sorting and merging use this, never the clock End.
func (iv Interval) endElapsed() int {
	return int(iv.Start) + iv.DurationMinutes
}
