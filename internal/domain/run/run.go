// Package run models the ledger of extraction cycles.
package run

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Run is one end-to-end extraction cycle. Created `running` before any
// extraction starts; closed exactly once by the orchestrator. A run left
// `running` by a crashed process is abandoned — there is no recovery sweep.
type Run struct {
	ID         uuid.UUID
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     Status

	VenuesCovered     int
	IntervalsProduced int
	IntervalsFailed   int
}

// Totals is what Close writes back onto the ledger row.
type Totals struct {
	VenuesCovered     int
	IntervalsProduced int
	IntervalsFailed   int
}
