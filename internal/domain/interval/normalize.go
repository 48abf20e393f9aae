package interval

import (
	"time"

	"github.com/google/uuid"

	"github.com/example/courtwatch/internal/domain/grid"
	"github.com/example/courtwatch/internal/domain/timeofday"
)

// Normalize validates one raw span against a reference date. An end at or
// before the start is read as crossing midnight: the duration counts the
// extra day while the stored end stays on the clock. Degenerate spans
// (zero duration even after wraparound) come back ok=false and are dropped
// by the caller; they indicate a broken marker, not a booking.
func Normalize(raw grid.RawInterval, courtID uuid.UUID, date time.Time, status Status, runID uuid.UUID, observedAt time.Time) (Interval, bool) {
	start := int(raw.Start)
	end := int(raw.End)
	if end <= start {
		end += timeofday.MinutesPerDay
	}
	duration := end - start
	if duration <= 0 || duration >= timeofday.MinutesPerDay {
		return Interval{}, false
	}
	return Interval{
		CourtID:         courtID,
		Date:            date,
		Start:           raw.Start,
		End:             raw.End,
		DurationMinutes: duration,
		Status:          status,
		RunID:           runID,
		ObservedAt:      observedAt,
	}, true
}
