package venue

import (
	"time"

	"github.com/google/uuid"

	"github.com/example/courtwatch/internal/domain/timeofday"
)

// Calibration maps pixel geometry on a venue's grid to clock time. Venues
// render the same widget with slightly different origins and scales, so the
// parameters are stored per venue rather than hard-coded.
type Calibration struct {
	OriginPx   float64
	PxPerHour  float64
	HourOffset float64
}

// Venue is one bookable facility with a daily grid of courts. Registered and
// updated by `courtwatch venues sync`; read-only to the extraction pipeline.
type Venue struct {
	ID   uuid.UUID
	Name string
	URL  string

	// Calibration selects the extraction strategy: present means the grid
	// encodes occupancy geometrically, absent means markers carry explicit
	// start/end attributes.
	Calibration *Calibration

	// Display window of the grid. Geometry-derived times saturate to these
	// bounds.
	WindowOpen  timeofday.Time
	WindowClose timeofday.Time
}

// Window returns the display window, falling back to the common 06:00-23:30
// grid when the venue record carries no explicit bounds.
func (v Venue) Window() (timeofday.Time, timeofday.Time) {
	open, close := v.WindowOpen, v.WindowClose
	if open == 0 && close == 0 {
		open = timeofday.New(6, 0)
		close = timeofday.New(23, 30)
	}
	return open, close
}

// Court is a single bookable unit within a venue, created lazily the first
// time its label shows up in a grid row. (venue, name) is unique.
type Court struct {
	ID        uuid.UUID
	VenueID   uuid.UUID
	Name      string
	CreatedAt time.Time
}
