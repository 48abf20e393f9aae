package grid

import (
	"math"

	"github.com/example/courtwatch/internal/domain/timeofday"
	"github.com/example/courtwatch/internal/domain/venue"
)

// GeometryStrategy converts a marker's pixel position and width into clock
// times using the venue's calibration, then snaps both endpoints to the grid's
// half-hour granularity. Geometry markers mark occupied cells.
type GeometryStrategy struct {
	Calibration venue.Calibration
	WindowOpen  timeofday.Time
	WindowClose timeofday.Time
}

func (GeometryStrategy) Name() string { return "geometry" }

func (s GeometryStrategy) Extract(row ResourceRow) []RawInterval {
	if s.Calibration.PxPerHour <= 0 {
		return nil
	}
	out := make([]RawInterval, 0, len(row.Markers))
	for _, m := range row.Markers {
		if m.Width <= 0 {
			continue
		}
		startHr := (m.X-s.Calibration.OriginPx)/s.Calibration.PxPerHour + s.Calibration.HourOffset
		endHr := (m.X+m.Width-s.Calibration.OriginPx)/s.Calibration.PxPerHour + s.Calibration.HourOffset

		out = append(out, RawInterval{
			Start: s.snap(startHr),
			End:   s.snap(endHr),
		})
	}
	return out
}

// snap floors the hour, rounds the minute to :30 when the fractional part
// reaches one half, and saturates to the display window. Clamping happens in
// un-wrapped minute space: a marker poking past the grid edge saturates to
// the nearest bound rather than wrapping into the next day.
func (s GeometryStrategy) snap(hours float64) timeofday.Time {
	h := math.Floor(hours)
	minutes := int(h) * 60
	if hours-h >= 0.5 {
		minutes += 30
	}
	if minutes < int(s.WindowOpen) {
		minutes = int(s.WindowOpen)
	}
	if minutes > int(s.WindowClose) {
		minutes = int(s.WindowClose)
	}
	return timeofday.Time(minutes)
}
