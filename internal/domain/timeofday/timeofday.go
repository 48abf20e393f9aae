// Package timeofday holds a clock time with minute precision, detached from
// any date or zone. Grid markers and persisted slots both speak in these.
package timeofday

import (
	"fmt"
	"strconv"
	"strings"
)

// Time is minutes since midnight. Values are always in [0, 1440).
type Time int

const MinutesPerDay = 24 * 60

// New builds a Time from an hour/minute pair, wrapping hours past 24.
func New(hour, minute int) Time {
	return Time(((hour*60 + minute) % MinutesPerDay + MinutesPerDay) % MinutesPerDay)
}

// Parse accepts "HH:MM", "HH:MM:SS" (seconds discarded) or a bare hour ("7",
// "18"), the forms seen in grid markup attributes.
func Parse(s string) (Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("timeofday: empty value")
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("timeofday: malformed value %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("timeofday: malformed hour in %q", s)
	}
	minute := 0
	if len(parts) >= 2 {
		minute, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("timeofday: malformed minute in %q", s)
		}
	}
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("timeofday: out of range %q", s)
	}
	return New(hour, minute), nil
}

func (t Time) Hour() int   { return int(t) / 60 }
func (t Time) Minute() int { return int(t) % 60 }

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
