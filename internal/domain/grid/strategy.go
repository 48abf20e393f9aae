package grid

import "github.com/example/courtwatch/internal/domain/venue"

// Strategy decodes one row's markers into raw spans. A malformed or
// incomplete marker is skipped; it never aborts its siblings.
type Strategy interface {
	// Name identifies the strategy in logs and run records.
	Name() string
	Extract(row ResourceRow) []RawInterval
}

// ForVenue selects the single strategy for a venue: geometry when a
// calibration record exists, attribute otherwise. The two are never mixed
// within one row.
func ForVenue(v venue.Venue) Strategy {
	if v.Calibration != nil {
		open, close := v.Window()
		return GeometryStrategy{
			Calibration: *v.Calibration,
			WindowOpen:  open,
			WindowClose: close,
		}
	}
	return AttributeStrategy{}
}
