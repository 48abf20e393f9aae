package grid

import "github.com/example/courtwatch/internal/domain/timeofday"

// AttributeStrategy reads explicit start/end encodings off each marker.
// No calibration or rounding applies; attribute values are authoritative.
// Attribute markers denote bookable slots.
type AttributeStrategy struct{}

func (AttributeStrategy) Name() string { return "attribute" }

func (AttributeStrategy) Extract(row ResourceRow) []RawInterval {
	out := make([]RawInterval, 0, len(row.Markers))
	for _, m := range row.Markers {
		if m.Start == "" || m.End == "" {
			continue
		}
		start, err := timeofday.Parse(m.Start)
		if err != nil {
			continue
		}
		end, err := timeofday.Parse(m.End)
		if err != nil {
			continue
		}
		out = append(out, RawInterval{Start: start, End: end})
	}
	return out
}
