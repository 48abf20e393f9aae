package grid

import "github.com/example/courtwatch/internal/domain/venue"

func venueWithCalibration() venue.Venue {
	return venue.Venue{
		Name: "Test Club",
		Calibration: &venue.Calibration{
			OriginPx:  350,
			PxPerHour: 39,
		},
	}
}
