package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/courtwatch/internal/domain/timeofday"
	"github.com/example/courtwatch/internal/domain/venue"
)

type VenueRepo struct{ pool *pgxpool.Pool }

func NewVenueRepo(pool *pgxpool.Pool) *VenueRepo { return &VenueRepo{pool: pool} }

func (r *VenueRepo) List(ctx context.Context) ([]venue.Venue, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, url, origin_px, px_per_hour, hour_offset, window_open, window_close
		FROM venues
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []venue.Venue
	for rows.Next() {
		var v venue.Venue
		var originPx, pxPerHour, hourOffset *float64
		var open, close int16
		if err := rows.Scan(&v.ID, &v.Name, &v.URL, &originPx, &pxPerHour, &hourOffset, &open, &close); err != nil {
			return nil, err
		}
		if originPx != nil && pxPerHour != nil {
			cal := venue.Calibration{OriginPx: *originPx, PxPerHour: *pxPerHour}
			if hourOffset != nil {
				cal.HourOffset = *hourOffset
			}
			v.Calibration = &cal
		}
		v.WindowOpen = timeofday.Time(open)
		v.WindowClose = timeofday.Time(close)
		out = append(out, v)
	}
	return out, rows.Err()
}

// Upsert registers or refreshes a venue by name. Calibration columns are
// written as a triple: a venue without calibration clears all three, which
// flips it to the attribute strategy.
func (r *VenueRepo) Upsert(ctx context.Context, v venue.Venue) error {
	var originPx, pxPerHour, hourOffset *float64
	if v.Calibration != nil {
		originPx = &v.Calibration.OriginPx
		pxPerHour = &v.Calibration.PxPerHour
		hourOffset = &v.Calibration.HourOffset
	}
	open, close := v.Window()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO venues (name, url, origin_px, px_per_hour, hour_offset, window_open, window_close)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (name) DO UPDATE SET
			url=EXCLUDED.url,
			origin_px=EXCLUDED.origin_px,
			px_per_hour=EXCLUDED.px_per_hour,
			hour_offset=EXCLUDED.hour_offset,
			window_open=EXCLUDED.window_open,
			window_close=EXCLUDED.window_close,
			updated_at=$8
	`, v.Name, v.URL, originPx, pxPerHour, hourOffset, int16(open), int16(close), time.Now().UTC())
	return err
}
