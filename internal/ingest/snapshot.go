package ingest

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/example/courtwatch/internal/domain/interval"
)

// VenueSnapshot mirrors the structured document written per venue for
// offline inspection.
type VenueSnapshot struct {
	Venue       string          `json:"venue"`
	BookingDate string          `json:"booking_date"`
	ObservedAt  time.Time       `json:"observed_at"`
	Strategy    string          `json:"strategy"`
	Courts      []CourtSnapshot `json:"courts"`
}

type CourtSnapshot struct {
	Name  string         `json:"name"`
	Slots []SlotSnapshot `json:"slots"`
}

type SlotSnapshot struct {
	Start           string `json:"start_time"`
	End             string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
}

func (o *Orchestrator) writeSnapshots(ctx context.Context, log *zap.Logger, results []venueResult, date time.Time) {
	if o.Snapshots == nil {
		return
	}
	for _, vr := range results {
		if vr.err != nil {
			continue
		}
		doc := buildSnapshot(vr, date)
		if err := o.Snapshots.Write(ctx, doc); err != nil {
			log.Warn("snapshot write failed", zap.String("venue", vr.venue.Name), zap.Error(err))
		}
	}
}

// buildSnapshot consolidates the venue's own intervals so the document shows
// the same merged view the store receives.
func buildSnapshot(vr venueResult, date time.Time) VenueSnapshot {
	doc := VenueSnapshot{
		Venue:       vr.venue.Name,
		BookingDate: date.Format("2006-01-02"),
		ObservedAt:  time.Now().UTC(),
		Strategy:    vr.strategy,
	}

	byCourt := make(map[string][]SlotSnapshot)
	for _, iv := range interval.Consolidate(vr.intervals) {
		name := vr.courtNames[iv.CourtID]
		byCourt[name] = append(byCourt[name], SlotSnapshot{
			Start:           iv.Start.String(),
			End:             iv.End.String(),
			DurationMinutes: iv.DurationMinutes,
			Status:          string(iv.Status),
		})
	}

	names := make([]string, 0, len(byCourt))
	for name := range byCourt {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		doc.Courts = append(doc.Courts, CourtSnapshot{Name: name, Slots: byCourt[name]})
	}
	return doc
}
