// Package ingest drives one extraction cycle: fetch each venue's grid,
// decode and normalize its markers, consolidate the combined interval set
// and persist it under a ledger entry.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/courtwatch/internal/domain/grid"
	"github.com/example/courtwatch/internal/domain/interval"
	"github.com/example/courtwatch/internal/domain/run"
	"github.com/example/courtwatch/internal/domain/venue"
)

// Registry resolves court labels to stable ids, creating them on first
// sight. Implementations must survive concurrent resolves of the same name.
type Registry interface {
	Resolve(ctx context.Context, venueID uuid.UUID, name string) (uuid.UUID, error)
}

// Store persists consolidated intervals.
type Store interface {
	ReplaceDay(ctx context.Context, date time.Time, status interval.Status) error
	InsertIntervals(ctx context.Context, ivs []interval.Interval) (inserted, failed int, err error)
}

// Ledger records extraction cycles.
type Ledger interface {
	Open(ctx context.Context) (uuid.UUID, error)
	Close(ctx context.Context, id uuid.UUID, status run.Status, totals run.Totals) error
}

// SnapshotSink receives the per-venue consolidated result for offline
// inspection. Best effort: write failures are logged, never fatal.
type SnapshotSink interface {
	Write(ctx context.Context, doc VenueSnapshot) error
}

// Result summarizes one completed cycle.
type Result struct {
	RunID             uuid.UUID
	VenuesCovered     int
	VenueErrors       int
	IntervalsProduced int
	IntervalsFailed   int
}

type Orchestrator struct {
	Source    grid.Source
	Registry  Registry
	Store     Store
	Ledger    Ledger
	Snapshots SnapshotSink // optional
	Log       *zap.Logger

	// MaxConcurrent bounds simultaneous browser sessions.
	MaxConcurrent int

	// ReplaceDay makes the run authoritative for the whole day: prior
	// intervals for (date, status) are deleted before insertion.
	ReplaceDay bool
}

// venueResult is one worker's output. Workers each own their slot in a
// pre-sized slice, so no interval data is shared until all have finished.
type venueResult struct {
	venue      venue.Venue
	strategy   string
	intervals  []interval.Interval
	courtNames map[uuid.UUID]string
	err        error
}

// Run executes one cycle for the given venues and date. Only a ledger-open
// failure is returned as an error; a venue that cannot be fetched or parsed
// contributes zero intervals and never aborts its siblings.
func (o *Orchestrator) Run(ctx context.Context, venues []venue.Venue, date time.Time) (Result, error) {
	runID, err := o.Ledger.Open(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("open run: %w", err)
	}
	log := o.Log.With(zap.String("run_id", runID.String()))
	log.Info("run started", zap.Int("venues", len(venues)), zap.String("date", date.Format("2006-01-02")))

	results := make([]venueResult, len(venues))

	g := &errgroup.Group{}
	limit := o.MaxConcurrent
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)
	for i, v := range venues {
		i, v := i, v
		g.Go(func() error {
			results[i] = o.extractVenue(ctx, log, v, date, runID)
			return nil
		})
	}
	// Workers never return errors; Wait is only a barrier. In-flight venues
	// are never cancelled once started.
	_ = g.Wait()

	var combined []interval.Interval
	res := Result{RunID: runID}
	for _, vr := range results {
		if vr.err != nil {
			res.VenueErrors++
			log.Warn("venue skipped", zap.String("venue", vr.venue.Name), zap.Error(vr.err))
			continue
		}
		res.VenuesCovered++
		combined = append(combined, vr.intervals...)
	}

	// One global pass: intervals from separate extraction passes for the
	// same court/day collapse here before anything is written.
	consolidated := interval.Consolidate(combined)

	if o.ReplaceDay {
		for _, status := range statusesPresent(consolidated) {
			if err := o.Store.ReplaceDay(ctx, date, status); err != nil {
				log.Warn("replace day failed, appending instead", zap.String("status", string(status)), zap.Error(err))
			}
		}
	}

	inserted, failed, err := o.Store.InsertIntervals(ctx, consolidated)
	if err != nil {
		closeErr := o.Ledger.Close(ctx, runID, run.StatusFailed, run.Totals{
			VenuesCovered: res.VenuesCovered,
		})
		if closeErr != nil {
			log.Error("close run failed", zap.Error(closeErr))
		}
		return Result{}, fmt.Errorf("persist intervals: %w", err)
	}
	res.IntervalsProduced = inserted
	res.IntervalsFailed = failed

	o.writeSnapshots(ctx, log, results, date)

	if err := o.Ledger.Close(ctx, runID, run.StatusCompleted, run.Totals{
		VenuesCovered:     res.VenuesCovered,
		IntervalsProduced: res.IntervalsProduced,
		IntervalsFailed:   res.IntervalsFailed,
	}); err != nil {
		return res, fmt.Errorf("close run: %w", err)
	}

	log.Info("run completed",
		zap.Int("venues_covered", res.VenuesCovered),
		zap.Int("venue_errors", res.VenueErrors),
		zap.Int("intervals_produced", res.IntervalsProduced),
		zap.Int("intervals_failed", res.IntervalsFailed))
	return res, nil
}

func (o *Orchestrator) extractVenue(ctx context.Context, log *zap.Logger, v venue.Venue, date time.Time, runID uuid.UUID) venueResult {
	vr := venueResult{venue: v, courtNames: make(map[uuid.UUID]string)}

	strategy := grid.ForVenue(v)
	vr.strategy = strategy.Name()
	status := interval.StatusAvailable
	if strategy.Name() == "geometry" {
		// Geometry markers paint occupied cells.
		status = interval.StatusBooked
	}

	rows, err := o.Source.FetchGrid(ctx, v)
	if err != nil {
		vr.err = fmt.Errorf("fetch grid: %w", err)
		return vr
	}
	if len(rows) == 0 {
		log.Info("no grid rows", zap.String("venue", v.Name))
		return vr
	}

	observedAt := time.Now().UTC()
	for _, row := range rows {
		if row.Resource == "" {
			continue
		}
		courtID, err := o.Registry.Resolve(ctx, v.ID, row.Resource)
		if err != nil {
			// One bad row does not take the venue down.
			log.Warn("resolve court failed",
				zap.String("venue", v.Name), zap.String("court", row.Resource), zap.Error(err))
			continue
		}
		vr.courtNames[courtID] = row.Resource

		for _, raw := range strategy.Extract(row) {
			iv, ok := interval.Normalize(raw, courtID, date, status, runID, observedAt)
			if !ok {
				continue
			}
			vr.intervals = append(vr.intervals, iv)
		}
	}

	log.Info("venue extracted",
		zap.String("venue", v.Name),
		zap.String("strategy", vr.strategy),
		zap.Int("rows", len(rows)),
		zap.Int("intervals", len(vr.intervals)))
	return vr
}

func statusesPresent(ivs []interval.Interval) []interval.Status {
	var out []interval.Status
	seen := make(map[interval.Status]bool)
	for _, iv := range ivs {
		if !seen[iv.Status] {
			seen[iv.Status] = true
			out = append(out, iv.Status)
		}
	}
	return out
}
