// Package scheduler re-invokes the extraction cycle on a fixed interval.
// Each cycle either completes (possibly with partial venue coverage) or is
// logged as failed and retried on the next tick; nothing escapes the loop.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/example/courtwatch/internal/ingest"
)

// CycleFunc runs one full extraction cycle.
type CycleFunc func(ctx context.Context) (ingest.Result, error)

type Loop struct {
	Cycle    CycleFunc
	Interval time.Duration
	Log      *zap.Logger
}

// Run ticks until the context is cancelled, kicking one cycle immediately.
func (l *Loop) Run(ctx context.Context) error {
	t := time.NewTicker(l.Interval)
	defer t.Stop()

	l.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			l.tick(ctx)
		}
	}
}

func (l *Loop) tick(ctx context.Context) {
	started := time.Now()
	res, err := l.Cycle(ctx)
	if err != nil {
		cycleFailures.Inc()
		l.Log.Error("cycle failed", zap.Error(err))
		return
	}
	observeCycle(res)
	l.Log.Info("cycle finished",
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("venues_covered", res.VenuesCovered),
		zap.Int("intervals_produced", res.IntervalsProduced))
}
