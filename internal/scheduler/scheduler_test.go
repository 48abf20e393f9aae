package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/example/courtwatch/internal/ingest"
)

func TestLoopRunsImmediatelyAndStopsOnCancel(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	l := &Loop{
		Interval: time.Hour, // only the immediate kick should fire
		Log:      zap.NewNop(),
		Cycle: func(ctx context.Context) (ingest.Result, error) {
			calls.Add(1)
			cancel()
			return ingest.Result{VenuesCovered: 1}, nil
		},
	}

	err := l.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if calls.Load() != 1 {
		t.Errorf("cycle ran %d times, want 1", calls.Load())
	}
}

func TestLoopSurvivesFailedCycles(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	l := &Loop{
		Interval: 5 * time.Millisecond,
		Log:      zap.NewNop(),
		Cycle: func(ctx context.Context) (ingest.Result, error) {
			if calls.Add(1) >= 3 {
				cancel()
			}
			return ingest.Result{}, errors.New("venue site unreachable")
		},
	}

	_ = l.Run(ctx)
	if calls.Load() < 3 {
		t.Errorf("cycle ran %d times, want at least 3: failures must not stop the loop", calls.Load())
	}
}
