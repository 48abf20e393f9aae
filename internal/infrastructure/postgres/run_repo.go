package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/courtwatch/internal/domain/run"
)

type RunRepo struct{ pool *pgxpool.Pool }

func NewRunRepo(pool *pgxpool.Pool) *RunRepo { return &RunRepo{pool: pool} }

// Open creates the ledger row before any extraction starts. Intervals
// without a run id cannot be attributed, so callers must treat a failure
// here as fatal for the cycle.
func (r *RunRepo) Open(ctx context.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO scrape_runs (status) VALUES ($1) RETURNING id`,
		string(run.StatusRunning),
	).Scan(&id)
	return id, err
}

// Close is the only mutation allowed after Open. A run the process died on
// stays `running` and is left for operators; there is no recovery sweep.
func (r *RunRepo) Close(ctx context.Context, id uuid.UUID, status run.Status, totals run.Totals) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE scrape_runs
		SET status=$2, finished_at=$3, venues_covered=$4, intervals_produced=$5, intervals_failed=$6
		WHERE id=$1 AND status=$7
	`, id, string(status), time.Now().UTC(),
		totals.VenuesCovered, totals.IntervalsProduced, totals.IntervalsFailed,
		string(run.StatusRunning))
	return err
}
