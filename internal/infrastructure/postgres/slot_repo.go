package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/example/courtwatch/internal/domain/interval"
)

// insertBatchSize bounds one round trip; grids top out at a few hundred
// slots per venue.
const insertBatchSize = 100

const insertSlotSQL = `
INSERT INTO slots (court_id, play_date, start_time, end_time, duration_minutes, status, run_id, observed_at)
VALUES ($1, $2, $3::time, $4::time, $5, $6, $7, $8)`

type SlotRepo struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewSlotRepo(pool *pgxpool.Pool, log *zap.Logger) *SlotRepo {
	return &SlotRepo{pool: pool, log: log}
}

// ReplaceDay deletes the day's prior intervals for one status, for
// deployments where a run is authoritative for the whole day.
func (r *SlotRepo) ReplaceDay(ctx context.Context, date time.Time, status interval.Status) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM slots WHERE play_date=$1 AND status=$2`, date, string(status))
	return err
}

// InsertIntervals writes the consolidated set in batches. A failed batch is
// retried one record at a time so a single bad row cannot sink its
// neighbours; rows rejected individually are counted, logged and dropped.
// Overlap conflicts with already-stored slots are dedup working as intended,
// not failures.
func (r *SlotRepo) InsertIntervals(ctx context.Context, ivs []interval.Interval) (inserted, failed int, err error) {
	for start := 0; start < len(ivs); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(ivs) {
			end = len(ivs)
		}
		chunk := ivs[start:end]

		if err := r.insertBatch(ctx, chunk); err == nil {
			inserted += len(chunk)
			continue
		}

		for _, iv := range chunk {
			switch err := r.insertOne(ctx, iv); {
			case err == nil:
				inserted++
			case isOverlapConflict(err):
				// already covered by a stored slot
			default:
				failed++
				r.log.Warn("slot insert failed",
					zap.String("court_id", iv.CourtID.String()),
					zap.String("start", iv.Start.String()),
					zap.Error(err))
			}
		}
	}
	return inserted, failed, nil
}

func (r *SlotRepo) insertBatch(ctx context.Context, chunk []interval.Interval) error {
	b := &pgx.Batch{}
	for _, iv := range chunk {
		b.Queue(insertSlotSQL, slotArgs(iv)...)
	}
	return r.pool.SendBatch(ctx, b).Close()
}

func (r *SlotRepo) insertOne(ctx context.Context, iv interval.Interval) error {
	_, err := r.pool.Exec(ctx, insertSlotSQL, slotArgs(iv)...)
	return err
}

func slotArgs(iv interval.Interval) []any {
	return []any{
		iv.CourtID,
		iv.Date,
		iv.Start.String(),
		iv.End.String(),
		iv.DurationMinutes,
		string(iv.Status),
		iv.RunID,
		iv.ObservedAt,
	}
}

// isOverlapConflict matches the exclusion constraint (23P01) protecting
// slots from overlapping a stored span, and plain unique violations (23505).
func isOverlapConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23P01" || pgErr.Code == "23505"
}
