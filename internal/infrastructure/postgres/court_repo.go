package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CourtRepo struct{ pool *pgxpool.Pool }

func NewCourtRepo(pool *pgxpool.Pool) *CourtRepo { return &CourtRepo{pool: pool} }

// Resolve maps a court label to its stable id, creating the row on first
// sight. Safe under concurrent callers: a losing insert hits the (venue, name)
// unique constraint via DO NOTHING and falls through to a re-read of the row
// the winner created.
func (r *CourtRepo) Resolve(ctx context.Context, venueID uuid.UUID, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`SELECT id FROM courts WHERE venue_id=$1 AND name=$2`, venueID, name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, err
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO courts (venue_id, name) VALUES ($1,$2)
		ON CONFLICT (venue_id, name) DO NOTHING
		RETURNING id
	`, venueID, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, err
	}

	// Lost the race; someone else inserted between our select and insert.
	if err := r.pool.QueryRow(ctx,
		`SELECT id FROM courts WHERE venue_id=$1 AND name=$2`, venueID, name,
	).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("resolve court %q: %w", name, err)
	}
	return id, nil
}
