package cli

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/example/courtwatch/internal/config"
	"github.com/example/courtwatch/internal/domain/venue"
	"github.com/example/courtwatch/internal/infrastructure/browser"
	"github.com/example/courtwatch/internal/infrastructure/postgres"
	"github.com/example/courtwatch/internal/infrastructure/snapshot"
	"github.com/example/courtwatch/internal/ingest"
)

func postgresVenues(ctx context.Context, pool *pgxpool.Pool) ([]venue.Venue, error) {
	return postgres.NewVenueRepo(pool).List(ctx)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.DevLog {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// buildOrchestrator wires the full pipeline: proxy probe (once, the pool is
// read-only afterwards), chrome grid source, postgres store and ledger,
// snapshot sink.
func buildOrchestrator(ctx context.Context, cfg config.Config, log *zap.Logger, pool *pgxpool.Pool) *ingest.Orchestrator {
	prober := browser.Prober{Log: log}
	proxies := prober.Probe(ctx, browser.ProxyConfig{
		Host:  cfg.ProxyHost,
		User:  cfg.ProxyUser,
		Pass:  cfg.ProxyPass,
		Ports: cfg.ProxyPorts,
	})

	source := &browser.Chrome{
		Log:           log,
		GridSelector:  cfg.GridSelector,
		NavTimeout:    cfg.NavTimeout,
		Headless:      cfg.Headless,
		Proxies:       proxies,
		ScreenshotDir: cfg.ScreenshotDir,
	}

	return &ingest.Orchestrator{
		Source:        source,
		Registry:      postgres.NewCourtRepo(pool),
		Store:         postgres.NewSlotRepo(pool, log),
		Ledger:        postgres.NewRunRepo(pool),
		Snapshots:     &snapshot.Writer{Dir: cfg.SnapshotDir},
		Log:           log,
		MaxConcurrent: cfg.MaxConcurrent,
		ReplaceDay:    cfg.ReplaceDay,
	}
}
