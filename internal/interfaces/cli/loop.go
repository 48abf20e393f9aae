package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/courtwatch/internal/config"
	"github.com/example/courtwatch/internal/db"
	"github.com/example/courtwatch/internal/ingest"
	"github.com/example/courtwatch/internal/scheduler"
)

func newLoopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loop",
		Short: "Run extraction cycles on a fixed interval until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			pool, err := db.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := db.Ping(ctx, pool); err != nil {
				return fmt.Errorf("db ping: %w", err)
			}

			o := buildOrchestrator(ctx, cfg, log, pool)

			if cfg.MetricsAddr != "" {
				go func() {
					if err := scheduler.ServeMetrics(cfg.MetricsAddr); err != nil {
						log.Error("metrics listener failed", zap.Error(err))
					}
				}()
			}

			loop := &scheduler.Loop{
				Interval: cfg.LoopInterval,
				Log:      log,
				// The venue list is re-read each cycle so registrations land
				// without a restart.
				Cycle: func(ctx context.Context) (ingest.Result, error) {
					venues, err := postgresVenues(ctx, pool)
					if err != nil {
						return ingest.Result{}, fmt.Errorf("list venues: %w", err)
					}
					date := time.Now().UTC().Truncate(24 * time.Hour)
					return o.Run(ctx, venues, date)
				},
			}

			err = loop.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
