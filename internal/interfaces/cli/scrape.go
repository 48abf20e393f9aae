package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/courtwatch/internal/config"
	"github.com/example/courtwatch/internal/db"
)

func newScrapeCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run one extraction cycle across all registered venues",
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

			date := time.Now().UTC().Truncate(24 * time.Hour)
			if dateStr != "" {
				date, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}

			pool, err := db.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := db.Ping(ctx, pool); err != nil {
				return fmt.Errorf("db ping: %w", err)
			}

			venues, err := postgresVenues(ctx, pool)
			if err != nil {
				return err
			}
			if len(venues) == 0 {
				return fmt.Errorf("no venues registered; run `courtwatch venues sync` first")
			}

			o := buildOrchestrator(ctx, cfg, log, pool)
			res, err := o.Run(ctx, venues, date)
			if err != nil {
				return err
			}

			fmt.Printf("run %s: %d venues covered (%d errored), %d intervals produced, %d failed\n",
				res.RunID, res.VenuesCovered, res.VenueErrors, res.IntervalsProduced, res.IntervalsFailed)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "booking date to attribute slots to (YYYY-MM-DD, default today)")
	return cmd
}
