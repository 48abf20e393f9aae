package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/courtwatch/internal/config"
	"github.com/example/courtwatch/internal/db"
	"github.com/example/courtwatch/internal/domain/timeofday"
	"github.com/example/courtwatch/internal/domain/venue"
	"github.com/example/courtwatch/internal/infrastructure/postgres"
)

type venueFile struct {
	Venues []venueEntry `yaml:"venues"`
}

type venueEntry struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Calibration *struct {
		OriginPx   float64 `yaml:"origin_px"`
		PxPerHour  float64 `yaml:"px_per_hour"`
		HourOffset float64 `yaml:"hour_offset"`
	} `yaml:"calibration"`
	Window *struct {
		Open  string `yaml:"open"`
		Close string `yaml:"close"`
	} `yaml:"window"`
}

func newVenuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venues",
		Short: "Manage the venue registry",
	}
	cmd.AddCommand(newVenuesSyncCmd())
	return cmd
}

func newVenuesSyncCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Register or update venues from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			vs, err := loadVenueFile(file)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			pool, err := db.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			repo := postgres.NewVenueRepo(pool)
			for _, v := range vs {
				if err := repo.Upsert(ctx, v); err != nil {
					return fmt.Errorf("upsert %q: %w", v.Name, err)
				}
			}
			fmt.Printf("synced %d venues\n", len(vs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "venues.yaml", "venue registration file")
	return cmd
}

func loadVenueFile(path string) ([]venue.Venue, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f venueFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	out := make([]venue.Venue, 0, len(f.Venues))
	for _, e := range f.Venues {
		if e.Name == "" || e.URL == "" {
			return nil, fmt.Errorf("venue entries need both name and url")
		}
		v := venue.Venue{Name: e.Name, URL: e.URL}
		if e.Calibration != nil {
			v.Calibration = &venue.Calibration{
				OriginPx:   e.Calibration.OriginPx,
				PxPerHour:  e.Calibration.PxPerHour,
				HourOffset: e.Calibration.HourOffset,
			}
		}
		if e.Window != nil {
			open, err := timeofday.Parse(e.Window.Open)
			if err != nil {
				return nil, fmt.Errorf("venue %q window open: %w", e.Name, err)
			}
			close, err := timeofday.Parse(e.Window.Close)
			if err != nil {
				return nil, fmt.Errorf("venue %q window close: %w", e.Name, err)
			}
			v.WindowOpen, v.WindowClose = open, close
		}
		out = append(out, v)
	}
	return out, nil
}
