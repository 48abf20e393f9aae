package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full runtime configuration, read once from the environment
// at process start.
type Config struct {
	DatabaseURL string

	// Extraction
	MaxConcurrent int           // simultaneous browser sessions
	NavTimeout    time.Duration // per-venue page/selector wait ceiling
	GridSelector  string
	Headless      bool

	// Persistence
	ReplaceDay bool // authoritative runs delete the day's prior slots first

	// Snapshots
	SnapshotDir   string
	ScreenshotDir string

	// Proxy (optional; empty host means direct connection)
	ProxyHost  string
	ProxyUser  string
	ProxyPass  string
	ProxyPorts []string

	// loop command
	LoopInterval time.Duration
	MetricsAddr  string

	DevLog bool
}

func FromEnv() (Config, error) {
	cfg := Config{
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		GridSelector:  getenv("CW_GRID_SELECTOR", "#root .bbq2__grid"),
		Headless:      getenv("CW_HEADLESS", "1") == "1",
		ReplaceDay:    os.Getenv("CW_REPLACE_DAY") == "1",
		SnapshotDir:   getenv("CW_SNAPSHOT_DIR", "data/snapshots"),
		ScreenshotDir: getenv("CW_SCREENSHOT_DIR", "data/screenshots"),
		ProxyHost:     strings.TrimSpace(os.Getenv("PROXY_HOST")),
		ProxyUser:     os.Getenv("PROXY_USER"),
		ProxyPass:     os.Getenv("PROXY_PASS"),
		MetricsAddr:   os.Getenv("CW_METRICS_ADDR"),
		DevLog:        os.Getenv("CW_DEV_LOG") == "1",
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	workers, err := intEnv("CW_MAX_CONCURRENT", 2)
	if err != nil {
		return Config{}, err
	}
	if workers < 1 || workers > 15 {
		return Config{}, fmt.Errorf("CW_MAX_CONCURRENT must be between 1 and 15")
	}
	cfg.MaxConcurrent = workers

	navSec, err := intEnv("CW_NAV_TIMEOUT_SECONDS", 20)
	if err != nil {
		return Config{}, err
	}
	if navSec < 1 {
		return Config{}, fmt.Errorf("invalid CW_NAV_TIMEOUT_SECONDS")
	}
	cfg.NavTimeout = time.Duration(navSec) * time.Second

	loopMin, err := intEnv("CW_LOOP_MINUTES", 30)
	if err != nil {
		return Config{}, err
	}
	if loopMin < 1 {
		return Config{}, fmt.Errorf("invalid CW_LOOP_MINUTES")
	}
	cfg.LoopInterval = time.Duration(loopMin) * time.Minute

	for _, p := range strings.Split(getenv("PROXY_PORTS", "10001"), ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			cfg.ProxyPorts = append(cfg.ProxyPorts, p)
		}
	}

	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}
