// Package browser acquires booking grids through a headless Chrome session.
// It is the only part of the system that talks to venue sites; everything it
// hands back is plain marker data.
package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/example/courtwatch/internal/domain/grid"
	"github.com/example/courtwatch/internal/domain/venue"
)

// Chrome fetches one venue's grid per call, each in a fresh browser context.
type Chrome struct {
	Log          *zap.Logger
	GridSelector string
	NavTimeout   time.Duration
	Headless     bool
	Proxies      *ProxyPool

	// ScreenshotDir, when set, receives a full-page capture per fetch.
	// Best effort only.
	ScreenshotDir string
}

type markerJSON struct {
	X     float64 `json:"x"`
	Width float64 `json:"width"`
	Class string  `json:"cls"`
	Start string  `json:"start"`
	End   string  `json:"end"`
}

type rowJSON struct {
	Resource string       `json:"resource"`
	Markers  []markerJSON `json:"markers"`
}

// FetchGrid navigates to the venue page, waits for the grid to render and
// pulls every resource row with its markers. A page with no grid rows comes
// back as an empty slice, not an error.
func (c *Chrome) FetchGrid(ctx context.Context, v venue.Venue) ([]grid.ResourceRow, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
	)
	if proxy := c.Proxies.Next(); proxy != "" {
		opts = append(opts, chromedp.ProxyServer(proxy))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	timeout := c.NavTimeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	runCtx, cancel := context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var rows []rowJSON
	err := chromedp.Run(runCtx,
		chromedp.Navigate(v.URL),
		chromedp.WaitReady(c.GridSelector, chromedp.ByQuery),
		// Grid blocks shift while the widget settles after first paint.
		chromedp.Sleep(3*time.Second),
		chromedp.Evaluate(extractScript(c.GridSelector), &rows),
	)
	if err != nil {
		return nil, fmt.Errorf("grid fetch %s: %w", v.Name, err)
	}

	c.captureScreenshot(runCtx, v)

	out := make([]grid.ResourceRow, 0, len(rows))
	for _, r := range rows {
		row := grid.ResourceRow{Resource: strings.TrimSpace(r.Resource)}
		for _, m := range r.Markers {
			row.Markers = append(row.Markers, grid.Marker{
				X:     m.X,
				Width: m.Width,
				Class: m.Class,
				Start: m.Start,
				End:   m.End,
			})
		}
		out = append(out, row)
	}
	return out, nil
}

func (c *Chrome) captureScreenshot(ctx context.Context, v venue.Venue) {
	if c.ScreenshotDir == "" {
		return
	}
	var buf []byte
	if err := chromedp.Run(ctx, chromedp.CaptureScreenshot(&buf)); err != nil {
		c.Log.Warn("screenshot failed", zap.String("venue", v.Name), zap.Error(err))
		return
	}
	if err := os.MkdirAll(c.ScreenshotDir, 0o755); err != nil {
		c.Log.Warn("screenshot dir", zap.Error(err))
		return
	}
	name := fmt.Sprintf("%s_%s.png",
		strings.ReplaceAll(v.Name, " ", "_"),
		time.Now().Format("2006-01-02_15-04-05"))
	if err := os.WriteFile(filepath.Join(c.ScreenshotDir, name), buf, 0o644); err != nil {
		c.Log.Warn("screenshot write failed", zap.Error(err))
	}
}

// extractScript walks label and slot-block elements pairwise, the way the
// grid widget lays them out. Markers expose both the geometric position and
// any explicit time attributes; the strategy layer decides which to trust.
func extractScript(selector string) string {
	return fmt.Sprintf(`(() => {
	const grid = document.querySelector(%q);
	if (!grid) return [];
	const labels = Array.from(grid.querySelectorAll('.bbq2__resource__label'));
	const blocks = Array.from(grid.querySelectorAll('.bbq2__slots-resource'));
	return labels.map((label, i) => {
		const block = blocks[i];
		const markers = !block ? [] :
			Array.from(block.querySelectorAll('.bbq2__hole')).map(el => {
				const r = el.getBoundingClientRect();
				return {
					x: r.x + window.scrollX,
					width: r.width,
					cls: el.className || '',
					start: el.getAttribute('data-start') || '',
					end: el.getAttribute('data-end') || '',
				};
			});
		return {resource: label.textContent || '', markers};
	});
})()`, selector)
}
