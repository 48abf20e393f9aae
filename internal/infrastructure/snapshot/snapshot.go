// Package snapshot writes per-venue JSON documents to a local directory for
// offline inspection of what a run saw.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/courtwatch/internal/ingest"
)

type Writer struct {
	Dir string
}

func (w *Writer) Write(_ context.Context, doc ingest.VenueSnapshot) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	ts := time.Now().Format("2006-01-02_15-04-05")
	name := fmt.Sprintf("court_data_%s_%s.json", sanitize(doc.Venue), ts)

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.Dir, name), b, 0o644)
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '-'
		}
		return r
	}, s)
}
