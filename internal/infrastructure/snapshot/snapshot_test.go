package snapshot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/courtwatch/internal/ingest"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: filepath.Join(dir, "snaps")}

	doc := ingest.VenueSnapshot{
		Venue:       "Padel Club / Nord:1",
		BookingDate: "2025-06-12",
		ObservedAt:  time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC),
		Strategy:    "geometry",
		Courts: []ingest.CourtSnapshot{
			{Name: "Court 1", Slots: []ingest.SlotSnapshot{
				{Start: "09:00", End: "11:00", DurationMinutes: 120, Status: "booked"},
			}},
		},
	}
	if err := w.Write(context.Background(), doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d files, want 1", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "court_data_Padel_Club_-_Nord-1_") {
		t.Errorf("filename %q not sanitized as expected", name)
	}

	b, err := os.ReadFile(filepath.Join(w.Dir, name))
	if err != nil {
		t.Fatal(err)
	}
	var got ingest.VenueSnapshot
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if got.Venue != doc.Venue || len(got.Courts) != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
