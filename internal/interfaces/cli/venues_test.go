package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/courtwatch/internal/domain/timeofday"
)

const venuesYAML = `
venues:
  - name: Playmore Milano
    url: https://booking.example/playmore
    calibration:
      origin_px: 350
      px_per_hour: 39
      hour_offset: -1.0
    window:
      open: "06:00"
      close: "23:30"
  - name: Open Slots Club
    url: https://booking.example/openslots
`

func TestLoadVenueFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.yaml")
	if err := os.WriteFile(path, []byte(venuesYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	vs, err := loadVenueFile(path)
	if err != nil {
		t.Fatalf("loadVenueFile: %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("got %d venues, want 2", len(vs))
	}

	calibrated := vs[0]
	if calibrated.Calibration == nil {
		t.Fatal("first venue should carry calibration")
	}
	if calibrated.Calibration.HourOffset != -1.0 {
		t.Errorf("hour offset = %v, want -1.0", calibrated.Calibration.HourOffset)
	}
	if calibrated.WindowOpen != timeofday.New(6, 0) {
		t.Errorf("window open = %v, want 06:00", calibrated.WindowOpen)
	}

	if vs[1].Calibration != nil {
		t.Error("second venue should have no calibration (attribute strategy)")
	}
}

func TestLoadVenueFileRejectsIncompleteEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.yaml")
	if err := os.WriteFile(path, []byte("venues:\n  - name: only-a-name\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadVenueFile(path); err == nil {
		t.Error("want error for entry without url")
	}
}
