package interval

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/example/courtwatch/internal/domain/timeofday"
)

var (
	testDate = time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	courtA   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	courtB   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func iv(court uuid.UUID, status Status, startH, startM, endH, endM int) Interval {
	start := timeofday.New(startH, startM)
	end := timeofday.New(endH, endM)
	dur := int(end) - int(start)
	if dur <= 0 {
		dur += timeofday.MinutesPerDay
	}
	return Interval{
		CourtID:         court,
		Date:            testDate,
		Start:           start,
		End:             end,
		DurationMinutes: dur,
		Status:          status,
	}
}

func TestConsolidate(t *testing.T) {
	t.Run("overlapping and disjoint", func(t *testing.T) {
		in := []Interval{
			iv(courtA, StatusBooked, 9, 0, 10, 0),
			iv(courtA, StatusBooked, 9, 30, 11, 0),
			iv(courtA, StatusBooked, 14, 0, 15, 0),
		}
		want := []Interval{
			iv(courtA, StatusBooked, 9, 0, 11, 0),
			iv(courtA, StatusBooked, 14, 0, 15, 0),
		}
		if diff := cmp.Diff(want, Consolidate(in)); diff != "" {
			t.Errorf("Consolidate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("touching intervals merge", func(t *testing.T) {
		in := []Interval{
			iv(courtA, StatusBooked, 9, 0, 10, 0),
			iv(courtA, StatusBooked, 10, 0, 11, 0),
		}
		got := Consolidate(in)
		if len(got) != 1 {
			t.Fatalf("got %d intervals, want 1", len(got))
		}
		if got[0].DurationMinutes != 120 {
			t.Errorf("duration = %d, want 120", got[0].DurationMinutes)
		}
	})

	t.Run("exact duplicates collapse", func(t *testing.T) {
		in := []Interval{
			iv(courtA, StatusBooked, 9, 0, 10, 0),
			iv(courtA, StatusBooked, 9, 0, 10, 0),
		}
		if got := Consolidate(in); len(got) != 1 {
			t.Errorf("got %d intervals, want 1", len(got))
		}
	})

	t.Run("contained interval is absorbed", func(t *testing.T) {
		in := []Interval{
			iv(courtA, StatusBooked, 9, 0, 12, 0),
			iv(courtA, StatusBooked, 10, 0, 11, 0),
		}
		want := []Interval{iv(courtA, StatusBooked, 9, 0, 12, 0)}
		if diff := cmp.Diff(want, Consolidate(in)); diff != "" {
			t.Errorf("Consolidate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("groups never merge across court, date or status", func(t *testing.T) {
		otherDate := testDate.AddDate(0, 0, 1)
		sameSpanOtherDate := iv(courtA, StatusBooked, 9, 0, 10, 0)
		sameSpanOtherDate.Date = otherDate

		in := []Interval{
			iv(courtA, StatusBooked, 9, 0, 10, 0),
			iv(courtB, StatusBooked, 9, 30, 10, 30),
			iv(courtA, StatusAvailable, 9, 30, 10, 30),
			sameSpanOtherDate,
		}
		if got := Consolidate(in); len(got) != 4 {
			t.Errorf("got %d intervals, want 4 separate groups", len(got))
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		in := []Interval{
			iv(courtA, StatusBooked, 9, 0, 10, 0),
			iv(courtA, StatusBooked, 9, 30, 11, 0),
			iv(courtB, StatusAvailable, 8, 0, 9, 0),
			iv(courtA, StatusBooked, 14, 0, 15, 0),
		}
		once := Consolidate(in)
		twice := Consolidate(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("second pass changed the set (-once +twice):\n%s", diff)
		}
	})

	t.Run("wrapping span merges with late evening", func(t *testing.T) {
		in := []Interval{
			iv(courtA, StatusBooked, 22, 0, 23, 30),
			iv(courtA, StatusBooked, 23, 0, 0, 30), // crosses midnight
		}
		got := Consolidate(in)
		if len(got) != 1 {
			t.Fatalf("got %d intervals, want 1", len(got))
		}
		if got[0].Start != timeofday.New(22, 0) || got[0].End != timeofday.New(0, 30) {
			t.Errorf("span = %v-%v, want 22:00-00:30", got[0].Start, got[0].End)
		}
		if got[0].DurationMinutes != 150 {
			t.Errorf("duration = %d, want 150", got[0].DurationMinutes)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Consolidate(nil); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}

// TestConsolidateNonOverlap checks the output invariant directly: within one
// (court, date, status) group no two intervals touch or overlap.
func TestConsolidateNonOverlap(t *testing.T) {
	in := []Interval{
		iv(courtA, StatusBooked, 6, 0, 7, 0),
		iv(courtA, StatusBooked, 6, 30, 8, 0),
		iv(courtA, StatusBooked, 8, 0, 9, 0),
		iv(courtA, StatusBooked, 12, 0, 13, 0),
		iv(courtA, StatusBooked, 12, 30, 12, 45),
		iv(courtA, StatusBooked, 20, 0, 21, 0),
	}
	got := Consolidate(in)
	for i := 0; i < len(got); i++ {
		for j := i + 1; j < len(got); j++ {
			a, b := got[i], got[j]
			aEnd := int(a.Start) + a.DurationMinutes
			bEnd := int(b.Start) + b.DurationMinutes
			if aEnd >= int(b.Start) && bEnd >= int(a.Start) {
				t.Errorf("intervals %d and %d touch or overlap: %v-%v vs %v-%v",
					i, j, a.Start, a.End, b.Start, b.End)
			}
		}
	}
}
