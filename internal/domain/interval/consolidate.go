package interval

import (
	"sort"

	"github.com/google/uuid"

	"github.com/example/courtwatch/internal/domain/timeofday"
)

type groupKey struct {
	courtID uuid.UUID
	date    string
	status  Status
}

// Consolidate merges one run's normalized intervals into the canonical set:
// grouped by (court, date, status), sorted by start, swept once merging
// touching or overlapping spans. The output within one group is pairwise
// non-overlapping and non-adjacent, so consolidating twice is a no-op.
// Groups are small (bounded by markers per court per day), so a linear sweep
// per group is all that's needed.
func Consolidate(in []Interval) []Interval {
	if len(in) == 0 {
		return nil
	}

	groups := make(map[groupKey][]Interval)
	var order []groupKey
	for _, iv := range in {
		k := groupKey{courtID: iv.CourtID, date: iv.Date.Format("2006-01-02"), status: iv.Status}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], iv)
	}

	out := make([]Interval, 0, len(in))
	for _, k := range order {
		out = append(out, mergeGroup(groups[k])...)
	}
	return out
}

// mergeGroup runs the sweep over one (court, date, status) group. Intervals
// in a group share a start date, so elapsed minutes from that midnight give a
// total order even for spans that wrap past it.
func mergeGroup(group []Interval) []Interval {
	sort.Slice(group, func(i, j int) bool { return group[i].Start < group[j].Start })

	merged := make([]Interval, 0, len(group))
	cur := group[0]
	for _, next := range group[1:] {
		if int(next.Start) <= cur.endElapsed() {
			if next.endElapsed() > cur.endElapsed() {
				cur.DurationMinutes = next.endElapsed() - int(cur.Start)
				cur.End = wrapEnd(cur.endElapsed())
			}
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	return append(merged, cur)
}

func wrapEnd(elapsed int) timeofday.Time {
	return timeofday.Time(elapsed % timeofday.MinutesPerDay)
}
