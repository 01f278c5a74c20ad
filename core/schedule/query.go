package schedule

import (
	"sort"
	"strings"
	"time"
)

// time-of-day buckets for QueryFilter.Bucket, keyed on an entry's start time
var buckets = map[string][2]int{
	"morning":   {6 * 60, 12 * 60},
	"afternoon": {12 * 60, 17 * 60},
	"evening":   {17 * 60, 21 * 60},
}

// AvailableSlots derives booking candidates from entries: AVAILABILITY
// entries whose date lies strictly after now, with recurring entries always
// passing the date check (a standing weekly window, not a specific
// occurrence). All set QueryFilter fields are ANDed on top.
//
// Results are ordered by date ascending then start time ascending; recurring
// entries carry no concrete date and deliberately sort after all dated ones.
// The input is never mutated and the result is a pure function of the
// arguments.
func AvailableSlots(entries []Entry, now time.Time, filter QueryFilter) []Entry {
	filter.Clean()

	slots := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.wellFormed() || e.Kind != KindAvailability {
			continue
		}
		if !e.Recurring && !dateOnly(e.Date).After(dateOnly(now)) {
			continue
		}
		if !matchesFilter(e, filter) {
			continue
		}
		slots = append(slots, e)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if a.Recurring != b.Recurring {
			return !a.Recurring // dated slots first
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.StartTime < b.StartTime
	})
	return slots
}

// UpcomingSlots is the "quick book" shortlist: the first limit available
// slots, unfiltered.
func UpcomingSlots(entries []Entry, now time.Time, limit int) []Entry {
	slots := AvailableSlots(entries, now, QueryFilter{})
	if limit > 0 && len(slots) > limit {
		slots = slots[:limit]
	}
	return slots
}

func matchesFilter(e Entry, qf QueryFilter) bool {
	if qf.IsEmpty() {
		return true
	}

	weekday := strings.ToLower(e.Weekday())

	if qf.Days != nil {
		var ok bool
		for _, d := range qf.Days {
			if d == weekday {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if qf.Bucket != "" {
		span, ok := buckets[qf.Bucket]
		if !ok {
			return false
		}
		start, ok := timeToMinutes(e.StartTime)
		if !ok || start < span[0] || start >= span[1] {
			return false
		}
	}

	if qf.Search != "" {
		if !strings.Contains(weekday, qf.Search) &&
			!strings.Contains(strings.ToLower(e.StartTime), qf.Search) {
			return false
		}
	}
	return true
}
