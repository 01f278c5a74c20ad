package schedule

import "time"

// AppliesTo reports whether e governs the given calendar date.
//
// A recurring entry matches every occurrence of its weekday from its
// effective start (its Date, when set) until RecurrenceEnd (forever when
// unset). A non-recurring entry matches exactly its calendar date, never
// adjacent ones. When both Date and Day are populated the Recurring flag
// decides which one gates matching; the other is ignored rather than
// reconciled. Malformed entries never match.
//
// The function is referentially transparent so callers rendering dense grids
// may memoize it freely.
func AppliesTo(e Entry, date time.Time) bool {
	if !e.wellFormed() {
		return false
	}
	if !e.Recurring {
		return SameDay(e.Date, date)
	}

	wd, ok := ParseWeekday(e.Day)
	if !ok {
		return false
	}
	if date.Weekday() != wd {
		return false
	}
	d := dateOnly(date)
	if e.HasDate() && d.Before(dateOnly(e.Date)) {
		return false
	}
	if !e.RecurrenceEnd.IsZero() && d.After(dateOnly(e.RecurrenceEnd)) {
		return false
	}
	return true
}
