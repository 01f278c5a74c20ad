package testutil

import (
	"testing"
	"time"

	"github.com/trezcool/ratiba/core/schedule"
)

// Date parses a "2006-01-02" date or fails the test.
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	d, ok := schedule.ParseDate(s)
	if !ok {
		t.Fatalf("bad test date %q", s)
	}
	return d
}

// DatedEntry builds a normalized one-off entry on a concrete date.
func DatedEntry(t *testing.T, id string, kind schedule.Kind, date, start, end string) schedule.Entry {
	t.Helper()
	e := schedule.Entry{
		ID:        id,
		Kind:      kind,
		StartTime: start,
		EndTime:   end,
		Date:      Date(t, date),
	}
	e.Clean()
	return e
}

// RecurringEntry builds a normalized weekly entry on a weekday name.
func RecurringEntry(id string, kind schedule.Kind, day, start, end string) schedule.Entry {
	e := schedule.Entry{
		ID:        id,
		Kind:      kind,
		StartTime: start,
		EndTime:   end,
		Day:       day,
		Recurring: true,
	}
	e.Clean()
	return e
}

// SaveEntry stores an entry or fails the test.
func SaveEntry(t *testing.T, repo schedule.Repository, e schedule.Entry) schedule.Entry {
	t.Helper()
	e, err := repo.UpsertEntry(e)
	if err != nil {
		t.Fatalf("SaveEntry() failed: %v", err)
	}
	return e
}
