package schedule

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, ok := ParseDate(s)
	if !ok {
		t.Fatalf("bad test date %q", s)
	}
	return d
}

func datedEntry(t *testing.T, id string, kind Kind, date, start, end string) Entry {
	t.Helper()
	e := Entry{ID: id, Kind: kind, StartTime: start, EndTime: end, Date: mustDate(t, date)}
	e.Clean()
	return e
}

func recurringEntry(id string, kind Kind, day, start, end string) Entry {
	e := Entry{ID: id, Kind: kind, StartTime: start, EndTime: end, Day: day, Recurring: true}
	e.Clean()
	return e
}
