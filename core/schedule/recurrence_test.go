package schedule

import (
	"testing"
	"time"
)

func TestAppliesTo_recurring(t *testing.T) {
	tue := recurringEntry("a", KindAvailability, "Tuesday", "09:00", "10:00")

	// every Tuesday matches, no other weekday does
	for d := mustDate(t, "2025-06-01"); d.Month() == time.June; d = d.AddDate(0, 0, 1) {
		want := d.Weekday() == time.Tuesday
		if got := AppliesTo(tue, d); got != want {
			t.Errorf("AppliesTo(%s %s) = %v, want %v", d.Format(DateLayout), d.Weekday(), got, want)
		}
	}
}

func TestAppliesTo_recurringBounds(t *testing.T) {
	e := recurringEntry("a", KindAvailability, "tuesday", "09:00", "10:00")
	e.Date = mustDate(t, "2025-06-10")          // effective start, a Tuesday
	e.RecurrenceEnd = mustDate(t, "2025-06-24") // inclusive end

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"before effective start", "2025-06-03", false},
		{"on effective start", "2025-06-10", true},
		{"mid window", "2025-06-17", true},
		{"on recurrence end", "2025-06-24", true},
		{"after recurrence end", "2025-07-01", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppliesTo(e, mustDate(t, tt.date)); got != tt.want {
				t.Errorf("AppliesTo(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestAppliesTo_dated(t *testing.T) {
	e := datedEntry(t, "b", KindBlocked, "2025-06-16", "09:00", "09:30")

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"exact date", "2025-06-16", true},
		{"previous day", "2025-06-15", false},
		{"next day", "2025-06-17", false},
		{"same weekday next week", "2025-06-23", false},
		{"same weekday prior week", "2025-06-09", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppliesTo(e, mustDate(t, tt.date)); got != tt.want {
				t.Errorf("AppliesTo(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

// A recurring entry whose Day disagrees with its Date's weekday follows Day;
// a non-recurring one follows Date. The other field is ignored, not fixed.
func TestAppliesTo_ambiguousMode(t *testing.T) {
	e := datedEntry(t, "a", KindAvailability, "2025-06-16", "09:00", "10:00") // a Monday
	e.Day = "Friday"
	e.Recurring = true

	if !AppliesTo(e, mustDate(t, "2025-06-20")) { // a Friday
		t.Error("recurring entry must follow Day, not Date's weekday")
	}
	if AppliesTo(e, mustDate(t, "2025-06-23")) { // Monday after Date
		t.Error("recurring entry must ignore Date's weekday")
	}

	e.Recurring = false
	if !AppliesTo(e, mustDate(t, "2025-06-16")) {
		t.Error("dated entry must follow Date")
	}
	if AppliesTo(e, mustDate(t, "2025-06-20")) {
		t.Error("dated entry must ignore Day")
	}
}

func TestAppliesTo_malformedNeverMatches(t *testing.T) {
	monday := mustDate(t, "2025-06-16")

	tests := []struct {
		name  string
		entry Entry
	}{
		{"missing date and day", Entry{ID: "x", Kind: KindAvailability, StartTime: "09:00", EndTime: "10:00"}},
		{"end equals start", datedEntry(t, "x", KindBlocked, "2025-06-16", "09:00", "09:00")},
		{"end before start", datedEntry(t, "x", KindBlocked, "2025-06-16", "10:00", "09:00")},
		{"garbage times", Entry{ID: "x", Kind: KindAvailability, StartTime: "soon", EndTime: "later", Date: monday}},
		{"unknown kind", Entry{ID: "x", Kind: "MYSTERY", StartTime: "09:00", EndTime: "10:00", Date: monday}},
		{"recurring with bad day", recurringEntry("x", KindAvailability, "Someday", "09:00", "10:00")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if AppliesTo(tt.entry, monday) {
				t.Error("malformed entry matched; want never-matching")
			}
		})
	}
}
