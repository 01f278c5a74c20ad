package schedule

import (
	"testing"
)

func TestAvailableSlots_futureOnly(t *testing.T) {
	now := mustDate(t, "2025-06-10")
	entries := []Entry{
		datedEntry(t, "past", KindAvailability, "2025-06-09", "09:00", "10:00"),
		datedEntry(t, "today", KindAvailability, "2025-06-10", "09:00", "10:00"),
		datedEntry(t, "future", KindAvailability, "2025-06-11", "09:00", "10:00"),
		recurringEntry("weekly", KindAvailability, "Friday", "09:00", "10:00"),
	}

	got := AvailableSlots(entries, now, QueryFilter{})
	ids := entryIDs(got)

	// dated slots must lie strictly after now; recurring ones always pass
	want := []string{"future", "weekly"}
	if !equalIDs(ids, want) {
		t.Errorf("AvailableSlots() = %v, want %v", ids, want)
	}
}

func TestAvailableSlots_kindFilterAndSort(t *testing.T) {
	now := mustDate(t, "2025-06-10")
	entries := []Entry{
		recurringEntry("weekly", KindAvailability, "Monday", "08:00", "09:00"),
		datedEntry(t, "blocked", KindBlocked, "2025-06-12", "09:00", "10:00"),
		datedEntry(t, "booked", KindScheduledInstance, "2025-06-12", "09:00", "10:00"),
		datedEntry(t, "later-day", KindAvailability, "2025-06-13", "08:00", "09:00"),
		datedEntry(t, "early", KindAvailability, "2025-06-12", "09:00", "10:00"),
		datedEntry(t, "earlier-time", KindAvailability, "2025-06-12", "07:30", "08:30"),
		{ID: "junk", Kind: KindAvailability, StartTime: "10:00", EndTime: "09:00", Date: mustDate(t, "2025-06-12")},
	}

	got := AvailableSlots(entries, now, QueryFilter{})
	ids := entryIDs(got)

	// only AVAILABILITY survives; date asc, then start time asc, recurring
	// (dateless) entries deliberately sort after all dated ones
	want := []string{"earlier-time", "early", "later-day", "weekly"}
	if !equalIDs(ids, want) {
		t.Errorf("AvailableSlots() = %v, want %v", ids, want)
	}
}

func TestAvailableSlots_filters(t *testing.T) {
	now := mustDate(t, "2025-06-10")
	entries := []Entry{
		datedEntry(t, "wed-morning", KindAvailability, "2025-06-11", "08:00", "09:00"),
		datedEntry(t, "wed-afternoon", KindAvailability, "2025-06-11", "13:00", "14:00"),
		datedEntry(t, "thu-evening", KindAvailability, "2025-06-12", "18:00", "19:00"),
		recurringEntry("fri-morning", KindAvailability, "Friday", "10:00", "11:00"),
	}

	tests := []struct {
		name   string
		filter QueryFilter
		want   []string
	}{
		{"weekday allow-list", QueryFilter{Days: []string{"wednesday"}}, []string{"wed-morning", "wed-afternoon"}},
		{"allow-list matches recurring day", QueryFilter{Days: []string{"Friday"}}, []string{"fri-morning"}},
		{"morning bucket", QueryFilter{Bucket: "morning"}, []string{"wed-morning", "fri-morning"}},
		{"afternoon bucket", QueryFilter{Bucket: "afternoon"}, []string{"wed-afternoon"}},
		{"evening bucket", QueryFilter{Bucket: "evening"}, []string{"thu-evening"}},
		{"unknown bucket matches nothing", QueryFilter{Bucket: "brunch"}, []string{}},
		{"search weekday name", QueryFilter{Search: "thurs"}, []string{"thu-evening"}},
		{"search start time", QueryFilter{Search: "13:0"}, []string{"wed-afternoon"}},
		{"filters are ANDed", QueryFilter{Days: []string{"wednesday"}, Bucket: "morning"}, []string{"wed-morning"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := entryIDs(AvailableSlots(entries, now, tt.filter))
			if !equalIDs(got, tt.want) {
				t.Errorf("AvailableSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpcomingSlots_cap(t *testing.T) {
	now := mustDate(t, "2025-06-10")
	entries := make([]Entry, 0, 10)
	for i := 0; i < 10; i++ {
		entries = append(entries, datedEntry(t, string(rune('a'+i)), KindAvailability, "2025-06-11", MinutesToTime(8*60+i*30), MinutesToTime(8*60+i*30+30)))
	}

	if got := UpcomingSlots(entries, now, 6); len(got) != 6 {
		t.Errorf("len(UpcomingSlots(6)) = %d, want 6", len(got))
	}
	if got := UpcomingSlots(entries, now, 0); len(got) != 10 {
		t.Errorf("len(UpcomingSlots(0)) = %d, want all 10", len(got))
	}
}

func entryIDs(entries []Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
