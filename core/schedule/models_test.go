package schedule

import (
	"testing"

	"github.com/trezcool/ratiba/core"
)

func TestKind_Status(t *testing.T) {
	tests := []struct {
		kind Kind
		want Status
	}{
		{KindAvailability, StatusAvailable},
		{KindBlocked, StatusUnavailable},
		{KindScheduledInstance, StatusBooked},
		{Kind("MYSTERY"), StatusUnavailable}, // total mapping, safe default
	}
	for _, tt := range tests {
		if got := tt.kind.Status(); got != tt.want {
			t.Errorf("%s.Status() = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestKindFromLegacy(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"available", KindAvailability, true},
		{"unavailable", KindBlocked, true},
		{"booked", KindScheduledInstance, true},
		{"reserved", KindScheduledInstance, true},
		{" Booked ", KindScheduledInstance, true},
		{"AVAILABILITY", KindAvailability, true},
		{"SCHEDULED_INSTANCE", KindScheduledInstance, true},
		{"nonsense", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := KindFromLegacy(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("KindFromLegacy(%q) = (%s, %v), want (%s, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestEntry_Clean(t *testing.T) {
	e := Entry{
		ID:        "a",
		Kind:      KindAvailability,
		StartTime: "9:00",
		EndTime:   "9:30:00",
		Day:       "  monday ",
		Recurring: true,
	}
	e.Clean()

	if e.StartTime != "09:00" || e.EndTime != "09:30" {
		t.Errorf("times = %s-%s, want 09:00-09:30", e.StartTime, e.EndTime)
	}
	if e.Day != "Monday" {
		t.Errorf("Day = %q, want Monday", e.Day)
	}
}

func TestNewEntry_Validate(t *testing.T) {
	valid := NewEntry{
		Kind:      KindAvailability,
		StartTime: "09:00",
		EndTime:   "10:00",
		Date:      "2025-06-16",
	}

	tests := []struct {
		name    string
		mutate  func(*NewEntry)
		wantErr bool
	}{
		{"valid dated entry", func(ne *NewEntry) {}, false},
		{"valid recurring entry", func(ne *NewEntry) { ne.Date = ""; ne.Day = "Monday"; ne.Recurring = true }, false},
		{"missing kind", func(ne *NewEntry) { ne.Kind = "" }, true},
		{"bad kind", func(ne *NewEntry) { ne.Kind = "LUNCH" }, true},
		{"missing start time", func(ne *NewEntry) { ne.StartTime = "" }, true},
		{"bad time", func(ne *NewEntry) { ne.EndTime = "25:00" }, true},
		{"end before start", func(ne *NewEntry) { ne.EndTime = "08:00" }, true},
		{"end equals start", func(ne *NewEntry) { ne.EndTime = ne.StartTime }, true},
		{"no date when not recurring", func(ne *NewEntry) { ne.Date = "" }, true},
		{"no day when recurring", func(ne *NewEntry) { ne.Date = ""; ne.Recurring = true }, true},
		{"bad date", func(ne *NewEntry) { ne.Date = "June 16" }, true},
		{"bad weekday", func(ne *NewEntry) { ne.Day = "Caturday"; ne.Recurring = true }, true},
		{"bad id", func(ne *NewEntry) { ne.ID = "not-a-uuid" }, true},
		{"uuid id ok", func(ne *NewEntry) { ne.ID = "7b1a3c68-92af-4a63-bd2c-6f4cf3f9d001" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ne := valid
			tt.mutate(&ne)
			if err := ne.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEntry_Weekday(t *testing.T) {
	rec := recurringEntry("a", KindAvailability, "tuesday", "09:00", "10:00")
	if got := rec.Weekday(); got != "Tuesday" {
		t.Errorf("recurring Weekday() = %q, want Tuesday", got)
	}

	dated := datedEntry(t, "b", KindBlocked, "2025-06-16", "09:00", "09:30")
	if got := dated.Weekday(); got != "Monday" {
		t.Errorf("dated Weekday() = %q, want Monday", got)
	}

	if got := (Entry{}).Weekday(); got != "" {
		t.Errorf("empty Weekday() = %q, want empty", got)
	}
}

func TestValidationErrorType(t *testing.T) {
	err := core.NewValidationError(ErrNotFound, core.FieldError{Field: "id", Error: "missing"})
	if err.Error() != ErrNotFound.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), ErrNotFound.Error())
	}
}
