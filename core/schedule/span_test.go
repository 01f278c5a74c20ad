package schedule

import "testing"

func TestSpanCells(t *testing.T) {
	tests := []struct {
		name        string
		start, end  string
		cellMinutes int
		want        int
	}{
		{"two hours on hourly grid", "09:00", "11:00", 60, 2},
		{"two hours on half-hour grid", "09:00", "11:00", 30, 4},
		{"partial trailing cell rounds up", "09:00", "10:30", 60, 2},
		{"fits one cell", "09:00", "09:30", 60, 1},
		{"shorter than a cell", "09:05", "09:10", 30, 1},
		{"90 minutes on half-hour grid", "10:15", "11:45", 30, 3},
		{"malformed times still occupy start cell", "nope", "later", 60, 1},
		{"zero cell duration", "09:00", "11:00", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{StartTime: tt.start, EndTime: tt.end}
			if got := SpanCells(e, tt.cellMinutes); got != tt.want {
				t.Errorf("SpanCells() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimeDiff(t *testing.T) {
	tests := []struct {
		name       string
		end, start string
		want       int
	}{
		{"two hours", "11:00", "09:00", 120},
		{"negative", "09:00", "11:00", -120},
		{"unpadded", "9:30", "9:00", 30},
		{"malformed end", "late", "09:00", 0},
		{"malformed start", "09:00", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeDiff(tt.end, tt.start); got != tt.want {
				t.Errorf("TimeDiff(%q, %q) = %d, want %d", tt.end, tt.start, got, tt.want)
			}
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"09:00", "09:00", true},
		{"9:00", "09:00", true},
		{"9:5", "09:05", true},
		{"23:59:59", "23:59", true},
		{" 08:30 ", "08:30", true},
		{"24:00", "", false},
		{"12:60", "", false},
		{"noonish", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeTime(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormalizeTime(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
