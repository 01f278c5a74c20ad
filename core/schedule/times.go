package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the civil date format used across the engine.
const DateLayout = "2006-01-02"

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday matches a weekday name case-insensitively.
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// ParseDate parses a "2006-01-02" civil date, pinned to UTC midnight.
func ParseDate(s string) (time.Time, bool) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// NormalizeTime turns "H:MM", "HH:MM" or "HH:MM:SS" into zero-padded "HH:MM".
// Lexical comparison of times is only valid on this normalized form.
func NormalizeTime(s string) (string, bool) {
	m, ok := timeToMinutes(s)
	if !ok {
		return "", false
	}
	return MinutesToTime(m), true
}

// MinutesToTime formats a minute-of-day as zero-padded "HH:MM".
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// timeToMinutes parses a wall-clock time string into its minute of the day.
func timeToMinutes(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// TimeDiff returns end - start in minutes, 0 when either side is malformed.
func TimeDiff(end, start string) int {
	e, ok := timeToMinutes(end)
	if !ok {
		return 0
	}
	s, ok := timeToMinutes(start)
	if !ok {
		return 0
	}
	return e - s
}

// dateOnly strips the clock from t, pinning the civil date to UTC midnight.
// The zero value passes through so "no date" survives normalization.
func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b denote the same calendar day, ignoring
// time-of-day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MondayOf returns the Monday of the ISO week containing date; a Sunday maps
// to the prior Monday.
func MondayOf(date time.Time) time.Time {
	diff := 1 - int(date.Weekday())
	if date.Weekday() == time.Sunday {
		diff = -6
	}
	return dateOnly(date).AddDate(0, 0, diff)
}
