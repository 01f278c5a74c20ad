package schedule

import (
	"time"

	"github.com/trezcool/ratiba/core"
)

// RawRecord is the flat shape delivered by the external data-fetch
// collaborator. Times arrive either as full timestamps (StartsAt/EndsAt) or
// as bare wall-clock strings (Start/End); dates as a "YYYY-MM-DD" string or
// implied by StartsAt.
type RawRecord struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"` // raw kind or legacy status string
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	Date        string    `json:"date"`
	Day         string    `json:"day"`
	Recurring   bool      `json:"recurring"`
	Until       string    `json:"until"` // recurrence end, "YYYY-MM-DD"
}

// Normalize adapts raw upstream records into Entries: timestamps are
// stripped to local wall-clock "HH:MM" in loc, the weekday is derived from
// the date when a recurring record omits it, and legacy status strings map
// onto kinds. Malformed records are logged and dropped so one corrupt row
// cannot poison a render; normalization never fails as a whole.
func Normalize(records []RawRecord, loc *time.Location, log core.Logger) []Entry {
	if loc == nil {
		loc = time.Local
	}

	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		e, ok := normalizeRecord(rec, loc)
		if !ok {
			if log != nil {
				log.Warn("schedule: dropping malformed record", map[string]interface{}{
					"id": rec.ID, "category": rec.Category,
				})
			}
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

func normalizeRecord(rec RawRecord, loc *time.Location) (Entry, bool) {
	kind, ok := KindFromLegacy(rec.Category)
	if !ok {
		return Entry{}, false
	}

	e := Entry{
		ID:          rec.ID,
		Kind:        kind,
		Title:       core.CleanString(rec.Title),
		Description: rec.Description,
		Location:    core.CleanString(rec.Location),
		Notes:       rec.Notes,
		Day:         core.CleanString(rec.Day),
		Recurring:   rec.Recurring,
	}
	if e.ID == "" {
		return Entry{}, false
	}

	// wall-clock stripping to the single configured location
	if !rec.StartsAt.IsZero() {
		local := rec.StartsAt.In(loc)
		e.StartTime = MinutesToTime(local.Hour()*60 + local.Minute())
		e.Date = dateOnly(local)
	} else if t, ok := NormalizeTime(rec.Start); ok {
		e.StartTime = t
	} else {
		return Entry{}, false
	}
	if !rec.EndsAt.IsZero() {
		local := rec.EndsAt.In(loc)
		e.EndTime = MinutesToTime(local.Hour()*60 + local.Minute())
	} else if t, ok := NormalizeTime(rec.End); ok {
		e.EndTime = t
	} else {
		return Entry{}, false
	}

	if rec.Date != "" {
		d, ok := ParseDate(rec.Date)
		if !ok {
			return Entry{}, false
		}
		e.Date = d
	}
	if rec.Until != "" {
		if d, ok := ParseDate(rec.Until); ok {
			e.RecurrenceEnd = d
		}
	}

	// weekday derivation for recurring records that only carry a date
	if e.Recurring && e.Day == "" {
		if !e.HasDate() {
			return Entry{}, false
		}
		e.Day = e.Date.Weekday().String()
	}

	e.Clean()
	if !e.wellFormed() {
		return Entry{}, false
	}
	return e, true
}
