package schedule

import (
	"time"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// ExpandOccurrences lists the concrete dates (UTC midnight) on which e
// occurs within [from, to], inclusive. A dated entry yields at most its own
// date; a recurring entry yields every matching weekday from its effective
// start, bounded by RecurrenceEnd when set. Malformed entries and inverted
// ranges yield nil.
func ExpandOccurrences(e Entry, from, to time.Time) []time.Time {
	from, to = dateOnly(from), dateOnly(to)
	if !e.wellFormed() || to.Before(from) {
		return nil
	}

	if !e.Recurring {
		d := dateOnly(e.Date)
		if d.Before(from) || d.After(to) {
			return nil
		}
		return []time.Time{d}
	}

	wd, ok := ParseWeekday(e.Day)
	if !ok {
		return nil
	}
	start := from
	if e.HasDate() && dateOnly(e.Date).After(from) {
		start = dateOnly(e.Date)
	}
	opt := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   start,
		Byweekday: []rrule.Weekday{rruleWeekdays[wd]},
	}
	if !e.RecurrenceEnd.IsZero() {
		opt.Until = dateOnly(e.RecurrenceEnd)
	}
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil
	}
	return r.Between(start, to, true /* inclusive */)
}
