package icalsvc

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/schedule"
)

var byDayCodes = map[time.Weekday]string{
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
	time.Sunday:    "SU",
}

// Service serializes schedule entries as an iCalendar document for external
// calendar apps. Pure serialization: no transport, no persistence.
type Service struct {
	prodID string
}

func NewService(conf *core.Config) *Service {
	return &Service{prodID: "-//" + conf.AppName + "//Schedule//EN"}
}

// Export renders entries as a VCALENDAR. Dated entries become plain VEVENTs;
// recurring entries anchor their DTSTART on the first occurrence on or after
// now and carry a weekly RRULE (with UNTIL when the recurrence is bounded).
// Malformed entries are skipped.
func (svc *Service) Export(entries []schedule.Entry, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(svc.prodID)

	for _, e := range entries {
		start, end, ok := eventWindow(e, now)
		if !ok {
			continue
		}

		ev := cal.AddEvent(e.ID)
		ev.SetDtStampTime(now.UTC())
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(summary(e))
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		ev.SetProperty(ics.ComponentPropertyStatus, icsStatus(e))

		if e.Recurring {
			ev.AddRrule(rruleString(e))
		}
	}
	return cal.Serialize()
}

// eventWindow computes the event's concrete DTSTART/DTEND.
func eventWindow(e schedule.Entry, now time.Time) (start, end time.Time, ok bool) {
	date, ok := anchorDate(e, now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	start, ok = at(date, e.StartTime)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok = at(date, e.EndTime)
	if !ok || !end.After(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// anchorDate picks the first concrete date the entry occurs on: its own date
// when dated, else the first weekday occurrence within a week of now.
func anchorDate(e schedule.Entry, now time.Time) (time.Time, bool) {
	if !e.Recurring {
		if !e.HasDate() {
			return time.Time{}, false
		}
		return e.Date, true
	}
	occs := schedule.ExpandOccurrences(e, now, now.AddDate(0, 0, 7))
	if len(occs) == 0 {
		return time.Time{}, false
	}
	return occs[0], true
}

func at(date time.Time, hhmm string) (time.Time, bool) {
	t, err := time.Parse(schedule.DateLayout+" 15:04", date.Format(schedule.DateLayout)+" "+hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func summary(e schedule.Entry) string {
	if e.Title != "" {
		return e.Title
	}
	switch e.Kind {
	case schedule.KindAvailability:
		return "Available"
	case schedule.KindBlocked:
		return "Blocked"
	default:
		return "Class"
	}
}

func icsStatus(e schedule.Entry) string {
	switch e.Kind {
	case schedule.KindScheduledInstance:
		return "CONFIRMED"
	case schedule.KindBlocked:
		return "CANCELLED"
	default:
		return "TENTATIVE"
	}
}

func rruleString(e schedule.Entry) string {
	wd, _ := schedule.ParseWeekday(e.Day)
	rule := fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s", byDayCodes[wd])
	if !e.RecurrenceEnd.IsZero() {
		rule += ";UNTIL=" + e.RecurrenceEnd.UTC().Format("20060102T150405Z")
	}
	return rule
}
