package schedule

import (
	"time"

	"github.com/trezcool/ratiba/core"
)

// Kind discriminates the three mutually exclusive entry flavours. It drives
// both rendering and resolution precedence.
type Kind string

const (
	KindAvailability      Kind = "AVAILABILITY"
	KindBlocked           Kind = "BLOCKED"
	KindScheduledInstance Kind = "SCHEDULED_INSTANCE"
)

var kindPrecedences = map[Kind]int{
	// a concrete booked class must never be overridden by a generic recurring
	// availability window, and an explicit block suppresses a weaker
	// "available" claim
	KindScheduledInstance: 3,
	KindBlocked:           2,
	KindAvailability:      1,
}

func (k Kind) Valid() bool {
	_, ok := kindPrecedences[k]
	return ok
}

func (k Kind) Precedence() int {
	return kindPrecedences[k]
}

// Status is the legacy display projection of a Kind. It is always derived,
// never stored.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
	StatusBooked      Status = "booked"

	// StatusReserved only occurs in raw upstream records; Normalize maps it
	// to KindScheduledInstance and it is never emitted by Kind.Status.
	StatusReserved Status = "reserved"
)

// Status maps a Kind to its display status. The mapping is total: unknown
// kinds project to "unavailable" so a corrupt record can never look bookable.
func (k Kind) Status() Status {
	switch k {
	case KindAvailability:
		return StatusAvailable
	case KindScheduledInstance:
		return StatusBooked
	default:
		return StatusUnavailable
	}
}

// KindFromLegacy maps raw upstream kind/status strings to a Kind.
func KindFromLegacy(s string) (Kind, bool) {
	switch Status(core.CleanString(s, true /* lower */)) {
	case StatusAvailable:
		return KindAvailability, true
	case StatusUnavailable:
		return KindBlocked, true
	case StatusBooked, StatusReserved:
		return KindScheduledInstance, true
	}
	k := Kind(core.CleanString(s))
	if k.Valid() {
		return k, true
	}
	return "", false
}

// Entry is the single scheduling unit: a recurring availability window, a
// one-off blocked window or a scheduled class instance.
//
// StartTime/EndTime are local wall-clock "HH:MM" (24h, zero-padded) within a
// single day; no overnight spans. Date is a civil date pinned to UTC midnight
// (zero when the entry is recurring). Day is a weekday name and gates
// matching when Recurring is true.
type Entry struct {
	ID          string `json:"id"`
	Kind        Kind   `json:"kind"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Notes       string `json:"notes,omitempty"`

	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Date      time.Time `json:"date,omitempty"`
	Day       string    `json:"day,omitempty"`
	Recurring bool      `json:"recurring"`

	// RecurrenceEnd bounds a recurring entry; zero means it repeats forever.
	RecurrenceEnd time.Time `json:"recurrence_end,omitempty"`
}

// Status projects the entry's kind for legacy views.
func (e Entry) Status() Status {
	return e.Kind.Status()
}

// Duration returns the entry's length in minutes, 0 when either time is
// malformed.
func (e Entry) Duration() int {
	return TimeDiff(e.EndTime, e.StartTime)
}

// HasDate reports whether the entry is bound to a concrete calendar date.
func (e Entry) HasDate() bool {
	return !e.Date.IsZero()
}

// Weekday returns the weekday name gating this entry: Day when recurring,
// the date's weekday otherwise.
func (e Entry) Weekday() string {
	if e.Recurring {
		return core.CleanString(e.Day)
	}
	if e.HasDate() {
		return e.Date.Weekday().String()
	}
	return ""
}

// Clean normalizes time strings and the weekday name in place so lexical
// "HH:MM" comparisons hold downstream.
func (e *Entry) Clean() {
	if t, ok := NormalizeTime(e.StartTime); ok {
		e.StartTime = t
	}
	if t, ok := NormalizeTime(e.EndTime); ok {
		e.EndTime = t
	}
	if wd, ok := ParseWeekday(e.Day); ok {
		e.Day = wd.String()
	}
	e.Date = dateOnly(e.Date)
	e.RecurrenceEnd = dateOnly(e.RecurrenceEnd)
}

// wellFormed reports whether the entry can ever govern an instant: valid
// kind, parseable times with end strictly after start, and the gating field
// of its mode populated. Malformed entries never match; they must not break
// a grid render (nor sneak into one).
func (e Entry) wellFormed() bool {
	if !e.Kind.Valid() {
		return false
	}
	if e.Duration() <= 0 {
		return false
	}
	if e.Recurring {
		_, ok := ParseWeekday(e.Day)
		return ok
	}
	return e.HasDate()
}

// NewEntry contains information needed to create a new Entry.
type NewEntry struct {
	ID          string `json:"id" validate:"omitempty,uuid4"`
	Kind        Kind   `json:"kind" validate:"required,entrykind"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`

	StartTime     string `json:"start_time" validate:"required,timestr"`
	EndTime       string `json:"end_time" validate:"required,timestr"`
	Date          string `json:"date" validate:"omitempty,datestr"`
	Day           string `json:"day" validate:"omitempty,weekday"`
	Recurring     bool   `json:"recurring"`
	RecurrenceEnd string `json:"recurrence_end" validate:"omitempty,datestr"`
}

func (ne *NewEntry) Validate() error {
	ne.Title = core.CleanString(ne.Title)
	ne.Location = core.CleanString(ne.Location)
	ne.Day = core.CleanString(ne.Day)
	ne.StartTime = core.CleanString(ne.StartTime)
	ne.EndTime = core.CleanString(ne.EndTime)
	ne.Date = core.CleanString(ne.Date)
	ne.RecurrenceEnd = core.CleanString(ne.RecurrenceEnd)

	if err := core.Validate.Struct(ne); err != nil {
		return err
	}
	return nil
}

// entry builds the normalized Entry. Validate must have passed.
func (ne NewEntry) entry() Entry {
	e := Entry{
		ID:          ne.ID,
		Kind:        ne.Kind,
		Title:       ne.Title,
		Description: ne.Description,
		Location:    ne.Location,
		Notes:       ne.Notes,
		StartTime:   ne.StartTime,
		EndTime:     ne.EndTime,
		Day:         ne.Day,
		Recurring:   ne.Recurring,
	}
	if ne.Date != "" {
		e.Date, _ = ParseDate(ne.Date)
	}
	if ne.RecurrenceEnd != "" {
		e.RecurrenceEnd, _ = ParseDate(ne.RecurrenceEnd)
	}
	e.Clean()
	return e
}

// UpdateEntry defines what information may be provided to modify an existing
// Entry; empty fields keep the original value.
type UpdateEntry struct {
	Kind        Kind   `json:"kind" validate:"omitempty,entrykind"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`

	StartTime     string `json:"start_time" validate:"omitempty,timestr"`
	EndTime       string `json:"end_time" validate:"omitempty,timestr"`
	Date          string `json:"date" validate:"omitempty,datestr"`
	Day           string `json:"day" validate:"omitempty,weekday"`
	Recurring     *bool  `json:"recurring"`
	RecurrenceEnd string `json:"recurrence_end" validate:"omitempty,datestr"`
}

func (ue *UpdateEntry) Validate(orig Entry) error {
	ue.Title = core.CleanString(ue.Title)
	ue.Location = core.CleanString(ue.Location)
	ue.Day = core.CleanString(ue.Day)
	ue.StartTime = core.CleanString(ue.StartTime)
	ue.EndTime = core.CleanString(ue.EndTime)
	ue.Date = core.CleanString(ue.Date)
	ue.RecurrenceEnd = core.CleanString(ue.RecurrenceEnd)

	if ue.Kind == "" {
		ue.Kind = orig.Kind
	}
	if ue.StartTime == "" {
		ue.StartTime = orig.StartTime
	}
	if ue.EndTime == "" {
		ue.EndTime = orig.EndTime
	}

	if err := core.Validate.Struct(ue); err != nil {
		return err
	}
	return nil
}

// merge applies the update on top of orig. Validate must have passed.
func (ue UpdateEntry) merge(orig Entry) Entry {
	e := orig
	e.Kind = ue.Kind
	e.StartTime = ue.StartTime
	e.EndTime = ue.EndTime
	if ue.Title != "" {
		e.Title = ue.Title
	}
	if ue.Description != "" {
		e.Description = ue.Description
	}
	if ue.Location != "" {
		e.Location = ue.Location
	}
	if ue.Notes != "" {
		e.Notes = ue.Notes
	}
	if ue.Date != "" {
		e.Date, _ = ParseDate(ue.Date)
	}
	if ue.Day != "" {
		e.Day = ue.Day
	}
	if ue.Recurring != nil {
		e.Recurring = *ue.Recurring
	}
	if ue.RecurrenceEnd != "" {
		e.RecurrenceEnd, _ = ParseDate(ue.RecurrenceEnd)
	}
	e.Clean()
	return e
}

// QueryFilter narrows AvailableSlots results; all set fields are ANDed.
type QueryFilter struct {
	Days   []string `query:"day"`    // weekday allow-list
	Bucket string   `query:"bucket"` // morning | afternoon | evening
	Search string   `query:"search"` // matches weekday name or raw start time
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Days == nil && qf.Bucket == "" && qf.Search == ""
}

func (qf *QueryFilter) Clean() {
	qf.Bucket = core.CleanString(qf.Bucket, true /* lower */)
	qf.Search = core.CleanString(qf.Search, true /* lower */)
	for i, d := range qf.Days {
		qf.Days[i] = core.CleanString(d, true /* lower */)
	}
}
