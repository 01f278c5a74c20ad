package schedule

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/ratiba/core"
)

var (
	entryKindTag  = "entrykind"
	entryKindText = "invalid entry kind"

	timeStrTag  = "timestr"
	timeStrText = "must be a 24-hour HH:MM time"

	dateStrTag  = "datestr"
	dateStrText = "must be a YYYY-MM-DD date"

	weekdayTag  = "weekday"
	weekdayText = "invalid weekday name"

	endAfterStartTag  = "endafterstart"
	endAfterStartText = "end time must be after start time"

	dateOrDayTag  = "dateorday"
	dateOrDayText = "a date is required (or a weekday when recurring)"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(entryKindTag, entryKindValidation)
	core.RegisterCustomTranslation(entryKindTag, entryKindText)

	_ = core.Validate.RegisterValidation(timeStrTag, timeStrValidation)
	core.RegisterCustomTranslation(timeStrTag, timeStrText)

	_ = core.Validate.RegisterValidation(dateStrTag, dateStrValidation)
	core.RegisterCustomTranslation(dateStrTag, dateStrText)

	_ = core.Validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(weekdayTag, weekdayText)

	core.Validate.RegisterStructValidation(entryStructValidation, NewEntry{})
	core.Validate.RegisterStructValidation(entryStructValidation, UpdateEntry{})
	core.RegisterCustomTranslation(endAfterStartTag, endAfterStartText)
	core.RegisterCustomTranslation(dateOrDayTag, dateOrDayText)
}

// Custom Validators

func entryKindValidation(fl validator.FieldLevel) bool {
	return Kind(fl.Field().String()).Valid()
}

func timeStrValidation(fl validator.FieldLevel) bool {
	_, ok := timeToMinutes(fl.Field().String())
	return ok
}

func dateStrValidation(fl validator.FieldLevel) bool {
	_, ok := ParseDate(fl.Field().String())
	return ok
}

func weekdayValidation(fl validator.FieldLevel) bool {
	_, ok := ParseWeekday(fl.Field().String())
	return ok
}

// entryStructValidation does struct level validation on NewEntry and
// UpdateEntry structs.
func entryStructValidation(sl validator.StructLevel) {
	switch e := sl.Current().Interface().(type) {
	case NewEntry:
		validateTimeWindow(e.StartTime, e.EndTime, sl)
		validateMode(e.Recurring, e.Date, e.Day, sl)
	case UpdateEntry:
		validateTimeWindow(e.StartTime, e.EndTime, sl)
	}
}

// validateTimeWindow checks that end falls strictly after start within the
// same day; overnight spans are not modeled.
func validateTimeWindow(start, end string, sl validator.StructLevel) {
	s, okS := timeToMinutes(start)
	e, okE := timeToMinutes(end)
	if !okS || !okE {
		return // field-level timestr already reports these
	}
	if e <= s {
		sl.ReportError(end, "end_time", "EndTime", endAfterStartTag, "")
	}
}

// validateMode checks that exactly one matching mode is populated: a weekday
// for recurring entries, a concrete date otherwise.
func validateMode(recurring bool, date, day string, sl validator.StructLevel) {
	if recurring {
		if day == "" {
			sl.ReportError(day, "day", "Day", dateOrDayTag, "")
		}
		return
	}
	if date == "" {
		sl.ReportError(date, "date", "Date", dateOrDayTag, "")
	}
}
