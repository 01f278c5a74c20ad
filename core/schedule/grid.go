package schedule

import (
	"sort"
	"time"
)

// GridOptions is the cell-partition policy shared by the day and week grids.
// Grids differ only in date range and partitioning; occupancy questions are
// always delegated to Resolve so every zoom level agrees on who owns an
// instant.
type GridOptions struct {
	DayStartHour int // first ladder row, 24h clock
	DayEndHour   int // ladder stops before this hour
	CellMinutes  int // row duration, commonly 30 or 60
}

// DefaultGridOptions mirrors the core.Config defaults: hourly rows from
// 05:00 to 23:00.
func DefaultGridOptions() GridOptions {
	return GridOptions{DayStartHour: 5, DayEndHour: 23, CellMinutes: 60}
}

func (o GridOptions) normalized() GridOptions {
	def := DefaultGridOptions()
	if o.CellMinutes <= 0 {
		o.CellMinutes = def.CellMinutes
	}
	if o.DayStartHour < 0 || o.DayStartHour > 23 {
		o.DayStartHour = def.DayStartHour
	}
	if o.DayEndHour <= o.DayStartHour || o.DayEndHour > 24 {
		o.DayEndHour = def.DayEndHour
	}
	return o
}

// rowOf maps a minute of the day onto its ladder row, clamping times before
// the ladder start onto the first row.
func (o GridOptions) rowOf(minute int) int {
	r := (minute - o.DayStartHour*60) / o.CellMinutes
	if r < 0 {
		r = 0
	}
	return r
}

// Cell is one discrete (date, time-of-day) unit of a day or week grid.
// Exactly one of three states holds: a block starts here (Entry set, Span
// rows tall), a block from an earlier row continues through here (Skip), or
// the instant is free (click to add).
type Cell struct {
	Date  time.Time
	Time  string // "HH:MM" row label
	Entry *Entry // authoritative entry whose block starts on this row
	Span  int    // rows the block covers; 0 when no block starts here
	Skip  bool   // continuation of a block rendered on an earlier row
}

// DayGrid enumerates one date's time ladder. Each row is resolved
// independently; a multi-row entry yields a single block on its start row
// and Skip marks on the rows it runs through, so a 2-hour class never draws
// as two stacked one-hour blocks.
func DayGrid(entries []Entry, date time.Time, opts GridOptions) []Cell {
	return dayCells(entries, date, opts.normalized())
}

// WeekGrid enumerates seven day ladders, Monday through Sunday, for the week
// containing ref (a Sunday anchors to the prior Monday).
func WeekGrid(entries []Entry, ref time.Time, opts GridOptions) [][]Cell {
	opts = opts.normalized()
	monday := MondayOf(ref)

	days := make([][]Cell, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, dayCells(entries, monday.AddDate(0, 0, i), opts))
	}
	return days
}

func dayCells(entries []Entry, date time.Time, o GridOptions) []Cell {
	date = dateOnly(date)
	startMin, endMin := o.DayStartHour*60, o.DayEndHour*60

	cells := make([]Cell, 0, (endMin-startMin)/o.CellMinutes)
	for m := startMin; m < endMin; m += o.CellMinutes {
		c := Cell{Date: date, Time: MinutesToTime(m)}
		if e := Resolve(entries, date, c.Time); e != nil {
			if start, ok := timeToMinutes(e.StartTime); ok && o.rowOf(start) < o.rowOf(m) {
				// already rendered by an earlier row's block
				c.Skip = true
			} else {
				c.Entry = e
				c.Span = SpanCells(*e, o.CellMinutes)
			}
		}
		cells = append(cells, c)
	}
	return cells
}

// DayCell is one calendar day of a month grid.
type DayCell struct {
	Date    time.Time
	InMonth bool    // false on the leading/trailing padding days
	Entries []Entry // entries governing this date, by start time
}

// MonthGrid enumerates a 6x7 calendar grid for the month containing ref,
// padded with adjacent-month days so every row runs Monday through Sunday.
func MonthGrid(entries []Entry, ref time.Time) []DayCell {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := MondayOf(first)

	cells := make([]DayCell, 0, 42)
	for i := 0; i < 42; i++ {
		date := start.AddDate(0, 0, i)
		cells = append(cells, DayCell{
			Date:    date,
			InMonth: date.Month() == ref.Month(),
			Entries: entriesOn(entries, date),
		})
	}
	return cells
}

// entriesOn collects the entries governing date, ordered by start time with
// precedence breaking ties.
func entriesOn(entries []Entry, date time.Time) []Entry {
	var day []Entry
	for _, e := range entries {
		if AppliesTo(e, date) {
			day = append(day, e)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		if day[i].StartTime != day[j].StartTime {
			return day[i].StartTime < day[j].StartTime
		}
		return day[i].Kind.Precedence() > day[j].Kind.Precedence()
	})
	return day
}

// MonthSummary is the year view's rollup for one month: occurrence-day
// counts per entry kind, no time-of-day granularity.
type MonthSummary struct {
	Year  int
	Month time.Month

	Available int // AVAILABILITY occurrence days
	Blocked   int // BLOCKED occurrence days
	Booked    int // SCHEDULED_INSTANCE occurrence days
}

// YearGrid enumerates twelve month summaries for the given year. A recurring
// entry contributes one count per weekday occurrence within the month.
func YearGrid(entries []Entry, year int) []MonthSummary {
	months := make([]MonthSummary, 0, 12)
	for m := time.January; m <= time.December; m++ {
		from := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)

		sum := MonthSummary{Year: year, Month: m}
		for _, e := range entries {
			n := len(ExpandOccurrences(e, from, to))
			switch e.Kind {
			case KindAvailability:
				sum.Available += n
			case KindBlocked:
				sum.Blocked += n
			case KindScheduledInstance:
				sum.Booked += n
			}
		}
		months = append(months, sum)
	}
	return months
}
