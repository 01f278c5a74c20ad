package main

import (
	"fmt"
	"time"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/schedule"
)

func gridOptions(cellMinutes int) schedule.GridOptions {
	return schedule.GridOptions{
		DayStartHour: core.Conf.GridDayStartHour,
		DayEndHour:   core.Conf.GridDayEndHour,
		CellMinutes:  cellMinutes,
	}
}

func (cli *commandLine) renderGrid(view string, anchor time.Time, cellMinutes int) error {
	entries, err := cli.repo.QueryAllEntries()
	if err != nil {
		return err
	}

	switch view {
	case "day":
		printDay(schedule.DayGrid(entries, anchor, gridOptions(cellMinutes)))
	case "week":
		for _, day := range schedule.WeekGrid(entries, anchor, gridOptions(cellMinutes)) {
			printDay(day)
			fmt.Println()
		}
	case "month":
		printMonth(schedule.MonthGrid(entries, anchor))
	case "year":
		printYear(schedule.YearGrid(entries, anchor.Year()))
	default:
		return fmt.Errorf("unknown view %q (want day, week, month or year)", view)
	}
	return nil
}

func printDay(cells []schedule.Cell) {
	if len(cells) == 0 {
		return
	}
	fmt.Printf("%s (%s)\n", cells[0].Date.Format(schedule.DateLayout), cells[0].Date.Weekday())
	for _, c := range cells {
		switch {
		case c.Skip:
			fmt.Printf("  %s  |\n", c.Time)
		case c.Entry != nil:
			fmt.Printf("  %s  [%s] %s (%s-%s, %d rows)\n",
				c.Time, c.Entry.Status(), label(*c.Entry), c.Entry.StartTime, c.Entry.EndTime, c.Span)
		default:
			fmt.Printf("  %s  -\n", c.Time)
		}
	}
}

func printMonth(cells []schedule.DayCell) {
	for i, c := range cells {
		marker := " "
		if !c.InMonth {
			marker = "."
		}
		fmt.Printf("%s%s %2d", marker, c.Date.Format("01-02"), len(c.Entries))
		if (i+1)%7 == 0 {
			fmt.Println()
		} else {
			fmt.Print("  ")
		}
	}
}

func printYear(months []schedule.MonthSummary) {
	for _, m := range months {
		fmt.Printf("%s %d: %d available, %d blocked, %d booked\n",
			m.Month, m.Year, m.Available, m.Blocked, m.Booked)
	}
}

func (cli *commandLine) renderSlots(filter schedule.QueryFilter, limit int) error {
	entries, err := cli.repo.QueryAllEntries()
	if err != nil {
		return err
	}
	var slots []schedule.Entry
	if limit > 0 && filter.IsEmpty() {
		slots = schedule.UpcomingSlots(entries, nowFunc(), limit)
	} else {
		slots = schedule.AvailableSlots(entries, nowFunc(), filter)
		if limit > 0 && len(slots) > limit {
			slots = slots[:limit]
		}
	}

	for _, s := range slots {
		when := "every " + s.Weekday()
		if s.HasDate() {
			when = s.Date.Format(schedule.DateLayout)
		}
		fmt.Printf("%s  %s-%s  %s\n", when, s.StartTime, s.EndTime, label(s))
	}
	fmt.Printf("%d slot(s)\n", len(slots))
	return nil
}

func (cli *commandLine) export() error {
	entries, err := cli.repo.QueryAllEntries()
	if err != nil {
		return err
	}
	fmt.Print(cli.icalSvc.Export(entries, nowFunc()))
	return nil
}

func label(e schedule.Entry) string {
	if e.Title != "" {
		return e.Title
	}
	return string(e.Kind)
}
