package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/schedule"
	icalsvc "github.com/trezcool/ratiba/services/ical"
)

var (
	nowFunc = time.Now // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	repo    schedule.Repository
	icalSvc *icalsvc.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  grid -file FILE -view day|week|month|year [-date YYYY-MM-DD] [-cell MINUTES] - render a calendar grid")
	fmt.Println("  slots -file FILE [-day WEEKDAY] [-bucket morning|afternoon|evening] [-search TEXT] [-limit N] - list bookable slots")
	fmt.Println("  export -file FILE - write the schedule as iCalendar to stdout")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	gridCmd := flag.NewFlagSet("grid", flag.ExitOnError)
	gridFile := gridCmd.String("file", "", "JSON file of raw schedule records.")
	gridView := gridCmd.String("view", "week", "Zoom level: day, week, month or year.")
	gridDate := gridCmd.String("date", "", "Anchor date (defaults to today).")
	gridCell := gridCmd.Int("cell", core.Conf.GridCellMinutes, "Cell duration in minutes for day/week views.")

	slotsCmd := flag.NewFlagSet("slots", flag.ExitOnError)
	slotsFile := slotsCmd.String("file", "", "JSON file of raw schedule records.")
	slotsDay := slotsCmd.String("day", "", "Restrict to a weekday.")
	slotsBucket := slotsCmd.String("bucket", "", "Time-of-day bucket: morning, afternoon or evening.")
	slotsSearch := slotsCmd.String("search", "", "Free-text match on weekday name or start time.")
	slotsLimit := slotsCmd.Int("limit", 0, "Cap the result count (0 = no cap).")

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportFile := exportCmd.String("file", "", "JSON file of raw schedule records.")

	switch args[1] {
	case "grid":
		if err := gridCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *gridFile == "" {
			gridCmd.Usage()
			return errHelp
		}
		anchor, err := parseAnchor(*gridDate)
		if err != nil {
			return err
		}
		if err := cli.loadEntries(*gridFile); err != nil {
			return err
		}
		return cli.renderGrid(*gridView, anchor, *gridCell)
	case "slots":
		if err := slotsCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *slotsFile == "" {
			slotsCmd.Usage()
			return errHelp
		}
		if err := cli.loadEntries(*slotsFile); err != nil {
			return err
		}
		var days []string
		if *slotsDay != "" {
			days = []string{*slotsDay}
		}
		filter := schedule.QueryFilter{Days: days, Bucket: *slotsBucket, Search: *slotsSearch}
		return cli.renderSlots(filter, *slotsLimit)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportFile == "" {
			exportCmd.Usage()
			return errHelp
		}
		if err := cli.loadEntries(*exportFile); err != nil {
			return err
		}
		return cli.export()
	default:
		cli.printUsage()
		return errHelp
	}
}

func parseAnchor(s string) (time.Time, error) {
	if s == "" {
		return nowFunc(), nil
	}
	d, ok := schedule.ParseDate(s)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// loadEntries normalizes raw records from a JSON file into the repository.
func (cli *commandLine) loadEntries(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading records file")
	}
	var records []schedule.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return errors.Wrap(err, "parsing records file")
	}
	for _, e := range schedule.Normalize(records, core.Conf.Location(), logger) {
		if _, err := cli.repo.UpsertEntry(e); err != nil {
			return err
		}
	}
	return nil
}
