package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/stnikolas/ul-timetable/internal/timetable"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
)

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt string                    `json:"generated_at"`
	EntryCount  int                       `json:"entry_count"`
	Entries     []timetable.ScheduleEntry `json:"entries"`
}

// WriteOutput writes the entries in the specified format
func WriteOutput(w io.Writer, entries []timetable.ScheduleEntry, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, entries)
	case FormatTable:
		return writeTable(w, entries)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the timetable as JSON
func writeJSON(w io.Writer, entries []timetable.ScheduleEntry) error {
	result := OutputResult{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		EntryCount:  len(entries),
		Entries:     entries,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeTable outputs the timetable as a per-day console table, days in
// week order and slots sorted by start time within each day.
func writeTable(w io.Writer, entries []timetable.ScheduleEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No classes found.")
		return nil
	}

	byDay := make(map[timetable.Day][]timetable.ScheduleEntry)
	for _, entry := range entries {
		byDay[entry.Day] = append(byDay[entry.Day], entry)
	}

	days := []timetable.Day{
		timetable.Monday,
		timetable.Tuesday,
		timetable.Wednesday,
		timetable.Thursday,
		timetable.Friday,
	}
	for _, day := range days {
		dayEntries := byDay[day]
		if len(dayEntries) == 0 {
			continue
		}
		sort.Slice(dayEntries, func(i, j int) bool {
			return dayEntries[i].StartTime.Before(dayEntries[j].StartTime)
		})

		fmt.Fprintf(w, "=== %s ===\n", day)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tCOURSE\tLECTURER\tROOM\tWEEKS")
		for _, e := range dayEntries {
			fmt.Fprintf(tw, "%s - %s\t%s\t%s\t%s\t%s\n",
				e.StartTime, e.EndTime, e.CourseCode, e.Lecturer, e.Room, e.WeekSpecRaw)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
