package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/stnikolas/ul-timetable/internal/calendar"
	"github.com/stnikolas/ul-timetable/internal/logger"
	"github.com/stnikolas/ul-timetable/internal/scraper"
	"github.com/stnikolas/ul-timetable/internal/storage"
	"github.com/stnikolas/ul-timetable/internal/timetable"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// DefaultTimezone is the timezone the University of Limerick keeps its
// timetable in.
const DefaultTimezone = "Europe/Dublin"

var (
	flagInput         string
	flagFromJSON      string
	flagOutput        string
	flagFormat        string
	flagCalendarPath  string
	flagSemesterStart string
	flagTimezone      string
	flagDefaultWeeks  string
	flagStrict        bool
	flagVerbose       bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ul-timetable",
		Short: "Parse a UL student timetable page and export it",
		Long: `Parse a saved University of Limerick student timetable page into
structured schedule entries, then render them as JSON, a console table,
or an iCalendar (.ics) export with one event per class occurrence.`,
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().StringVar(&flagInput, "input", "", "Path to a saved timetable HTML page")
	cmd.Flags().StringVar(&flagFromJSON, "from-json", "", "Reuse a previously saved JSON snapshot instead of --input")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Save the parsed timetable as a JSON snapshot")
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "json", "Output format: json or table")
	cmd.Flags().StringVar(&flagCalendarPath, "export-calendar", "", "Write an iCalendar (.ics) export to this path")
	cmd.Flags().StringVar(&flagSemesterStart, "semester-start", "", "Monday of week 1, YYYY-MM-DD (required for calendar export)")
	cmd.Flags().StringVar(&flagTimezone, "timezone", DefaultTimezone, "IANA timezone of the institution")
	cmd.Flags().StringVar(&flagDefaultWeeks, "default-weeks", "", "Week spec applied to entries without week text, e.g. 1-12")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "Abort on the first malformed cell instead of skipping it")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

// run is the main command logic
func run(cmd *cobra.Command, args []string) error {
	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatJSON && format != FormatTable {
		return fmt.Errorf("invalid format: %s (must be 'json' or 'table')", flagFormat)
	}

	entries, err := loadEntries()
	if err != nil {
		return err
	}
	logger.Info("timetable parsed", logger.Fields{"entries": len(entries)})

	if flagOutput != "" {
		if err := storage.Save(flagOutput, entries); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		logger.Info("timetable saved", logger.Fields{"path": flagOutput})
	}

	if flagCalendarPath != "" {
		if err := exportCalendar(entries); err != nil {
			return err
		}
	}

	return WriteOutput(os.Stdout, entries, format)
}

// loadEntries produces schedule entries from whichever source was given.
func loadEntries() ([]timetable.ScheduleEntry, error) {
	switch {
	case flagFromJSON != "":
		entries, err := storage.Load(flagFromJSON)
		if err != nil {
			return nil, fmt.Errorf("loading snapshot: %w", err)
		}
		return entries, nil
	case flagInput != "":
		file, err := os.Open(flagInput)
		if err != nil {
			return nil, fmt.Errorf("opening timetable page: %w", err)
		}
		defer file.Close()

		grid, err := scraper.ExtractGrid(file)
		if err != nil {
			return nil, fmt.Errorf("extracting timetable grid: %w", err)
		}
		return collectEntries(grid, flagStrict)
	default:
		return nil, fmt.Errorf("either --input or --from-json is required")
	}
}

// collectEntries walks the grid cell by cell. The engine always surfaces
// malformed cells; the skip-or-abort decision is made here, per --strict.
func collectEntries(grid *scraper.Grid, strict bool) ([]timetable.ScheduleEntry, error) {
	var entries []timetable.ScheduleEntry
	for _, col := range grid.Columns {
		day, err := timetable.ParseDay(col.Label)
		if err != nil {
			if strict {
				return nil, err
			}
			logger.Warn("skipping day column", logger.Fields{"label": col.Label})
			continue
		}
		for _, cell := range col.Cells {
			cellEntries, err := timetable.ParseDayCell(day, cell)
			if err != nil {
				if strict {
					return nil, err
				}
				logger.Warn("skipping malformed cell", logger.Fields{
					"day":   string(day),
					"cell":  strings.Join(cell, " | "),
					"error": err.Error(),
				})
				continue
			}
			entries = append(entries, cellEntries...)
		}
	}
	return entries, nil
}

// exportCalendar materializes the entries and writes the .ics file.
func exportCalendar(entries []timetable.ScheduleEntry) error {
	if flagSemesterStart == "" {
		return fmt.Errorf("--semester-start is required for calendar export (YYYY-MM-DD, a Monday)")
	}
	anchor, err := time.Parse("2006-01-02", flagSemesterStart)
	if err != nil {
		return fmt.Errorf("invalid --semester-start %q: expected YYYY-MM-DD", flagSemesterStart)
	}

	loc, err := time.LoadLocation(flagTimezone)
	if err != nil {
		return fmt.Errorf("invalid --timezone %q: %w", flagTimezone, err)
	}

	var defaultWeeks timetable.WeekSet
	if flagDefaultWeeks != "" {
		defaultWeeks, err = timetable.ResolveWeekSpec(flagDefaultWeeks)
		if err != nil {
			return fmt.Errorf("invalid --default-weeks: %w", err)
		}
	}

	materializer := calendar.NewMaterializer(loc)
	occurrences, err := materializer.MaterializeTimetable(entries, anchor, defaultWeeks)
	if err != nil {
		return fmt.Errorf("materializing calendar: %w", err)
	}

	ics := calendar.GenerateICS(occurrences, calendar.SerializeOptions{})
	if err := os.WriteFile(flagCalendarPath, []byte(ics), 0644); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}

	logger.Info("calendar exported", logger.Fields{
		"path":   flagCalendarPath,
		"events": len(occurrences),
	})
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
