package timetable

import (
	"fmt"
	"regexp"
	"strings"
)

// timeRangeRe matches a cell line that introduces a new slot, e.g.
// "09:00 - 10:00". Everything until the next such line belongs to the slot.
var timeRangeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})$`)

// MalformedRowError reports a scraped cell that cannot be decomposed into
// the expected fields. It carries the day label, the failing field and the
// offending raw line so an operator can locate the row in the original
// scrape without re-running the browser.
type MalformedRowError struct {
	Day    string // day label of the owning cell
	Field  string // field that failed: "day", "time", "course_code", ...
	Line   string // offending raw line, if one exists
	Reason string
}

func (e *MalformedRowError) Error() string {
	msg := fmt.Sprintf("malformed row on %s: %s: %s", e.Day, e.Field, e.Reason)
	if e.Line != "" {
		msg += fmt.Sprintf(" (line %q)", e.Line)
	}
	return msg
}

// ParseDayCell parses the raw text lines of one timetable grid cell into
// schedule entries, one per time-range line found in the cell.
//
// Lines are segmented into groups, each starting at a "HH:MM - HH:MM" line.
// Within a group the trailing lines are, in order: course code, lecturer,
// room, week text. A missing lecturer or room leaves the field empty; a
// missing time range or course code fails with MalformedRowError. An empty
// cell means the day has no classes and yields no entries.
func ParseDayCell(day Day, lines []string) ([]ScheduleEntry, error) {
	trimmed := make([]string, 0, len(lines))
	for _, ln := range lines {
		if t := strings.TrimSpace(ln); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	if len(trimmed) == 0 {
		return nil, nil
	}

	var starts []int
	for i, ln := range trimmed {
		if timeRangeRe.MatchString(ln) {
			starts = append(starts, i)
		}
	}
	if len(starts) == 0 {
		return nil, &MalformedRowError{
			Day:    string(day),
			Field:  "time",
			Line:   trimmed[0],
			Reason: "no time range line in cell",
		}
	}
	if starts[0] != 0 {
		return nil, &MalformedRowError{
			Day:    string(day),
			Field:  "time",
			Line:   trimmed[0],
			Reason: "text before first time range",
		}
	}

	entries := make([]ScheduleEntry, 0, len(starts))
	for gi, start := range starts {
		end := len(trimmed)
		if gi+1 < len(starts) {
			end = starts[gi+1]
		}
		entry, err := parseGroup(day, trimmed[start:end])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseGroup parses one time-range group. group[0] is the time-range line;
// the source orders the rest as course code, lecturer, room, week text.
// Anything past the fifth line is ignored, matching the upstream grid.
func parseGroup(day Day, group []string) (ScheduleEntry, error) {
	startTime, endTime, err := parseTimeRange(group[0])
	if err != nil {
		return ScheduleEntry{}, &MalformedRowError{
			Day:    string(day),
			Field:  "time",
			Line:   group[0],
			Reason: err.Error(),
		}
	}

	field := func(i int) string {
		if i < len(group) {
			return group[i]
		}
		return ""
	}

	entry := ScheduleEntry{
		Day:         day,
		StartTime:   startTime,
		EndTime:     endTime,
		CourseCode:  field(1),
		Lecturer:    field(2),
		Room:        field(3),
		WeekSpecRaw: field(4),
	}
	if err := entry.Validate(); err != nil {
		return ScheduleEntry{}, err
	}
	return entry, nil
}

// parseTimeRange splits "09:00 - 10:00" into its two times and enforces
// that the end is strictly after the start. Overnight wraparound is
// unsupported and rejected here rather than truncated.
func parseTimeRange(line string) (TimeOfDay, TimeOfDay, error) {
	parts := strings.SplitN(line, "-", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, TimeOfDay{}, fmt.Errorf("expected HH:MM - HH:MM")
	}
	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, err
	}
	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, err
	}
	if !start.Before(end) {
		return TimeOfDay{}, TimeOfDay{}, fmt.Errorf("end time is not after start time")
	}
	return start, end, nil
}
