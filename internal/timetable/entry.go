package timetable

import (
	"fmt"
	"strings"
)

// Day represents a weekday column of the timetable grid.
// The grid has no weekend columns, so only Monday through Friday are valid.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
)

// weekdays maps a day to its offset from the Monday that starts the week.
var weekdays = map[Day]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
}

// ParseDay maps a grid column header to a Day. Weekend and unrecognised
// labels are rejected: a Saturday class cannot be materialized against a
// Monday-anchored week and silently truncating it would lose a real class.
func ParseDay(label string) (Day, error) {
	d := Day(strings.TrimSpace(label))
	if _, ok := weekdays[d]; !ok {
		return "", &MalformedRowError{
			Day:    string(d),
			Field:  "day",
			Reason: "not a Monday-Friday timetable column",
		}
	}
	return d, nil
}

// Offset returns the number of days from the Monday of the same week
// (Monday=0 .. Friday=4).
func (d Day) Offset() int {
	return weekdays[d]
}

// Valid reports whether d is one of the five timetable weekdays.
func (d Day) Valid() bool {
	_, ok := weekdays[d]
	return ok
}

// TimeOfDay is a 24-hour wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (24-hour clock).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: out of range", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// String formats the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the time as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier than u.
func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.Minutes() < u.Minutes()
}

// MarshalText encodes the time as "HH:MM" for JSON snapshots.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes "HH:MM".
func (t *TimeOfDay) UnmarshalText(data []byte) error {
	parsed, err := ParseTimeOfDay(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ScheduleEntry is one lecture or lab slot on one weekday.
//
// Day, StartTime, EndTime and CourseCode are always present on a parsed
// entry; Lecturer and Room may be empty when the source cell omits them.
// WeekSpecRaw keeps the untouched week text for diagnostics and re-export.
type ScheduleEntry struct {
	Day         Day       `json:"day"`
	StartTime   TimeOfDay `json:"start_time"`
	EndTime     TimeOfDay `json:"end_time"`
	CourseCode  string    `json:"course_code"`
	Lecturer    string    `json:"lecturer,omitempty"`
	Room        string    `json:"room,omitempty"`
	WeekSpecRaw string    `json:"weeks,omitempty"`
}

// Validate checks the entry invariants: valid weekday, non-empty course
// code, and an end time strictly after the start time.
func (e ScheduleEntry) Validate() error {
	if !e.Day.Valid() {
		return &MalformedRowError{Day: string(e.Day), Field: "day", Reason: "not a Monday-Friday timetable column"}
	}
	if strings.TrimSpace(e.CourseCode) == "" {
		return &MalformedRowError{Day: string(e.Day), Field: "course_code", Reason: "course code is empty"}
	}
	if !e.StartTime.Before(e.EndTime) {
		return &MalformedRowError{
			Day:    string(e.Day),
			Field:  "time",
			Line:   fmt.Sprintf("%s - %s", e.StartTime, e.EndTime),
			Reason: "end time is not after start time",
		}
	}
	return nil
}
