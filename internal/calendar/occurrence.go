package calendar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stnikolas/ul-timetable/internal/timetable"
)

// uidDomain qualifies event UIDs; uidNamespace seeds the SHA1 UUIDs so the
// same (course, day, start, week) always maps to the same UID.
const uidDomain = "timetable.ul.ie"

var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(uidDomain))

// Occurrence is one concrete calendar-dated instance of a schedule entry.
type Occurrence struct {
	UID         string
	Week        int
	Start       time.Time
	End         time.Time
	Summary     string
	Location    string
	Description string
}

// InvalidSemesterStartError reports a semester-start anchor that cannot
// define week 1: it is either missing or not a Monday.
type InvalidSemesterStartError struct {
	Date   time.Time
	Reason string
}

func (e *InvalidSemesterStartError) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("invalid semester start: %s", e.Reason)
	}
	return fmt.Sprintf("invalid semester start %s: %s", e.Date.Format("2006-01-02"), e.Reason)
}

// Materializer turns schedule entries into occurrences. The timezone the
// institution keeps its timetable in is explicit configuration rather than
// a hidden constant, so the same engine serves other institutions.
type Materializer struct {
	loc *time.Location
}

// NewMaterializer creates a Materializer producing datetimes in loc.
func NewMaterializer(loc *time.Location) *Materializer {
	return &Materializer{loc: loc}
}

// Materialize produces one Occurrence per week in the set, in ascending
// week order. The semester start must be the Monday of week 1; it is
// validated before any Occurrence is produced. An empty week set yields no
// occurrences and no error.
func (m *Materializer) Materialize(entry timetable.ScheduleEntry, weeks timetable.WeekSet, semesterStart time.Time) ([]Occurrence, error) {
	if err := validateSemesterStart(semesterStart); err != nil {
		return nil, err
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	occurrences := make([]Occurrence, 0, len(weeks))
	for _, week := range weeks.Weeks() {
		date := semesterStart.AddDate(0, 0, 7*(week-1)+entry.Day.Offset())
		occurrences = append(occurrences, Occurrence{
			UID:         EventUID(entry, week),
			Week:        week,
			Start:       m.combine(date, entry.StartTime),
			End:         m.combine(date, entry.EndTime),
			Summary:     entry.CourseCode,
			Location:    entry.Room,
			Description: describe(entry, week),
		})
	}
	return occurrences, nil
}

// MaterializeTimetable resolves each entry's week specification and
// materializes the whole timetable. Entries with no week text fall back to
// defaultWeeks when provided, otherwise contribute nothing. The result is
// sorted ascending by start time (then summary, then UID) so serializing
// it twice yields byte-identical output.
func (m *Materializer) MaterializeTimetable(entries []timetable.ScheduleEntry, semesterStart time.Time, defaultWeeks timetable.WeekSet) ([]Occurrence, error) {
	if err := validateSemesterStart(semesterStart); err != nil {
		return nil, err
	}

	var all []Occurrence
	for _, entry := range entries {
		weeks, err := timetable.ResolveWeekSpec(entry.WeekSpecRaw)
		if err != nil {
			return nil, fmt.Errorf("%s %s %s: %w", entry.CourseCode, entry.Day, entry.StartTime, err)
		}
		if len(weeks) == 0 {
			weeks = defaultWeeks
		}
		occs, err := m.Materialize(entry, weeks, semesterStart)
		if err != nil {
			return nil, fmt.Errorf("%s %s %s: %w", entry.CourseCode, entry.Day, entry.StartTime, err)
		}
		all = append(all, occs...)
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].Start.Equal(all[j].Start) {
			return all[i].Start.Before(all[j].Start)
		}
		if all[i].Summary != all[j].Summary {
			return all[i].Summary < all[j].Summary
		}
		return all[i].UID < all[j].UID
	})
	return all, nil
}

// combine attaches a wall-clock time to a date in the configured location.
func (m *Materializer) combine(date time.Time, t timetable.TimeOfDay) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, m.loc)
}

// EventUID derives the stable event identifier for an entry occurrence.
// It hashes (course code, day, start time, week) into a SHA1-based UUID, so
// repeated exports of the same timetable and semester regenerate identical
// UIDs while distinct weeks of the same slot stay distinct.
func EventUID(entry timetable.ScheduleEntry, week int) string {
	key := strings.Join([]string{
		entry.CourseCode,
		string(entry.Day),
		entry.StartTime.String(),
		strconv.Itoa(week),
	}, "|")
	return uuid.NewSHA1(uidNamespace, []byte(key)).String() + "@" + uidDomain
}

// describe composes the event description from the lecturer and week.
func describe(entry timetable.ScheduleEntry, week int) string {
	if entry.Lecturer != "" {
		return fmt.Sprintf("Lecturer: %s\nWeek: %d", entry.Lecturer, week)
	}
	return fmt.Sprintf("Week: %d", week)
}

func validateSemesterStart(d time.Time) error {
	if d.IsZero() {
		return &InvalidSemesterStartError{Reason: "no anchor date supplied"}
	}
	if d.Weekday() != time.Monday {
		return &InvalidSemesterStartError{Date: d, Reason: "week 1 must start on a Monday"}
	}
	return nil
}
