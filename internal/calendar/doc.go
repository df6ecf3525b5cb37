// Package calendar materializes schedule entries into dated event
// occurrences and serializes them as an iCalendar (.ics) document.
//
// Materialization maps a (weekday, week number) coordinate onto concrete
// dates anchored to a semester-start Monday supplied by the caller, in an
// explicitly configured timezone. Event UIDs are derived deterministically
// from the entry identity and week number, so re-exporting the same
// timetable produces identical UIDs and calendar clients that de-duplicate
// by UID never accumulate duplicates.
package calendar
