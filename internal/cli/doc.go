// Package cli implements the ul-timetable command line interface.
//
// The CLI wires the pipeline together: it reads a saved timetable page (or
// a previously saved JSON snapshot), parses the grid into schedule
// entries, and renders them as JSON, a per-day console table, or an
// iCalendar export anchored to a semester-start Monday. Malformed cells
// are skipped with a warning by default; --strict aborts on the first one.
package cli
