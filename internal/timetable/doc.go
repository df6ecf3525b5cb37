// Package timetable provides types and parsing for University of Limerick
// student timetable data.
//
// The timetable package turns the raw text lines of a scraped grid cell into
// structured schedule entries and resolves free-text week specifications
// (e.g. "Wks:1-11,13") into explicit week sets. Parsing is strict: a cell
// missing its time range or course code, or a week token that cannot be
// read, is surfaced as a typed error rather than silently dropped, so a
// generated calendar can never be quietly missing a class.
package timetable
