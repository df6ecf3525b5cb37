// Package scraper extracts the raw timetable grid from a saved University
// of Limerick student timetable page.
//
// The scraper package only parses HTML: it walks the timetable table and
// collects, per day column, the raw text lines of every non-empty cell.
// Fetching the page (login, browser automation) is a separate concern and
// happens outside this module.
package scraper
