// Package storage provides JSON persistence for parsed timetables.
//
// A saved snapshot lets the calendar export be re-run against a previous
// scrape (different semester anchor, different timezone) without going
// back to the browser.
package storage
