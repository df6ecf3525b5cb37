package calendar

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	prodID = "-//UL Timetable//ul-timetable//EN"

	// RFC 5545 content lines must not exceed 75 octets; longer lines are
	// folded with a CRLF followed by a single space.
	maxLineOctets = 75
)

// SerializeOptions controls document-level serialization behaviour.
type SerializeOptions struct {
	// Timestamp is written as every event's DTSTAMP. Zero means the
	// current time; pass a fixed value for byte-identical re-exports.
	Timestamp time.Time
}

// GenerateICS renders the occurrences as a single iCalendar document,
// one VEVENT per occurrence in input order. Zero occurrences still produce
// a structurally valid header/footer-only calendar.
func GenerateICS(occurrences []Occurrence, opts SerializeOptions) string {
	stamp := opts.Timestamp
	if stamp.IsZero() {
		stamp = time.Now()
	}
	dtstamp := formatICSTime(stamp)

	var ics strings.Builder
	writeContentLine(&ics, "BEGIN:VCALENDAR")
	writeContentLine(&ics, "VERSION:2.0")
	writeContentLine(&ics, "PRODID:"+prodID)
	writeContentLine(&ics, "CALSCALE:GREGORIAN")
	writeContentLine(&ics, "METHOD:PUBLISH")

	for _, occ := range occurrences {
		writeContentLine(&ics, "BEGIN:VEVENT")
		writeContentLine(&ics, "UID:"+occ.UID)
		writeContentLine(&ics, "DTSTAMP:"+dtstamp)
		writeContentLine(&ics, "DTSTART:"+formatICSTime(occ.Start))
		writeContentLine(&ics, "DTEND:"+formatICSTime(occ.End))
		writeContentLine(&ics, "SUMMARY:"+EscapeText(occ.Summary))
		if occ.Location != "" {
			writeContentLine(&ics, "LOCATION:"+EscapeText(occ.Location))
		}
		if occ.Description != "" {
			writeContentLine(&ics, "DESCRIPTION:"+EscapeText(occ.Description))
		}
		writeContentLine(&ics, "STATUS:CONFIRMED")
		writeContentLine(&ics, "SEQUENCE:0")
		writeContentLine(&ics, "TRANSP:OPAQUE")
		writeContentLine(&ics, "END:VEVENT")
	}

	writeContentLine(&ics, "END:VCALENDAR")
	return ics.String()
}

// formatICSTime formats a datetime in the UTC-normalized form "...Z".
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// EscapeText escapes the characters RFC 5545 reserves in text values:
// backslash, comma, semicolon and newline. Some clients reject files with
// unescaped values outright.
func EscapeText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// UnescapeText reverses EscapeText.
func UnescapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n', 'N':
				b.WriteByte('\n')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// writeContentLine writes one logical content line, folded and terminated
// with CRLF.
func writeContentLine(b *strings.Builder, line string) {
	for _, physical := range foldLine(line) {
		b.WriteString(physical)
		b.WriteString("\r\n")
	}
}

// foldLine splits a logical line into physical lines of at most
// maxLineOctets octets. Continuation lines start with a single space that
// counts against their budget. Folds land on rune boundaries so multi-byte
// characters are never split.
func foldLine(line string) []string {
	if len(line) <= maxLineOctets {
		return []string{line}
	}

	var physical []string
	var cur strings.Builder
	for _, r := range line {
		if cur.Len()+utf8.RuneLen(r) > maxLineOctets {
			physical = append(physical, cur.String())
			cur.Reset()
			cur.WriteByte(' ')
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		physical = append(physical, cur.String())
	}
	return physical
}
