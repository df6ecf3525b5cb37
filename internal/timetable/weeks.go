package timetable

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// WeekSet is a resolved week specification: the set of semester week
// numbers (each >= 1) a class occurs in. An empty set is valid and simply
// contributes no calendar occurrences.
type WeekSet map[int]bool

// InvalidWeekSpecError reports a week-specification token that could not
// be resolved. It is always surfaced, never skipped: a silently dropped
// week would produce a calendar missing a real class.
type InvalidWeekSpecError struct {
	Spec   string // full week specification being resolved
	Token  string // offending token
	Reason string
}

func (e *InvalidWeekSpecError) Error() string {
	return fmt.Sprintf("invalid week spec %q: token %q: %s", e.Spec, e.Token, e.Reason)
}

// weekLabelRe strips the leading label from a week specification, e.g.
// "Wks:" or "Weeks ". The list of tokens after it is left untouched.
var weekLabelRe = regexp.MustCompile(`(?i)^\s*(?:wks?|weeks?)\s*:?\s*`)

// ResolveWeekSpec resolves a raw week specification such as "Wks:1-11,13"
// into an explicit WeekSet. Tokens are comma-separated; each is a single
// week number or an inclusive "a-b" range with a <= b. Duplicate weeks
// across tokens collapse. Empty input (after label stripping) resolves to
// an empty set, meaning no occurrences rather than an error.
func ResolveWeekSpec(raw string) (WeekSet, error) {
	spec := strings.TrimSpace(weekLabelRe.ReplaceAllString(raw, ""))
	weeks := make(WeekSet)
	if spec == "" {
		return weeks, nil
	}

	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		parts := strings.Split(token, "-")
		switch len(parts) {
		case 1:
			n, err := parseWeekNumber(parts[0])
			if err != nil {
				return nil, &InvalidWeekSpecError{Spec: raw, Token: token, Reason: err.Error()}
			}
			weeks[n] = true
		case 2:
			a, err := parseWeekNumber(parts[0])
			if err != nil {
				return nil, &InvalidWeekSpecError{Spec: raw, Token: token, Reason: err.Error()}
			}
			b, err := parseWeekNumber(parts[1])
			if err != nil {
				return nil, &InvalidWeekSpecError{Spec: raw, Token: token, Reason: err.Error()}
			}
			if a > b {
				return nil, &InvalidWeekSpecError{Spec: raw, Token: token, Reason: "inverted range"}
			}
			for n := a; n <= b; n++ {
				weeks[n] = true
			}
		default:
			return nil, &InvalidWeekSpecError{Spec: raw, Token: token, Reason: "too many hyphens"}
		}
	}
	return weeks, nil
}

// parseWeekNumber parses one endpoint of a week token.
func parseWeekNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if n < 1 {
		return 0, fmt.Errorf("week numbers start at 1")
	}
	return n, nil
}

// Weeks returns the week numbers in ascending order.
func (ws WeekSet) Weeks() []int {
	out := make([]int, 0, len(ws))
	for n := range ws {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Contains reports whether week n is in the set.
func (ws WeekSet) Contains(n int) bool {
	return ws[n]
}

// String renders the set in canonical compact form, e.g. "1-11,13".
// Consecutive runs collapse into ranges; resolving the result again yields
// an identical set.
func (ws WeekSet) String() string {
	weeks := ws.Weeks()
	if len(weeks) == 0 {
		return ""
	}

	var parts []string
	runStart, prev := weeks[0], weeks[0]
	flush := func() {
		if runStart == prev {
			parts = append(parts, strconv.Itoa(runStart))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", runStart, prev))
		}
	}
	for _, n := range weeks[1:] {
		if n == prev+1 {
			prev = n
			continue
		}
		flush()
		runStart, prev = n, n
	}
	flush()
	return strings.Join(parts, ",")
}
