package timetable

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolveWeekSpec(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int
	}{
		{
			name: "range with extra single week",
			raw:  "1-11,13",
			want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 13},
		},
		{
			name: "single week",
			raw:  "5",
			want: []int{5},
		},
		{
			name: "degenerate range",
			raw:  "3-3",
			want: []int{3},
		},
		{
			name: "labelled with colon",
			raw:  "Wks:1-3",
			want: []int{1, 2, 3},
		},
		{
			name: "labelled with word and space",
			raw:  "Weeks 1-4",
			want: []int{1, 2, 3, 4},
		},
		{
			name: "whitespace around tokens",
			raw:  " 2 , 4 - 6 ",
			want: []int{2, 4, 5, 6},
		},
		{
			name: "duplicates collapse",
			raw:  "1-3,2,3",
			want: []int{1, 2, 3},
		},
		{
			name: "empty input",
			raw:  "",
			want: []int{},
		},
		{
			name: "label only",
			raw:  "Wks:",
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveWeekSpec(tt.raw)
			if err != nil {
				t.Fatalf("ResolveWeekSpec(%q) returned error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got.Weeks(), tt.want) {
				t.Errorf("ResolveWeekSpec(%q) = %v, want %v", tt.raw, got.Weeks(), tt.want)
			}
		})
	}
}

func TestResolveWeekSpecErrors(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantToken string
	}{
		{name: "inverted range", raw: "11-1", wantToken: "11-1"},
		{name: "non-numeric range", raw: "a-b", wantToken: "a-b"},
		{name: "non-numeric single", raw: "1,two", wantToken: "two"},
		{name: "too many hyphens", raw: "1-2-3", wantToken: "1-2-3"},
		{name: "week zero", raw: "0", wantToken: "0"},
		{name: "missing endpoint", raw: "5-", wantToken: "5-"},
		{name: "empty token", raw: "1,,3", wantToken: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveWeekSpec(tt.raw)
			if err == nil {
				t.Fatalf("ResolveWeekSpec(%q) succeeded, want error", tt.raw)
			}
			var specErr *InvalidWeekSpecError
			if !errors.As(err, &specErr) {
				t.Fatalf("ResolveWeekSpec(%q) error type = %T, want *InvalidWeekSpecError", tt.raw, err)
			}
			if specErr.Token != tt.wantToken {
				t.Errorf("offending token = %q, want %q", specErr.Token, tt.wantToken)
			}
		})
	}
}

func TestWeekSetString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "gap keeps two parts", raw: "1-11,13", want: "1-11,13"},
		{name: "single week", raw: "5", want: "5"},
		{name: "run collapses", raw: "1,2,3,4", want: "1-4"},
		{name: "pair collapses", raw: "7,8", want: "7-8"},
		{name: "empty set", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, err := ResolveWeekSpec(tt.raw)
			if err != nil {
				t.Fatalf("ResolveWeekSpec(%q) returned error: %v", tt.raw, err)
			}
			if got := ws.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Resolving the canonical form of a resolved set must yield the same set.
func TestWeekSetRoundTrip(t *testing.T) {
	inputs := []string{"1-11,13", "Wks:2,4,6-9", "1", "3-3,5-7,12"}

	for _, raw := range inputs {
		ws, err := ResolveWeekSpec(raw)
		if err != nil {
			t.Fatalf("ResolveWeekSpec(%q) returned error: %v", raw, err)
		}
		again, err := ResolveWeekSpec(ws.String())
		if err != nil {
			t.Fatalf("ResolveWeekSpec(%q) returned error: %v", ws.String(), err)
		}
		if !reflect.DeepEqual(ws, again) {
			t.Errorf("round trip of %q changed set: %v -> %v", raw, ws.Weeks(), again.Weeks())
		}
	}
}
