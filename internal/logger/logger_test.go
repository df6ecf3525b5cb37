package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "timetable parsed",
			fields:  Fields{"entries": 14},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "cell lines",
			want:    false,
		},
		{
			name:    "warn above threshold",
			level:   LevelWarn,
			message: "skipping malformed cell",
			want:    true,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "calendar export failed",
			err:     errors.New("boom"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(LevelInfo, &buf)

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			if logged := buf.Len() > 0; logged != tt.want {
				t.Fatalf("logged = %v, want %v", logged, tt.want)
			}
			if !tt.want {
				return
			}

			var entry LogEntry
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if entry.Message != tt.message {
				t.Errorf("message = %q, want %q", entry.Message, tt.message)
			}
			if entry.Level != string(tt.level) {
				t.Errorf("level = %q, want %q", entry.Level, tt.level)
			}
			if tt.err != nil && entry.Error != tt.err.Error() {
				t.Errorf("error = %q, want %q", entry.Error, tt.err)
			}
		})
	}
}

func TestLoggerOneLinePerEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.Info("first", nil)
	logger.Debug("second", Fields{"k": "v"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		var entry LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Errorf("line %q is not JSON: %v", line, err)
		}
	}
}
