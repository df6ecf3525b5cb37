package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/stnikolas/ul-timetable/internal/timetable"
)

// Snapshot is a parsed timetable persisted to disk.
type Snapshot struct {
	SavedAt string                    `json:"saved_at"`
	Entries []timetable.ScheduleEntry `json:"entries"`
}

// Save writes the entries to path as an indented JSON snapshot, creating
// parent directories as needed. A leading "~/" expands to the home
// directory.
func Save(path string, entries []timetable.ScheduleEntry) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	snapshot := Snapshot{
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		Entries: entries,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot back and revalidates every entry, so a hand-edited
// file cannot smuggle an invalid slot into a calendar export.
func Load(path string) ([]timetable.ScheduleEntry, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	for _, entry := range snapshot.Entries {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("snapshot entry invalid: %w", err)
		}
	}
	return snapshot.Entries, nil
}

// expandPath expands a leading "~/" to the user's home directory.
func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	return path, nil
}
