package domain

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LogAction labels what a log entry describes. Actions are coarse on purpose;
// the message carries the detail.
type LogAction string

// Log actions recorded by list operations.
const (
	LogActionAddEntry      LogAction = "add entry"
	LogActionRemoveEntry   LogAction = "remove entry"
	LogActionAddComment    LogAction = "add comment"
	LogActionEditComment   LogAction = "edit comment"
	LogActionRemoveComment LogAction = "remove comment"
	LogActionEditMetadata  LogAction = "edit metadata"
	LogActionSave          LogAction = "save"
	LogActionNote          LogAction = "note"
)

// LogEntry is one line of the activity log.
type LogEntry struct {
	Timestamp string    `json:"timestamp"` // RFC 3339
	Action    LogAction `json:"action"`
	Message   string    `json:"message"`
}

// ActivityLog is the append-only activity trail of a list. The aim is that a
// log, replayed against the same input data, can recreate the list.
type ActivityLog struct {
	Entries []LogEntry `json:"entries"`
}

// Record appends an entry stamped with the current time.
func (l *ActivityLog) Record(action LogAction, message string) {
	l.Entries = append(l.Entries, LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Action:    action,
		Message:   message,
	})
}

// Len returns the number of recorded entries.
func (l *ActivityLog) Len() int { return len(l.Entries) }

// FilterByAction returns the entries recorded under the given action, in
// order.
func (l *ActivityLog) FilterByAction(action LogAction) []LogEntry {
	var out []LogEntry
	for _, e := range l.Entries {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

// Clear drops all entries.
func (l *ActivityLog) Clear() { l.Entries = nil }

// Render serializes the log in the format selected by extension: .json for
// the full structure, .txt or .log for one "<timestamp> - <action>: <message>"
// line per entry.
func (l *ActivityLog) Render(ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".json":
		data, err := json.MarshalIndent(l, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode log: %w", err)
		}
		return data, nil
	case ".txt", ".log":
		var b strings.Builder
		for _, e := range l.Entries {
			fmt.Fprintf(&b, "%s - %s: %s\n", e.Timestamp, e.Action, e.Message)
		}
		return []byte(b.String()), nil
	default:
		return nil, UnsupportedLogFormatError{Extension: strings.ToLower(ext)}
	}
}

// WriteFile writes the log to path, choosing the format by the path's
// extension.
func (l *ActivityLog) WriteFile(path string) error {
	data, err := l.Render(filepath.Ext(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
