package model

import (
	"strings"
	"time"
)

// Date/time storage formats. Date and Time are kept as separate strings the
// way the clients write them; DueAt combines them when both are present.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// TempIDPrefix marks client-generated placeholder ids for tasks that were
// never persisted.
const TempIDPrefix = "temp-"

// Task is a titled, orderable, optionally dated-and-timed to-do item.
// Invariant: Date and Time are either both set or both empty.
type Task struct {
	ID     string
	UserID string
	Title  string
	Text   string
	Order  int
	Date   string // YYYY-MM-DD, optional
	Time   string // HH:mm 24h, optional
}

// IsTempID reports whether id identifies a task that was never persisted.
func IsTempID(id string) bool {
	return id == "" || strings.HasPrefix(id, TempIDPrefix)
}

// HasDue reports whether the task carries a complete due date and time.
func (t Task) HasDue() bool {
	return t.Date != "" && t.Time != ""
}

// DueAt resolves the task's due moment in loc. ok is false when the task
// has no complete due date/time or the stored values are malformed.
func (t Task) DueAt(loc *time.Location) (due time.Time, ok bool) {
	if !t.HasDue() {
		return time.Time{}, false
	}
	due, err := time.ParseInLocation(DateFormat+" "+TimeFormat, t.Date+" "+t.Time, loc)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}
