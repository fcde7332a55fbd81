package task

import (
	"time"

	"todopad/internal/model"
	"todopad/pkg/dateparse"
	"todopad/pkg/highlight"
)

// --- UseCase Inputs ---

// SaveInput carries the final field values of one edit interaction.
// ID empty or temp-prefixed means the task was never persisted.
type SaveInput struct {
	UserID string
	ID     string
	Title  string
	Text   string
	Order  int

	// PickerAt is the explicit date/time picker value; nil when the picker
	// was untouched during this interaction. ClearDue marks that the picker
	// was explicitly emptied.
	PickerAt *time.Time
	ClearDue bool
}

// --- UseCase Outputs ---

// SaveOutput reports the blur-policy outcome of a save attempt.
type SaveOutput struct {
	Task model.Task
	// Saved is false for no-op commits (nothing changed) and discards.
	Saved bool
	// Discarded is true when an empty, never-persisted task was dropped.
	Discarded bool
}

// PreviewOutput feeds live title highlighting.
type PreviewOutput struct {
	Result   dateparse.Result
	Segments highlight.Segments
}

type ListOutput struct {
	Tasks []model.Task
}

type DetailOutput struct {
	Task model.Task
}
