package notify

import (
	"context"

	"todopad/internal/model"
	"todopad/pkg/log"
)

// Kind distinguishes the two reminders armed for a due task.
type Kind string

const (
	// KindUpcoming fires ahead of the due moment.
	KindUpcoming Kind = "upcoming"
	// KindDue fires at the due moment itself.
	KindDue Kind = "due"
)

// Notifier delivers a reminder to the user-facing facility. Implementations
// must tolerate tasks that were deleted after scheduling; they only format
// what they are handed.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, task model.Task)
}

// LogNotifier is the default delivery: reminders go to the structured log.
type LogNotifier struct {
	l log.Logger
}

func NewLogNotifier(l log.Logger) *LogNotifier {
	return &LogNotifier{l: l}
}

func (n *LogNotifier) Notify(ctx context.Context, kind Kind, task model.Task) {
	switch kind {
	case KindUpcoming:
		n.l.Infof(ctx, "notify.LogNotifier.Notify: task %q (%s) is coming up at %s %s", task.Title, task.ID, task.Date, task.Time)
	case KindDue:
		n.l.Infof(ctx, "notify.LogNotifier.Notify: task %q (%s) is due now", task.Title, task.ID)
	}
}
