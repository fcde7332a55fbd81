package task

import (
	"context"

	"todopad/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Save runs one edit interaction's commit path: reconcile the inline
	// date parse with any picker override, strip the recognized phrase from
	// the title, and persist only when something changed.
	Save(ctx context.Context, input SaveInput) (SaveOutput, error)

	// Preview parses a title and returns the highlight segments for it.
	Preview(ctx context.Context, title string) (PreviewOutput, error)

	List(ctx context.Context, userID string) (ListOutput, error)
	Detail(ctx context.Context, userID, id string) (DetailOutput, error)
	Delete(ctx context.Context, userID, id string) error

	// Rearm re-schedules reminders for every stored task that still has a
	// pending due moment. Called once on startup.
	Rearm(ctx context.Context) error
}

// Scheduler is the reminder collaborator the usecase drives. Updates must
// Cancel the old timers before Schedule arms the new ones.
type Scheduler interface {
	Schedule(ctx context.Context, tasks []model.Task)
	Cancel(taskID string)
}
