package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound = errors.New("task not found")
	// ErrMissingTaskID marks a commit that reached the update path without a
	// persisted id. This is an invariant violation: the commit is aborted
	// and the edit is left in place.
	ErrMissingTaskID  = errors.New("task id is required for update")
	ErrInvalidPayload = errors.New("invalid payload")
)
