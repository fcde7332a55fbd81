package http

import (
	"todopad/internal/task"
	pkgErrors "todopad/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrMissingTaskID:
		return pkgErrors.NewHTTPError(400, "task id is required")
	case task.ErrInvalidPayload:
		return pkgErrors.NewHTTPError(400, "invalid payload")
	default:
		return err
	}
}
