package http

import (
	"todopad/internal/note"
	pkgErrors "todopad/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case note.ErrNoteNotFound:
		return pkgErrors.NewHTTPError(404, "note not found")
	case note.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(400, "note title is required")
	default:
		return err
	}
}
