package repository

import (
	"context"

	"todopad/internal/model"
)

// Repository defines all data access methods for the Note entity, scoped to
// one user per call.
type Repository interface {
	CreateNote(ctx context.Context, opt CreateNoteOptions) (model.Note, error)
	GetOneNote(ctx context.Context, opt GetOneNoteOptions) (model.Note, error)
	ListNotes(ctx context.Context, opt ListNotesOptions) ([]model.Note, error)
	UpdateNote(ctx context.Context, opt UpdateNoteOptions) (model.Note, error)
	DeleteNote(ctx context.Context, userID, id string) error
}
