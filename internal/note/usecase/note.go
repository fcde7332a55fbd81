package usecase

import (
	"context"
	"strings"

	"todopad/internal/note"
	repo "todopad/internal/note/repository"
)

// Create persists a new note. The title is required.
func (uc *implUseCase) Create(ctx context.Context, input note.CreateInput) (note.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return note.CreateOutput{}, note.ErrEmptyTitle
	}

	n, err := uc.repo.CreateNote(ctx, repo.CreateNoteOptions{
		UserID:  input.UserID,
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateNote: %v", err)
		return note.CreateOutput{}, err
	}
	return note.CreateOutput{Note: n}, nil
}

// List returns the user's notes, newest first.
func (uc *implUseCase) List(ctx context.Context, userID string) (note.ListOutput, error) {
	notes, err := uc.repo.ListNotes(ctx, repo.ListNotesOptions{UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListNotes: %v", err)
		return note.ListOutput{}, err
	}
	return note.ListOutput{Notes: notes}, nil
}

// Detail retrieves a single note. Returns ErrNoteNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, userID, id string) (note.DetailOutput, error) {
	n, err := uc.repo.GetOneNote(ctx, repo.GetOneNoteOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneNote: %v", err)
		return note.DetailOutput{}, err
	}
	if n.ID == "" {
		return note.DetailOutput{}, note.ErrNoteNotFound
	}
	return note.DetailOutput{Note: n}, nil
}

// Update modifies an existing note. Returns ErrNoteNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input note.UpdateInput) (note.UpdateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return note.UpdateOutput{}, note.ErrEmptyTitle
	}

	existing, err := uc.repo.GetOneNote(ctx, repo.GetOneNoteOptions{ID: input.ID, UserID: input.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneNote: %v", err)
		return note.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return note.UpdateOutput{}, note.ErrNoteNotFound
	}

	n, err := uc.repo.UpdateNote(ctx, repo.UpdateNoteOptions{
		ID:      input.ID,
		UserID:  input.UserID,
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateNote: %v", err)
		return note.UpdateOutput{}, err
	}
	return note.UpdateOutput{Note: n}, nil
}

// Delete removes a note by id. Returns ErrNoteNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, userID, id string) error {
	existing, err := uc.repo.GetOneNote(ctx, repo.GetOneNoteOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneNote: %v", err)
		return err
	}
	if existing.ID == "" {
		return note.ErrNoteNotFound
	}
	if err := uc.repo.DeleteNote(ctx, userID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteNote: %v", err)
		return err
	}
	return nil
}
