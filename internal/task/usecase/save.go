package usecase

import (
	"context"
	"strings"

	"todopad/internal/model"
	"todopad/internal/task"
	repo "todopad/internal/task/repository"
	"todopad/internal/task/session"
)

// Save replays one edit interaction over the stored task and applies the
// blur policy: an all-empty edit is discarded, an unchanged edit is a no-op
// that touches neither the store nor the reminder timers, and a changed edit
// is persisted and re-armed.
func (uc *implUseCase) Save(ctx context.Context, input task.SaveInput) (task.SaveOutput, error) {
	original, err := uc.loadOriginal(ctx, input)
	if err != nil {
		return task.SaveOutput{}, err
	}

	sess := session.New(uc.parser, uc.loc)
	if err := sess.Start(original); err != nil {
		uc.l.Errorf(ctx, "uc.Save Start: %v", err)
		return task.SaveOutput{}, err
	}
	sess.OnTitleChange(input.Title)
	sess.OnTextChange(input.Text)
	if input.ClearDue {
		sess.OnPickerChange(nil)
	} else if input.PickerAt != nil {
		sess.OnPickerChange(input.PickerAt)
	}

	outcome, err := sess.Blur()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save Blur: %v", err)
		return task.SaveOutput{}, err
	}
	if outcome.Discarded {
		return task.SaveOutput{Discarded: true}, nil
	}

	// An order move alone is a change the session cannot see.
	changed := outcome.Changed || input.Order != original.Order
	if !changed {
		return task.SaveOutput{Task: outcome.Task}, nil
	}

	saved, err := uc.persist(ctx, input, outcome.Task)
	if err != nil {
		return task.SaveOutput{}, err
	}

	uc.scheduler.Cancel(saved.ID)
	uc.scheduler.Schedule(ctx, []model.Task{saved})

	return task.SaveOutput{Task: saved, Saved: true}, nil
}

// loadOriginal fetches the stored task for a persisted id and synthesizes an
// empty one for a temp id.
func (uc *implUseCase) loadOriginal(ctx context.Context, input task.SaveInput) (model.Task, error) {
	if model.IsTempID(input.ID) {
		return model.Task{ID: input.ID, UserID: input.UserID}, nil
	}

	original, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: input.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save GetOneTask: %v", err)
		return model.Task{}, err
	}
	if original.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return original, nil
}

func (uc *implUseCase) persist(ctx context.Context, input task.SaveInput, committed model.Task) (model.Task, error) {
	if model.IsTempID(committed.ID) {
		created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
			UserID: input.UserID,
			Title:  committed.Title,
			Text:   committed.Text,
			Order:  input.Order,
			Date:   committed.Date,
			Time:   committed.Time,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Save CreateTask: %v", err)
			return model.Task{}, err
		}
		return created, nil
	}

	if strings.TrimSpace(committed.ID) == "" {
		return model.Task{}, task.ErrMissingTaskID
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:     committed.ID,
		UserID: input.UserID,
		Title:  committed.Title,
		Text:   committed.Text,
		Order:  input.Order,
		Date:   committed.Date,
		Time:   committed.Time,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save UpdateTask: %v", err)
		return model.Task{}, err
	}
	if updated.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return updated, nil
}
