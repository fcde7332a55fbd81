package usecase

import (
	"context"

	"todopad/internal/task"
	repo "todopad/internal/task/repository"
)

// List returns the user's tasks in display order.
func (uc *implUseCase) List(ctx context.Context, userID string) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks}, nil
}

// Detail retrieves a single task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, userID, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}
	return task.DetailOutput{Task: t}, nil
}

// Delete removes a task and voids its pending reminders.
func (uc *implUseCase) Delete(ctx context.Context, userID, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, userID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	uc.scheduler.Cancel(id)
	return nil
}

// Rearm re-schedules reminders for every stored task with a due date and
// time. Run once at startup; the scheduler skips anything already past.
func (uc *implUseCase) Rearm(ctx context.Context) error {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{DueOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Rearm ListTasks: %v", err)
		return err
	}
	uc.scheduler.Schedule(ctx, tasks)
	return nil
}
