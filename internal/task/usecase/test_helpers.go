package usecase

import (
	"context"
	"time"

	"todopad/internal/model"
	repo "todopad/internal/task/repository"
	"todopad/pkg/dateparse"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository recording every call.
type mockRepository struct {
	getResult  model.Task
	getErr     error
	listResult []model.Task
	listErr    error
	createErr  error
	updateErr  error

	created []repo.CreateTaskOptions
	updated []repo.UpdateTaskOptions
	deleted []string
	listed  []repo.ListTasksOptions
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	m.created = append(m.created, opt)
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	return model.Task{
		ID:     "generated-id",
		UserID: opt.UserID,
		Title:  opt.Title,
		Text:   opt.Text,
		Order:  opt.Order,
		Date:   opt.Date,
		Time:   opt.Time,
	}, nil
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	return m.getResult, m.getErr
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	m.listed = append(m.listed, opt)
	return m.listResult, m.listErr
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	m.updated = append(m.updated, opt)
	if m.updateErr != nil {
		return model.Task{}, m.updateErr
	}
	return model.Task{
		ID:     opt.ID,
		UserID: opt.UserID,
		Title:  opt.Title,
		Text:   opt.Text,
		Order:  opt.Order,
		Date:   opt.Date,
		Time:   opt.Time,
	}, nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, userID, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

// Mock scheduler recording arm/cancel calls.
type mockScheduler struct {
	scheduled [][]model.Task
	cancelled []string
}

func (m *mockScheduler) Schedule(ctx context.Context, tasks []model.Task) {
	m.scheduled = append(m.scheduled, tasks)
}

func (m *mockScheduler) Cancel(taskID string) {
	m.cancelled = append(m.cancelled, taskID)
}

// Fixed clock and a grammar that recognizes the literal word "tomorrow".
var testBase = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

type wordGrammar struct{}

func (wordGrammar) Parse(text string, base time.Time) (dateparse.Match, bool) {
	const word = "tomorrow"
	for i := 0; i+len(word) <= len(text); i++ {
		if text[i:i+len(word)] == word {
			next := time.Date(base.Year(), base.Month(), base.Day()+1, 0, 0, 0, 0, base.Location())
			return dateparse.Match{Text: word, Index: i, Time: next}, true
		}
	}
	return dateparse.Match{}, false
}

func newTestUseCase(r *mockRepository, s *mockScheduler) *implUseCase {
	p, err := dateparse.NewParser("UTC", wordGrammar{})
	if err != nil {
		panic(err)
	}
	p.WithClock(func() time.Time { return testBase })
	return New(r, p, s, time.UTC, &mockLogger{})
}
