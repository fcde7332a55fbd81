package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"todopad/internal/model"
	"todopad/internal/task"
)

func TestSave_CreateStripsRecognizedPhrase(t *testing.T) {
	r := &mockRepository{}
	s := &mockScheduler{}
	uc := newTestUseCase(r, s)

	out, err := uc.Save(context.Background(), task.SaveInput{
		UserID: "u1",
		ID:     "temp-1",
		Title:  "Buy milk tomorrow",
		Order:  3,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !out.Saved || out.Discarded {
		t.Fatalf("expected a saved task, got %+v", out)
	}

	if len(r.created) != 1 {
		t.Fatalf("create calls got %d, want 1", len(r.created))
	}
	c := r.created[0]
	if c.Title != "Buy milk" {
		t.Errorf("title got %q, want %q", c.Title, "Buy milk")
	}
	if c.Date != "2024-05-02" || c.Time != "00:00" {
		t.Errorf("due got %q %q, want tomorrow midnight", c.Date, c.Time)
	}
	if c.Order != 3 || c.UserID != "u1" {
		t.Errorf("order/user got %d %q", c.Order, c.UserID)
	}

	if len(s.cancelled) != 1 || s.cancelled[0] != "generated-id" {
		t.Errorf("cancel calls got %v, want the saved id", s.cancelled)
	}
	if len(s.scheduled) != 1 || len(s.scheduled[0]) != 1 || s.scheduled[0][0].ID != "generated-id" {
		t.Errorf("schedule calls got %v", s.scheduled)
	}
}

func TestSave_DiscardEmptyNewTask(t *testing.T) {
	r := &mockRepository{}
	s := &mockScheduler{}
	uc := newTestUseCase(r, s)

	out, err := uc.Save(context.Background(), task.SaveInput{UserID: "u1", ID: "temp-1"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !out.Discarded || out.Saved {
		t.Fatalf("expected a discard, got %+v", out)
	}
	if len(r.created)+len(r.updated) != 0 {
		t.Errorf("discard must not touch the store")
	}
	if len(s.cancelled)+len(s.scheduled) != 0 {
		t.Errorf("discard must not touch the scheduler")
	}
}

func TestSave_NoOpUpdate(t *testing.T) {
	existing := model.Task{ID: "t1", UserID: "u1", Title: "Buy milk", Text: "2L", Order: 2, Date: "2024-05-03", Time: "09:15"}
	r := &mockRepository{getResult: existing}
	s := &mockScheduler{}
	uc := newTestUseCase(r, s)

	out, err := uc.Save(context.Background(), task.SaveInput{
		UserID: "u1",
		ID:     "t1",
		Title:  "Buy milk",
		Text:   "2L",
		Order:  2,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if out.Saved || out.Discarded {
		t.Fatalf("expected a no-op, got %+v", out)
	}
	if len(r.updated) != 0 {
		t.Errorf("no-op must not update the store")
	}
	if len(s.cancelled)+len(s.scheduled) != 0 {
		t.Errorf("no-op must not re-arm reminders")
	}
}

func TestSave_UpdateNotFound(t *testing.T) {
	r := &mockRepository{} // GetOneTask returns zero value
	uc := newTestUseCase(r, &mockScheduler{})

	_, err := uc.Save(context.Background(), task.SaveInput{UserID: "u1", ID: "gone", Title: "x"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("err got %v, want ErrTaskNotFound", err)
	}
}

func TestSave_PickerOverride(t *testing.T) {
	existing := model.Task{ID: "t1", UserID: "u1", Title: "Dentist", Order: 1}
	r := &mockRepository{getResult: existing}
	s := &mockScheduler{}
	uc := newTestUseCase(r, s)

	picked := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	out, err := uc.Save(context.Background(), task.SaveInput{
		UserID:   "u1",
		ID:       "t1",
		Title:    "Dentist",
		Order:    1,
		PickerAt: &picked,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !out.Saved {
		t.Fatalf("picker edit must persist, got %+v", out)
	}
	if len(r.updated) != 1 {
		t.Fatalf("update calls got %d, want 1", len(r.updated))
	}
	u := r.updated[0]
	if u.Date != "2024-06-10" || u.Time != "14:00" {
		t.Errorf("due got %q %q, want picker value", u.Date, u.Time)
	}
}

func TestSave_ClearDue(t *testing.T) {
	existing := model.Task{ID: "t1", UserID: "u1", Title: "Standup", Date: "2024-05-03", Time: "09:15"}
	r := &mockRepository{getResult: existing}
	s := &mockScheduler{}
	uc := newTestUseCase(r, s)

	out, err := uc.Save(context.Background(), task.SaveInput{
		UserID:   "u1",
		ID:       "t1",
		Title:    "Standup",
		ClearDue: true,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !out.Saved {
		t.Fatalf("clearing the due date must persist, got %+v", out)
	}
	u := r.updated[0]
	if u.Date != "" || u.Time != "" {
		t.Errorf("due got %q %q, want cleared", u.Date, u.Time)
	}
}

func TestSave_OrderMoveAlone(t *testing.T) {
	existing := model.Task{ID: "t1", UserID: "u1", Title: "Buy milk", Order: 2}
	r := &mockRepository{getResult: existing}
	s := &mockScheduler{}
	uc := newTestUseCase(r, s)

	out, err := uc.Save(context.Background(), task.SaveInput{
		UserID: "u1",
		ID:     "t1",
		Title:  "Buy milk",
		Order:  5,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !out.Saved {
		t.Fatalf("an order move alone must persist")
	}
	if len(r.updated) != 1 || r.updated[0].Order != 5 {
		t.Errorf("update got %+v, want order 5", r.updated)
	}
}

func TestSave_RepoFailurePropagates(t *testing.T) {
	r := &mockRepository{createErr: errors.New("insert failed")}
	s := &mockScheduler{}
	uc := newTestUseCase(r, s)

	_, err := uc.Save(context.Background(), task.SaveInput{UserID: "u1", ID: "temp-1", Title: "x"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(s.cancelled)+len(s.scheduled) != 0 {
		t.Errorf("failed persist must not touch the scheduler")
	}
}
