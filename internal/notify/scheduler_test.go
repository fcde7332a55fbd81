package notify_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"todopad/internal/model"
	"todopad/internal/notify"
	"todopad/pkg/log"
)

type captureNotifier struct {
	mu    sync.Mutex
	fired []struct {
		kind notify.Kind
		id   string
	}
}

func (n *captureNotifier) Notify(_ context.Context, kind notify.Kind, task model.Task) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fired = append(n.fired, struct {
		kind notify.Kind
		id   string
	}{kind, task.ID})
}

func (n *captureNotifier) snapshot() []struct {
	kind notify.Kind
	id   string
} {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]struct {
		kind notify.Kind
		id   string
	}, len(n.fired))
	copy(out, n.fired)
	return out
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})
}

func dueTask(id string, in time.Duration) model.Task {
	due := time.Now().Add(in)
	return model.Task{
		ID:    id,
		Title: "task " + id,
		Date:  due.Format(model.DateFormat),
		Time:  due.Format(model.TimeFormat),
	}
}

func TestScheduleSkipsUnqualifiedTasks(t *testing.T) {
	n := &captureNotifier{}
	s := notify.New(testLogger(), n, time.Local, time.Minute)
	defer s.Stop()

	s.Schedule(context.Background(), []model.Task{
		{ID: "no-due", Title: "no due"},
		{ID: "date-only", Title: "date only", Date: "2030-01-01"},
		{ID: "malformed", Title: "bad", Date: "not-a-date", Time: "99:99"},
		dueTask("past", -time.Hour),
	})

	if got := s.Pending(); got != 0 {
		t.Errorf("pending got %d, want 0", got)
	}
}

func TestScheduleArmsFutureTask(t *testing.T) {
	n := &captureNotifier{}
	s := notify.New(testLogger(), n, time.Local, time.Minute)
	defer s.Stop()

	s.Schedule(context.Background(), []model.Task{dueTask("t1", time.Hour)})

	if got := s.Pending(); got != 1 {
		t.Errorf("pending got %d, want 1", got)
	}
	if fired := n.snapshot(); len(fired) != 0 {
		t.Errorf("nothing should have fired yet, got %v", fired)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	n := &captureNotifier{}
	s := notify.New(testLogger(), n, time.Local, time.Minute)
	defer s.Stop()

	s.Schedule(context.Background(), []model.Task{dueTask("t1", time.Hour)})

	s.Cancel("t1")
	s.Cancel("t1")
	s.Cancel("never-scheduled")

	if got := s.Pending(); got != 0 {
		t.Errorf("pending got %d, want 0", got)
	}
}

func TestRescheduleReplacesTimers(t *testing.T) {
	n := &captureNotifier{}
	s := notify.New(testLogger(), n, time.Local, time.Minute)
	defer s.Stop()

	ctx := context.Background()
	s.Schedule(ctx, []model.Task{dueTask("t1", time.Hour)})
	s.Schedule(ctx, []model.Task{dueTask("t1", 2 * time.Hour)})

	if got := s.Pending(); got != 1 {
		t.Errorf("pending got %d, want 1 after re-arm", got)
	}
}

func TestStopCancelsEverything(t *testing.T) {
	n := &captureNotifier{}
	s := notify.New(testLogger(), n, time.Local, time.Minute)

	s.Schedule(context.Background(), []model.Task{
		dueTask("t1", time.Hour),
		dueTask("t2", 2 * time.Hour),
	})

	s.Stop()

	if got := s.Pending(); got != 0 {
		t.Errorf("pending got %d, want 0 after Stop", got)
	}
}
