// Package notify arms reminder timers for tasks that carry a due date and
// time: one ahead of the due moment and one at the moment itself.
package notify

import (
	"context"
	"sync"
	"time"

	"todopad/internal/model"
	"todopad/pkg/log"
)

// DefaultLead is how far ahead of the due moment the upcoming reminder fires.
const DefaultLead = 15 * time.Minute

// Scheduler owns the pending timers for its tasks. Each instance has its own
// registry; re-scheduling a task id first voids that id's existing timers.
// Callers updating a task must Cancel before Schedule.
type Scheduler struct {
	l        log.Logger
	notifier Notifier
	loc      *time.Location
	lead     time.Duration

	mu     sync.Mutex
	timers map[string][]*time.Timer
}

// New builds a scheduler. lead <= 0 falls back to DefaultLead; a nil loc
// falls back to the local timezone.
func New(l log.Logger, notifier Notifier, loc *time.Location, lead time.Duration) *Scheduler {
	if lead <= 0 {
		lead = DefaultLead
	}
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		l:        l,
		notifier: notifier,
		loc:      loc,
		lead:     lead,
		timers:   make(map[string][]*time.Timer),
	}
}

// Schedule arms reminders for every task that has a complete due date and
// time in the future. Tasks without a due moment, with a malformed one, or
// already past are skipped. An id that already has timers is re-armed from
// scratch.
func (s *Scheduler) Schedule(ctx context.Context, tasks []model.Task) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range tasks {
		due, ok := t.DueAt(s.loc)
		if !ok {
			continue
		}
		if !due.After(now) {
			s.l.Debugf(ctx, "notify.Scheduler.Schedule: task %s due %s already past, skipping", t.ID, due)
			continue
		}

		s.cancelLocked(t.ID)

		var armed []*time.Timer
		task := t
		if upcoming := due.Add(-s.lead); upcoming.After(now) {
			armed = append(armed, time.AfterFunc(upcoming.Sub(now), func() {
				s.fire(KindUpcoming, task)
			}))
		}
		armed = append(armed, time.AfterFunc(due.Sub(now), func() {
			s.fire(KindDue, task)
		}))
		s.timers[t.ID] = armed
	}
}

// Cancel voids any pending reminders for the task id. Unknown ids are a
// no-op.
func (s *Scheduler) Cancel(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(taskID)
}

// Stop voids every pending reminder. Used on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.timers {
		s.cancelLocked(id)
	}
}

func (s *Scheduler) cancelLocked(taskID string) {
	for _, tm := range s.timers[taskID] {
		tm.Stop()
	}
	delete(s.timers, taskID)
}

func (s *Scheduler) fire(kind Kind, task model.Task) {
	ctx := context.Background()
	s.notifier.Notify(ctx, kind, task)
	if kind == KindDue {
		s.mu.Lock()
		delete(s.timers, task.ID)
		s.mu.Unlock()
	}
}

// Pending reports how many task ids currently hold armed timers.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
