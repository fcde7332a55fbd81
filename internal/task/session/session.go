// Package session implements the edit-session state machine that wraps a
// task for the duration of one edit interaction. It coordinates the raw
// title text, the inline date parse with its span, and an explicit picker
// override, and decides on commit which date wins and whether the
// recognized phrase is stripped from the saved title.
package session

import (
	"errors"
	"strings"
	"time"

	"todopad/internal/model"
	"todopad/pkg/dateparse"
	"todopad/pkg/highlight"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateEditing
	StateCommitting
	StateCancelling
)

var (
	ErrNotEditing     = errors.New("session is not editing")
	ErrAlreadyEditing = errors.New("session already has an edit in progress")
)

// Outcome is the result of the blur policy: exactly one of a commit, a
// no-op commit, or a cancel/discard happened.
type Outcome struct {
	Task      model.Task
	Committed bool
	Changed   bool
	Discarded bool
}

// Session holds the ephemeral edit state for one task.
type Session struct {
	parser *dateparse.Parser
	loc    *time.Location

	state         State
	original      model.Task
	localTitle    string
	localText     string
	localDatetime *time.Time
	parsed        dateparse.Result
}

// New creates an idle session. loc is the timezone used to interpret stored
// date/time strings.
func New(parser *dateparse.Parser, loc *time.Location) *Session {
	if loc == nil {
		loc = time.Local
	}
	return &Session{
		parser: parser,
		loc:    loc,
		state:  StateIdle,
		parsed: dateparse.NoMatch(),
	}
}

func (s *Session) State() State             { return s.state }
func (s *Session) Title() string            { return s.localTitle }
func (s *Session) Parsed() dateparse.Result { return s.parsed }

// Start seeds the session from the task being edited: Idle → Editing.
// The local datetime is seeded from date+time when both are present, from
// the date alone otherwise.
func (s *Session) Start(t model.Task) error {
	if s.state != StateIdle {
		return ErrAlreadyEditing
	}
	s.original = t
	s.localTitle = t.Title
	s.localText = t.Text
	s.localDatetime = nil
	s.parsed = dateparse.NoMatch()

	if t.Date != "" {
		layout, value := model.DateFormat, t.Date
		if t.Time != "" {
			layout, value = model.DateFormat+" "+model.TimeFormat, t.Date+" "+t.Time
		}
		if seed, err := time.ParseInLocation(layout, value, s.loc); err == nil {
			s.localDatetime = &seed
		}
	}

	s.state = StateEditing
	return nil
}

// OnTitleChange records a keystroke's new title and reparses it. A fresh
// parse with a date takes precedence over any previously picked value. A
// parser failure leaves the previous parse state untouched; an in-progress
// edit must never be corrupted by a bad keystroke.
func (s *Session) OnTitleChange(title string) {
	if s.state != StateEditing {
		return
	}
	s.localTitle = title

	res, ok := s.safeParse(title)
	if !ok {
		return
	}
	s.parsed = res
	if res.HasMatch() {
		d := res.Date
		s.localDatetime = &d
	}
}

// OnTextChange records a description edit.
func (s *Session) OnTextChange(text string) {
	if s.state != StateEditing {
		return
	}
	s.localText = text
}

// OnPickerChange applies an explicit picker override; nil clears the due
// date. Picker interaction is a standalone commit trigger: callers are
// expected to Commit immediately after.
func (s *Session) OnPickerChange(dt *time.Time) {
	if s.state != StateEditing {
		return
	}
	if dt == nil {
		s.localDatetime = nil
		return
	}
	v := *dt
	s.localDatetime = &v
}

// Commit reconciles and returns the final task: Editing → Committing →
// Idle. A pending recognized phrase always wins: the exact span is removed
// from the title (clamped if stale), surrounding whitespace trimmed, and
// the parser's date becomes the due moment — a fresh textual match beats a
// stale picker value. Without a pending phrase the last-set local datetime
// stands. changed reports a field-wise diff against the original task.
func (s *Session) Commit() (out model.Task, changed bool, err error) {
	if s.state != StateEditing {
		return model.Task{}, false, ErrNotEditing
	}
	s.state = StateCommitting

	title := s.localTitle
	due := s.localDatetime

	if s.parsed.HasMatch() {
		seg := highlight.Render(title, s.parsed)
		if seg.Highlighted != "" {
			title = joinStripped(seg.Prefix, seg.Suffix)
			d := s.parsed.Date
			due = &d
		}
	}

	out = s.original
	out.Title = title
	out.Text = s.localText
	if due != nil {
		out.Date = due.In(s.loc).Format(model.DateFormat)
		out.Time = due.In(s.loc).Format(model.TimeFormat)
	} else {
		out.Date, out.Time = "", ""
	}

	changed = out.Title != s.original.Title ||
		out.Text != s.original.Text ||
		out.Date != s.original.Date ||
		out.Time != s.original.Time

	// The editor reflects the cleaned title after commit.
	s.localTitle = title
	s.localDatetime = due
	s.parsed = dateparse.NoMatch()
	s.state = StateIdle
	return out, changed, nil
}

// Cancel reverts local edits: Editing → Cancelling → Idle. discard is true
// when the edited task was never persisted and should be dropped entirely.
func (s *Session) Cancel() (discard bool) {
	if s.state != StateEditing {
		return false
	}
	s.state = StateCancelling
	s.localTitle = s.original.Title
	s.localText = s.original.Text
	s.localDatetime = nil
	s.parsed = dateparse.NoMatch()
	s.state = StateIdle
	return model.IsTempID(s.original.ID)
}

// Blur applies the implicit focus-loss policy: commit when any field is
// non-empty, cancel otherwise. There is no explicit save button.
func (s *Session) Blur() (Outcome, error) {
	if s.state != StateEditing {
		return Outcome{}, ErrNotEditing
	}

	empty := strings.TrimSpace(s.localTitle) == "" &&
		strings.TrimSpace(s.localText) == "" &&
		s.localDatetime == nil
	if empty {
		return Outcome{Discarded: s.Cancel()}, nil
	}

	task, changed, err := s.Commit()
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Task: task, Committed: true, Changed: changed}, nil
}

// safeParse shields the session from a panicking grammar: on panic the
// previous parse state is preserved for this keystroke.
func (s *Session) safeParse(title string) (res dateparse.Result, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			res, ok = dateparse.Result{}, false
		}
	}()
	return s.parser.Parse(title), true
}

// joinStripped glues the text around a removed span back together, trimming
// the whitespace that surrounded the phrase.
func joinStripped(prefix, suffix string) string {
	p := strings.TrimRight(prefix, " \t")
	sfx := strings.TrimLeft(suffix, " \t")
	switch {
	case p == "":
		return strings.TrimSpace(sfx)
	case sfx == "":
		return strings.TrimSpace(p)
	default:
		return p + " " + sfx
	}
}
