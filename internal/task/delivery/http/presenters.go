package http

import (
	"time"

	"todopad/internal/model"
	"todopad/internal/task"
)

// --- Request DTOs ---

type saveReq struct {
	UserID string `json:"-"` // populated from the auth context
	ID     string `json:"id"`
	Title  string `json:"title"    binding:"max=500"`
	Text   string `json:"text"     binding:"max=10000"`
	Order  int    `json:"order"    binding:"gte=0"`

	// PickerAt carries an explicit date/time picker value (RFC 3339).
	// ClearDue marks that the picker was explicitly emptied; the two are
	// mutually exclusive.
	PickerAt string `json:"picker_at" binding:"omitempty"`
	ClearDue bool   `json:"clear_due"`
}

func (r saveReq) validate() error {
	if r.PickerAt != "" && r.ClearDue {
		return errPickerConflict
	}
	if r.PickerAt != "" {
		if _, err := time.Parse(time.RFC3339, r.PickerAt); err != nil {
			return errBadPickerAt
		}
	}
	return nil
}

func (r saveReq) toInput() task.SaveInput {
	input := task.SaveInput{
		UserID:   r.UserID,
		ID:       r.ID,
		Title:    r.Title,
		Text:     r.Text,
		Order:    r.Order,
		ClearDue: r.ClearDue,
	}
	if r.PickerAt != "" {
		if at, err := time.Parse(time.RFC3339, r.PickerAt); err == nil {
			input.PickerAt = &at
		}
	}
	return input
}

type previewReq struct {
	Title string `json:"title" binding:"max=500"`
}

func (r previewReq) validate() error { return nil }

// --- Response DTOs ---

type taskResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Order int    `json:"order"`
	Date  string `json:"date,omitempty"`
	Time  string `json:"time,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:    t.ID,
		Title: t.Title,
		Text:  t.Text,
		Order: t.Order,
		Date:  t.Date,
		Time:  t.Time,
	}
}

type saveResp struct {
	Task      *taskResp `json:"task,omitempty"`
	Saved     bool      `json:"saved"`
	Discarded bool      `json:"discarded"`
}

func (h *handler) newSaveResp(out task.SaveOutput) saveResp {
	resp := saveResp{Saved: out.Saved, Discarded: out.Discarded}
	if !out.Discarded {
		t := newTaskResp(out.Task)
		resp.Task = &t
	}
	return resp
}

type previewResp struct {
	Matched     bool   `json:"matched"`
	Prefix      string `json:"prefix"`
	Highlighted string `json:"highlighted"`
	Suffix      string `json:"suffix"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
}

func (h *handler) newPreviewResp(out task.PreviewOutput) previewResp {
	resp := previewResp{
		Matched:     out.Result.HasMatch(),
		Prefix:      out.Segments.Prefix,
		Highlighted: out.Segments.Highlighted,
		Suffix:      out.Segments.Suffix,
	}
	if resp.Matched {
		resp.Date = out.Result.Date.Format(model.DateFormat)
		resp.Time = out.Result.Date.Format(model.TimeFormat)
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}
