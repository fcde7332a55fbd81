package http

import (
	"time"

	"todopad/internal/model"
	"todopad/internal/note"
)

// --- Request DTOs ---

type createReq struct {
	UserID  string `json:"-"` // populated from the auth context
	Title   string `json:"title"   binding:"required,min=1,max=500"`
	Content string `json:"content" binding:"max=100000"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() note.CreateInput {
	return note.CreateInput{
		UserID:  r.UserID,
		Title:   r.Title,
		Content: r.Content,
	}
}

type updateReq struct {
	UserID  string `json:"-"` // populated from the auth context
	ID      string `json:"-"` // populated from URI param
	Title   string `json:"title"   binding:"required,min=1,max=500"`
	Content string `json:"content" binding:"max=100000"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() note.UpdateInput {
	return note.UpdateInput{
		UserID:  r.UserID,
		ID:      r.ID,
		Title:   r.Title,
		Content: r.Content,
	}
}

// --- Response DTOs ---

type noteResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newNoteResp(n model.Note) noteResp {
	return noteResp{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

type createResp struct {
	Note noteResp `json:"note"`
}

func (h *handler) newCreateResp(out note.CreateOutput) createResp {
	return createResp{Note: newNoteResp(out.Note)}
}

type listResp struct {
	Notes []noteResp `json:"notes"`
}

func (h *handler) newListResp(out note.ListOutput) listResp {
	notes := make([]noteResp, len(out.Notes))
	for i, n := range out.Notes {
		notes[i] = newNoteResp(n)
	}
	return listResp{Notes: notes}
}

type detailResp struct {
	Note noteResp `json:"note"`
}

func (h *handler) newDetailResp(out note.DetailOutput) detailResp {
	return detailResp{Note: newNoteResp(out.Note)}
}

type updateResp struct {
	Note noteResp `json:"note"`
}

func (h *handler) newUpdateResp(out note.UpdateOutput) updateResp {
	return updateResp{Note: newNoteResp(out.Note)}
}
