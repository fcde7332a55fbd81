package note

import "todopad/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	UserID  string
	Title   string
	Content string
}

type UpdateInput struct {
	UserID  string
	ID      string
	Title   string
	Content string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Note model.Note
}

type ListOutput struct {
	Notes []model.Note
}

type DetailOutput struct {
	Note model.Note
}

type UpdateOutput struct {
	Note model.Note
}

// ExportOutput is a note rendered as a standalone Markdown document with a
// YAML frontmatter block.
type ExportOutput struct {
	Filename string
	Markdown string
}
