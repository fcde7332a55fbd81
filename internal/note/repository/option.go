package repository

// CreateNoteOptions holds parameters for inserting a new Note. The id is
// generated by the repository.
type CreateNoteOptions struct {
	UserID  string
	Title   string
	Content string
}

// GetOneNoteOptions holds filter parameters for fetching a single Note.
// All non-empty fields are applied as AND conditions.
type GetOneNoteOptions struct {
	ID     string
	UserID string
}

// ListNotesOptions holds filter and sorting parameters for listing Notes.
type ListNotesOptions struct {
	UserID  string
	OrderBy string
}

// UpdateNoteOptions holds parameters for updating an existing Note.
type UpdateNoteOptions struct {
	ID      string
	UserID  string
	Title   string
	Content string
}
