package repository

// CreateTaskOptions holds parameters for inserting a new Task. The id is
// generated by the repository.
type CreateTaskOptions struct {
	UserID string
	Title  string
	Text   string
	Order  int
	Date   string
	Time   string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and sorting parameters for listing Tasks.
type ListTasksOptions struct {
	UserID  string
	DueOnly bool
	OrderBy string
}

// UpdateTaskOptions holds parameters for updating an existing Task.
type UpdateTaskOptions struct {
	ID     string
	UserID string
	Title  string
	Text   string
	Order  int
	Date   string
	Time   string
}
