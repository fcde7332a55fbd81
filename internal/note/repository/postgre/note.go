package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"todopad/internal/model"
	repo "todopad/internal/note/repository"
)

// CreateNote inserts a new note row and returns the created entity. Note ids
// are ULIDs so a plain sort by id is also a sort by creation time.
func (r *implRepository) CreateNote(ctx context.Context, opt repo.CreateNoteOptions) (model.Note, error) {
	const query = `
		INSERT INTO notes (id, user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, user_id, title, content, created_at, updated_at`

	var n model.Note
	err := r.db.QueryRowContext(ctx, query,
		ulid.Make().String(), opt.UserID, opt.Title, opt.Content,
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return model.Note{}, repo.ErrFailedToInsert
	}
	return n, nil
}

// GetOneNote retrieves a single note by the provided filters (AND condition).
// Returns zero-value Note (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneNote(ctx context.Context, opt repo.GetOneNoteOptions) (model.Note, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(
		`SELECT id, user_id, title, content, created_at, updated_at FROM notes WHERE %s LIMIT 1`,
		mods,
	)

	var n model.Note
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Note{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneNote"), err)
		return model.Note{}, repo.ErrFailedToGet
	}
	return n, nil
}

// ListNotes returns the user's notes, newest first by default.
func (r *implRepository) ListNotes(ctx context.Context, opt repo.ListNotesOptions) ([]model.Note, error) {
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "id DESC"
	}
	query := fmt.Sprintf(
		`SELECT id, user_id, title, content, created_at, updated_at FROM notes WHERE user_id = $1 ORDER BY %s`,
		orderBy,
	)

	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return nil, repo.ErrFailedToList
	}
	return notes, nil
}

// UpdateNote updates a note by id within the user's scope. Returns
// zero-value Note when no row matched.
func (r *implRepository) UpdateNote(ctx context.Context, opt repo.UpdateNoteOptions) (model.Note, error) {
	const query = `
		UPDATE notes
		SET title = $1, content = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, title, content, created_at, updated_at`

	var n model.Note
	err := r.db.QueryRowContext(ctx, query, opt.Title, opt.Content, opt.ID, opt.UserID).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNote"), err)
		return model.Note{}, repo.ErrFailedToUpdate
	}
	return n, nil
}

// DeleteNote removes a note by id within the user's scope.
func (r *implRepository) DeleteNote(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM notes WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteNote"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// buildGetOneQuery builds WHERE clause + args for GetOneNote.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneNoteOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
