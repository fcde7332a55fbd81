package note

import "context"

// UseCase defines the business logic interface for the note domain.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, userID string) (ListOutput, error)
	Detail(ctx context.Context, userID, id string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, userID, id string) error

	// Export renders the note as a Markdown document with YAML frontmatter.
	Export(ctx context.Context, userID, id string) (ExportOutput, error)
}
