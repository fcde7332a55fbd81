package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"

	"todopad/internal/model"
	"todopad/internal/note"
	repo "todopad/internal/note/repository"
)

// frontmatter is the YAML header of an exported note.
type frontmatter struct {
	ID      string    `yaml:"id"`
	Title   string    `yaml:"title"`
	Created time.Time `yaml:"created"`
	Updated time.Time `yaml:"updated"`
}

// Export renders the note as a standalone Markdown document: a YAML
// frontmatter block followed by the title heading and the content.
func (uc *implUseCase) Export(ctx context.Context, userID, id string) (note.ExportOutput, error) {
	n, err := uc.repo.GetOneNote(ctx, repo.GetOneNoteOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export GetOneNote: %v", err)
		return note.ExportOutput{}, err
	}
	if n.ID == "" {
		return note.ExportOutput{}, note.ErrNoteNotFound
	}

	header, err := yaml.Marshal(frontmatter{
		ID:      n.ID,
		Title:   n.Title,
		Created: n.CreatedAt,
		Updated: n.UpdatedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export marshal frontmatter: %v", err)
		return note.ExportOutput{}, err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s\n", n.Title)
	if n.Content != "" {
		b.WriteString("\n")
		b.WriteString(n.Content)
		if !strings.HasSuffix(n.Content, "\n") {
			b.WriteString("\n")
		}
	}

	return note.ExportOutput{
		Filename: exportFilename(n),
		Markdown: b.String(),
	}, nil
}

// exportFilename slugifies the title into a stable .md filename.
func exportFilename(n model.Note) string {
	var slug strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(n.Title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			slug.WriteRune(r)
			lastDash = false
		case !lastDash:
			slug.WriteRune('-')
			lastDash = true
		}
	}
	s := strings.Trim(slug.String(), "-")
	if s == "" {
		s = "note"
	}
	return fmt.Sprintf("%s-%s.md", s, strings.ToLower(n.ID))
}
