package usecase

import (
	"context"

	"todopad/internal/task"
	"todopad/pkg/highlight"
)

// Preview parses a title for live feedback: the recognized span drives the
// editor highlight without committing anything.
func (uc *implUseCase) Preview(ctx context.Context, title string) (task.PreviewOutput, error) {
	res := uc.parser.Parse(title)
	return task.PreviewOutput{
		Result:   res,
		Segments: highlight.Render(title, res),
	}, nil
}
