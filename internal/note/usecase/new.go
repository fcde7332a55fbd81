package usecase

import (
	"todopad/internal/note/repository"
	"todopad/pkg/log"
)

// implUseCase is the private implementation of note.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new note UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
