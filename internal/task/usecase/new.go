package usecase

import (
	"time"

	"todopad/internal/task"
	"todopad/internal/task/repository"
	"todopad/pkg/dateparse"
	"todopad/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo      repository.Repository
	parser    *dateparse.Parser
	scheduler task.Scheduler
	loc       *time.Location
	l         log.Logger
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, parser *dateparse.Parser, scheduler task.Scheduler, loc *time.Location, l log.Logger) *implUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &implUseCase{
		repo:      repo,
		parser:    parser,
		scheduler: scheduler,
		loc:       loc,
		l:         l,
	}
}
