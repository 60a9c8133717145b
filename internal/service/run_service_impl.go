package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/creative-h/aopplan/internal/app"
	"github.com/creative-h/aopplan/internal/repository"
)

type runService struct {
	runs repository.RunRepo
}

// NewRunService creates a RunService backed by the run repository.
func NewRunService(runs repository.RunRepo) RunService {
	return &runService{runs: runs}
}

func (s *runService) LatestRun(ctx context.Context, year int) (*repository.RunRecord, error) {
	run, err := s.runs.GetLatest(ctx, year)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{
				Code:    app.PlanErrNoRuns,
				Message: fmt.Sprintf("no plan runs recorded for %d", year),
			}
		}
		return nil, err
	}
	return run, nil
}

func (s *runService) ListRuns(ctx context.Context, year int) ([]*repository.RunRecord, error) {
	return s.runs.List(ctx, year)
}
