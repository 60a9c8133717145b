package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/creative-h/aopplan/internal/app"
	"github.com/creative-h/aopplan/internal/domain"
	"github.com/creative-h/aopplan/internal/repository"
)

type targetService struct {
	targets repository.TargetRepo
}

// NewTargetService creates a TargetService backed by the target repository.
func NewTargetService(targets repository.TargetRepo) TargetService {
	return &targetService{targets: targets}
}

func (s *targetService) SetTarget(ctx context.Context, year int, target domain.AnnualTarget) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := s.targets.Upsert(ctx, year, target); err != nil {
		return fmt.Errorf("storing annual target: %w", err)
	}
	return nil
}

func (s *targetService) GetTarget(ctx context.Context, year int) (*domain.AnnualTarget, error) {
	target, err := s.targets.GetByYear(ctx, year)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{
				Code:    app.PlanErrNoTarget,
				Message: fmt.Sprintf("no annual target set for %d", year),
			}
		}
		return nil, err
	}
	return target, nil
}

func (s *targetService) ListTargetYears(ctx context.Context) ([]int, error) {
	return s.targets.ListYears(ctx)
}
