package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/creative-h/aopplan/internal/app"
	"github.com/creative-h/aopplan/internal/contract"
	"github.com/creative-h/aopplan/internal/db"
	"github.com/creative-h/aopplan/internal/domain"
	"github.com/creative-h/aopplan/internal/importer"
	"github.com/creative-h/aopplan/internal/repository"
)

type metricsService struct {
	metrics repository.MetricsRepo
	uow     db.UnitOfWork
}

// NewMetricsService creates a MetricsService. Imports run inside a single
// transaction on uow, so a bad row never leaves a partial extract behind.
func NewMetricsService(metrics repository.MetricsRepo, uow db.UnitOfWork) MetricsService {
	return &metricsService{metrics: metrics, uow: uow}
}

func (s *metricsService) ImportMetrics(ctx context.Context, file *importer.MetricsFile) (*contract.ImportStats, error) {
	if errs := importer.ValidateMetricsFile(file); len(errs) > 0 {
		return nil, fmt.Errorf("invalid metrics file: %w", errors.Join(errs...))
	}

	rows := importer.MetricRows(file)
	sources := map[string]bool{}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteMetricsRepo(tx)
		for _, row := range rows {
			if err := repo.Upsert(ctx, row); err != nil {
				return fmt.Errorf("importing row for %s: %w", row.Period.Label(), err)
			}
			sources[string(row.Source)] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stats := &contract.ImportStats{RowsImported: len(rows)}
	for source := range sources {
		stats.Sources = append(stats.Sources, source)
	}
	sort.Strings(stats.Sources)
	return stats, nil
}

func (s *metricsService) GetPeriodMetrics(ctx context.Context, period domain.Period) (*domain.ActualMetrics, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	metrics, err := s.metrics.GetPeriod(ctx, period)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{
				Code:    app.PlanErrNoMetrics,
				Message: fmt.Sprintf("no metrics imported for %s %d", period.Label(), period.Year),
			}
		}
		return nil, err
	}
	return metrics, nil
}
