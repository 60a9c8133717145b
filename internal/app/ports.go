package app

import (
	"context"

	"github.com/creative-h/aopplan/internal/domain"
	"github.com/creative-h/aopplan/internal/importer"
	"github.com/creative-h/aopplan/internal/repository"
)

type PlanUseCase interface {
	// RunPlan executes the full pipeline for one period: decompose,
	// analyze gaps, assess risks, find opportunities, build the report.
	RunPlan(ctx context.Context, req PlanRequest) (*PlanResult, error)
}

type BreakdownUseCase interface {
	Breakdown(ctx context.Context, req BreakdownRequest) (*domain.TargetBreakdown, error)
}

type TargetUseCase interface {
	SetTarget(ctx context.Context, year int, target domain.AnnualTarget) error
	GetTarget(ctx context.Context, year int) (*domain.AnnualTarget, error)
	ListTargetYears(ctx context.Context) ([]int, error)
}

type MetricsUseCase interface {
	ImportMetrics(ctx context.Context, file *importer.MetricsFile) (*ImportStats, error)
	GetPeriodMetrics(ctx context.Context, period domain.Period) (*domain.ActualMetrics, error)
}

type CatalogUseCase interface {
	ImportCatalog(ctx context.Context, file *importer.CatalogFile) (*CatalogStats, error)
	GetCatalog(ctx context.Context) (domain.ActionCatalog, error)
}

type RunUseCase interface {
	LatestRun(ctx context.Context, year int) (*repository.RunRecord, error)
	ListRuns(ctx context.Context, year int) ([]*repository.RunRecord, error)
}
