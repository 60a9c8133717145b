package service

import (
	"context"

	"github.com/creative-h/aopplan/internal/contract"
	"github.com/creative-h/aopplan/internal/domain"
	"github.com/creative-h/aopplan/internal/importer"
	"github.com/creative-h/aopplan/internal/repository"
)

type TargetService interface {
	SetTarget(ctx context.Context, year int, target domain.AnnualTarget) error
	GetTarget(ctx context.Context, year int) (*domain.AnnualTarget, error)
	ListTargetYears(ctx context.Context) ([]int, error)
}

type MetricsService interface {
	ImportMetrics(ctx context.Context, file *importer.MetricsFile) (*contract.ImportStats, error)
	GetPeriodMetrics(ctx context.Context, period domain.Period) (*domain.ActualMetrics, error)
}

type CatalogService interface {
	ImportCatalog(ctx context.Context, file *importer.CatalogFile) (*contract.CatalogStats, error)
	GetCatalog(ctx context.Context) (domain.ActionCatalog, error)
}

type PlanService interface {
	RunPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResult, error)
	Breakdown(ctx context.Context, req contract.BreakdownRequest) (*domain.TargetBreakdown, error)
}

type RunService interface {
	LatestRun(ctx context.Context, year int) (*repository.RunRecord, error)
	ListRuns(ctx context.Context, year int) ([]*repository.RunRecord, error)
}
