package repository

import (
	"context"
	"errors"
	"time"

	"github.com/creative-h/aopplan/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// MetricRow is a single extract row as delivered by one reporting source.
// Aggregation into a period-level domain.ActualMetrics happens at read time.
type MetricRow struct {
	ID              string
	Period          domain.Period
	Source          domain.MetricSource
	VILTScheduled   int
	VILTCompleted   int
	ILTScheduled    int
	ILTCompleted    int
	LearningHours   float64
	CompetencyHours map[string]float64
	Registrations   int
	Capacity        int
	ClosureRatio    float64
	ImportedAt      time.Time
}

// RunRecord is a persisted plan run: the full pipeline output as JSON
// plus enough metadata to list and replay past runs.
type RunRecord struct {
	ID              string
	Year            int
	CreatedAt       time.Time
	NarrativeSource string
	ResultJSON      []byte
}

type TargetRepo interface {
	Upsert(ctx context.Context, year int, target domain.AnnualTarget) error
	GetByYear(ctx context.Context, year int) (*domain.AnnualTarget, error)
	ListYears(ctx context.Context) ([]int, error)
	Delete(ctx context.Context, year int) error
}

type MetricsRepo interface {
	Upsert(ctx context.Context, row *MetricRow) error
	// GetPeriod aggregates all source rows for one period into a single
	// ActualMetrics. Returns ErrNotFound when no source reported.
	GetPeriod(ctx context.Context, period domain.Period) (*domain.ActualMetrics, error)
	// ListHistory returns aggregated metrics for periods of the same
	// granularity and year strictly before the given index, in period order.
	ListHistory(ctx context.Context, before domain.Period) ([]domain.ActualMetrics, error)
}

type CatalogRepo interface {
	Upsert(ctx context.Context, name string, effect domain.ActionEffect) error
	Get(ctx context.Context) (domain.ActionCatalog, error)
	Delete(ctx context.Context, name string) error
}

type RunRepo interface {
	Create(ctx context.Context, run *RunRecord) error
	GetLatest(ctx context.Context, year int) (*RunRecord, error)
	List(ctx context.Context, year int) ([]*RunRecord, error)
}
