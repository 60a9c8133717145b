package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/creative-h/aopplan/internal/domain"
	"github.com/creative-h/aopplan/internal/repository"
)

// NewAnnualTarget returns the standard fixture target: 400 VILT, 200 ILT,
// 12000 learning hours, technical and leadership competency tracks.
func NewAnnualTarget() domain.AnnualTarget {
	return domain.AnnualTarget{
		VILTSessions:  400,
		ILTSessions:   200,
		LearningHours: 12000,
		CompetencyHours: map[string]float64{
			"technical":  2400,
			"leadership": 800,
		},
	}
}

// MetricRowOption mutates a fixture metric row.
type MetricRowOption func(*repository.MetricRow)

func WithSource(s domain.MetricSource) MetricRowOption {
	return func(r *repository.MetricRow) {
		r.Source = s
	}
}

func WithClosureRatio(ratio float64) MetricRowOption {
	return func(r *repository.MetricRow) {
		r.ClosureRatio = ratio
	}
}

func WithRegistrations(registered, capacity int) MetricRowOption {
	return func(r *repository.MetricRow) {
		r.Registrations = registered
		r.Capacity = capacity
	}
}

// NewMetricRow returns a quarterly fixture row roughly on plan for
// NewAnnualTarget, attributable to the learning-plan source.
func NewMetricRow(year, quarter int, opts ...MetricRowOption) *repository.MetricRow {
	row := &repository.MetricRow{
		ID: uuid.New().String(),
		Period: domain.Period{
			Granularity: domain.GranularityQuarter,
			Year:        year,
			Index:       quarter,
		},
		Source:        domain.SourceLearningPlan,
		VILTScheduled: 100,
		VILTCompleted: 95,
		ILTScheduled:  50,
		ILTCompleted:  48,
		LearningHours: 3000,
		CompetencyHours: map[string]float64{
			"technical":  600,
			"leadership": 200,
		},
		Registrations: 90,
		Capacity:      100,
		ClosureRatio:  0.9,
		ImportedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(row)
	}
	return row
}

// NewActionCatalog returns a small fixture catalog with one VILT-heavy and
// one competency-focused action.
func NewActionCatalog() domain.ActionCatalog {
	return domain.ActionCatalog{
		Actions: map[string]domain.ActionEffect{
			"Virtual Series": {
				VILTSessions:  2,
				LearningHours: 40,
			},
			"Leadership Workshop": {
				ILTSessions:   1,
				LearningHours: 8,
				CompetencyHours: map[string]float64{
					"leadership": 8,
				},
			},
		},
	}
}
