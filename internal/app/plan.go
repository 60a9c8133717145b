package app

import (
	"time"

	"github.com/creative-h/aopplan/internal/analysis"
	"github.com/creative-h/aopplan/internal/domain"
)

// PlanRequest drives one full diagnostic run against a single period.
type PlanRequest struct {
	// Now overrides the report timestamp; nil uses the wall clock.
	Now        *time.Time
	Period     domain.Period
	Policy     analysis.WeightingPolicy
	Thresholds analysis.RiskThresholds
	Report     analysis.ReportConfig
	// Persist stores the finished run in the runs table.
	Persist bool
}

// NewPlanRequest returns a PlanRequest with uniform weighting and the
// standard thresholds.
func NewPlanRequest(period domain.Period) PlanRequest {
	return PlanRequest{
		Period:     period,
		Policy:     analysis.UniformWeighting(),
		Thresholds: analysis.DefaultRiskThresholds(),
		Report:     analysis.DefaultReportConfig(),
		Persist:    true,
	}
}

// PlanResult is the full pipeline output. Field names form the stable
// JSON contract consumed by downstream tooling; do not rename them.
type PlanResult struct {
	RunID            string                  `json:"run_id,omitempty"`
	GeneratedAt      time.Time               `json:"generated_at"`
	Period           domain.Period           `json:"period"`
	TargetBreakdown  domain.TargetBreakdown  `json:"target_breakdown"`
	GapAnalysis      []domain.GapRecord      `json:"gap_analysis"`
	RiskAssessment   []domain.RiskRecord     `json:"risk_assessment"`
	Opportunities    []domain.Opportunity    `json:"opportunities"`
	DiagnosticReport domain.DiagnosticReport `json:"diagnostic_report"`
}

// BreakdownRequest asks for a target decomposition without running the
// downstream diagnostic stages.
type BreakdownRequest struct {
	Year   int
	Policy analysis.WeightingPolicy
}

// NewBreakdownRequest returns a BreakdownRequest with uniform weighting.
func NewBreakdownRequest(year int) BreakdownRequest {
	return BreakdownRequest{Year: year, Policy: analysis.UniformWeighting()}
}
