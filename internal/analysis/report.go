package analysis

import (
	"context"
	"time"

	"github.com/creative-h/aopplan/internal/domain"
)

// NarrativeFacts is the structured input handed to the narrative
// collaborator. The reporter treats whatever comes back as opaque text.
type NarrativeFacts struct {
	GeneratedAt   time.Time            `json:"generated_at"`
	Strengths     []domain.GapRecord   `json:"strengths"`
	Weaknesses    []domain.GapRecord   `json:"weaknesses"`
	Risks         []domain.RiskRecord  `json:"risks"`
	Opportunities []domain.Opportunity `json:"opportunities"`
}

// NarrativeProvider produces free-form diagnostic prose from structured
// facts. How it does so (template, LLM, static lookup) is outside the
// analysis core's concern.
type NarrativeProvider interface {
	Narrate(ctx context.Context, facts NarrativeFacts) (string, error)
}

// ReportConfig holds the reporter's configurable margins.
type ReportConfig struct {
	// StrengthMargin is the actual/target ratio a met target must clear
	// to be flagged a strength. A bare 100% is not a strength.
	StrengthMargin float64
}

// DefaultReportConfig uses the standard 110% strength margin.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{StrengthMargin: 1.10}
}

// BuildReport aggregates the pipeline outputs into one diagnostic report.
// The narrative call is isolated: if the provider fails, the structured
// fields still come back with the narrative set to the unavailable marker.
func BuildReport(
	ctx context.Context,
	now time.Time,
	gaps []domain.GapRecord,
	risks []domain.RiskRecord,
	opportunities []domain.Opportunity,
	provider NarrativeProvider,
	cfg ReportConfig,
) domain.DiagnosticReport {
	report := domain.DiagnosticReport{
		GeneratedAt:   now,
		Risks:         risks,
		Opportunities: opportunities,
	}

	for _, gap := range gaps {
		switch {
		case gap.HasGap():
			report.Weaknesses = append(report.Weaknesses, gap)
		case isStrength(gap, cfg.StrengthMargin):
			report.Strengths = append(report.Strengths, gap)
		}
	}

	report.Narrative = domain.NarrativeUnavailable
	if provider != nil {
		facts := NarrativeFacts{
			GeneratedAt:   now,
			Strengths:     report.Strengths,
			Weaknesses:    report.Weaknesses,
			Risks:         risks,
			Opportunities: opportunities,
		}
		if text, err := provider.Narrate(ctx, facts); err == nil {
			report.Narrative = text
		}
	}

	return report
}

// isStrength requires a met target with positive margin. Over-delivery on
// a zero target clears any margin by definition.
func isStrength(gap domain.GapRecord, margin float64) bool {
	if gap.Target <= 0 {
		return gap.Actual > 0
	}
	return gap.Actual >= margin*gap.Target
}
