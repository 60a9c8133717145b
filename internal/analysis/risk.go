package analysis

import (
	"sort"

	"github.com/creative-h/aopplan/internal/domain"
)

// RiskThresholds holds the configurable severity multipliers and the
// sub-metric floors used for contributing-factor attribution.
type RiskThresholds struct {
	// Gap-as-fraction-of-target band edges. Below Ignore no risk is
	// emitted; up to Low is low, up to Medium is medium, above is high.
	Ignore float64
	Low    float64
	Medium float64

	// Floors below which registration and closure rates count as
	// shortfall factors.
	RegistrationFloor float64
	ClosureFloor      float64
}

// DefaultRiskThresholds returns the standard 5/15/35 percent bands with
// the delivery organization's 80% registration and 85% closure floors.
func DefaultRiskThresholds() RiskThresholds {
	return RiskThresholds{
		Ignore:            0.05,
		Low:               0.15,
		Medium:            0.35,
		RegistrationFloor: 0.80,
		ClosureFloor:      0.85,
	}
}

// AssessRisks scores each gap for severity. Gaps under the ignore band,
// and any gap against a zero target, emit no record. When history shows
// the same field's gap worsening for two or more consecutive prior
// periods, severity escalates by one band; escalation never lowers it.
//
// history carries prior periods' actuals for the same granularity and is
// evaluated in period order regardless of input order.
func AssessRisks(gaps []domain.GapRecord, current domain.ActualMetrics, history []domain.ActualMetrics, th RiskThresholds) []domain.RiskRecord {
	ordered := make([]domain.ActualMetrics, len(history))
	copy(ordered, history)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Period.Year != ordered[j].Period.Year {
			return ordered[i].Period.Year < ordered[j].Period.Year
		}
		return ordered[i].Period.Index < ordered[j].Period.Index
	})

	var records []domain.RiskRecord
	for _, gap := range gaps {
		fraction := gap.GapFraction()
		if fraction < th.Ignore {
			continue
		}

		severity := bandFor(fraction, th)
		escalated := false
		if gapTrendWorsening(gap, ordered) {
			severity = severity.Escalate()
			escalated = true
		}

		records = append(records, domain.RiskRecord{
			Gap:         gap,
			Severity:    severity,
			GapFraction: fraction,
			Escalated:   escalated,
			Factors:     contributingFactors(gap, current, th),
		})
	}
	return records
}

func bandFor(fraction float64, th RiskThresholds) domain.Severity {
	switch {
	case fraction <= th.Low:
		return domain.SeverityLow
	case fraction <= th.Medium:
		return domain.SeverityMedium
	default:
		return domain.SeverityHigh
	}
}

// gapTrendWorsening reports whether the field's gap grew strictly across
// the two most recent transitions ending at the current period. The prior
// gaps reuse the current period's target, which is exact under uniform
// weighting and a close proxy otherwise.
func gapTrendWorsening(gap domain.GapRecord, history []domain.ActualMetrics) bool {
	if len(history) < 2 {
		return false
	}

	series := make([]float64, 0, len(history)+1)
	for i := range history {
		series = append(series, gap.Target-history[i].FieldValue(gap.Field))
	}
	series = append(series, gap.Gap)

	worsened := 0
	for i := len(series) - 1; i > 0; i-- {
		if series[i] > series[i-1] {
			worsened++
		} else {
			break
		}
	}
	return worsened >= 2
}

// contributingFactors attributes the shortfall to registration,
// scheduling, and completion sub-metrics by relative contribution,
// largest first. Ties keep the fixed priority order: registration before
// scheduling before completion.
func contributingFactors(gap domain.GapRecord, m domain.ActualMetrics, th RiskThresholds) []domain.FactorTag {
	type weighted struct {
		tag      domain.FactorTag
		share    float64
		priority int
	}

	candidates := []weighted{
		{domain.FactorRegistrationShortfall, registrationShare(m, th), 0},
		{domain.FactorSchedulingShortfall, schedulingShare(gap, m), 1},
		{domain.FactorCompletionShortfall, completionShare(m, th), 2},
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].share != candidates[j].share {
			return candidates[i].share > candidates[j].share
		}
		return candidates[i].priority < candidates[j].priority
	})

	var tags []domain.FactorTag
	for _, c := range candidates {
		if c.share > 0 {
			tags = append(tags, c.tag)
		}
	}
	return tags
}

func registrationShare(m domain.ActualMetrics, th RiskThresholds) float64 {
	if th.RegistrationFloor <= 0 {
		return 0
	}
	deficit := th.RegistrationFloor - m.RegistrationRate()
	if deficit <= 0 {
		return 0
	}
	return deficit / th.RegistrationFloor
}

func schedulingShare(gap domain.GapRecord, m domain.ActualMetrics) float64 {
	switch gap.Field {
	case domain.FieldVILTSessions:
		return countShare(gap.Target, m.VILTScheduled)
	case domain.FieldILTSessions:
		return countShare(gap.Target, m.ILTScheduled)
	default:
		return gap.GapFraction()
	}
}

func countShare(target float64, scheduled int) float64 {
	if target <= 0 {
		return 0
	}
	short := target - float64(scheduled)
	if short <= 0 {
		return 0
	}
	return short / target
}

func completionShare(m domain.ActualMetrics, th RiskThresholds) float64 {
	if th.ClosureFloor <= 0 {
		return 0
	}
	deficit := th.ClosureFloor - m.ClosureRatio
	if deficit <= 0 {
		return 0
	}
	return deficit / th.ClosureFloor
}
