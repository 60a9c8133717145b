package analysis

import "github.com/creative-h/aopplan/internal/domain"

// AnalyzeGaps compares a sub-target against the actuals observed for the
// same period, one record per comparable field: VILT count, ILT count,
// learning hours, then each competency area in sorted order.
//
// gap = target - actual. Indicator is literal 0 when the target is met or
// exceeded, otherwise the positive shortfall ("N units short"). Metrics
// the actuals do not carry count as zero actual, not as unknown.
func AnalyzeGaps(sub domain.SubTarget, actual domain.ActualMetrics) ([]domain.GapRecord, error) {
	if sub.Period != actual.Period {
		return nil, &domain.PeriodMismatchError{Want: sub.Period, Got: actual.Period}
	}

	fields := []domain.TargetField{
		domain.FieldVILTSessions,
		domain.FieldILTSessions,
		domain.FieldLearningHours,
	}
	for _, area := range sortedAreas(sub.CompetencyHours) {
		fields = append(fields, domain.CompetencyField(area))
	}

	records := make([]domain.GapRecord, 0, len(fields))
	for _, field := range fields {
		records = append(records, newGapRecord(sub, actual, field))
	}
	return records, nil
}

func newGapRecord(sub domain.SubTarget, actual domain.ActualMetrics, field domain.TargetField) domain.GapRecord {
	target := sub.FieldValue(field)
	observed := actual.FieldValue(field)
	gap := target - observed

	indicator := 0.0
	if gap > 0 {
		indicator = gap
	}

	return domain.GapRecord{
		Period:    sub.Period,
		Field:     field,
		Target:    target,
		Actual:    observed,
		Gap:       gap,
		Indicator: indicator,
	}
}

func sortedAreas(hours map[string]float64) []string {
	t := domain.AnnualTarget{CompetencyHours: hours}
	return t.Areas()
}
