package domain

import "sort"

// AnnualTarget is the immutable AOP target set for one planning year.
// Competency hours may overlap categorically with LearningHours; they are
// decomposed independently and never dropped.
type AnnualTarget struct {
	VILTSessions    int                `json:"vilt_sessions"`
	ILTSessions     int                `json:"ilt_sessions"`
	LearningHours   float64            `json:"learning_hours"`
	CompetencyHours map[string]float64 `json:"competency_hours"`
}

// Validate rejects negative numeric fields.
func (t *AnnualTarget) Validate() error {
	if t.VILTSessions < 0 {
		return &InvalidTargetError{Field: string(FieldVILTSessions), Value: float64(t.VILTSessions)}
	}
	if t.ILTSessions < 0 {
		return &InvalidTargetError{Field: string(FieldILTSessions), Value: float64(t.ILTSessions)}
	}
	if t.LearningHours < 0 {
		return &InvalidTargetError{Field: string(FieldLearningHours), Value: t.LearningHours}
	}
	for area, hours := range t.CompetencyHours {
		if hours < 0 {
			return &InvalidTargetError{Field: string(CompetencyField(area)), Value: hours}
		}
	}
	return nil
}

// Areas returns the competency area names in sorted order.
func (t *AnnualTarget) Areas() []string {
	areas := make([]string, 0, len(t.CompetencyHours))
	for area := range t.CompetencyHours {
		areas = append(areas, area)
	}
	sort.Strings(areas)
	return areas
}

// SubTarget is one period's prorated share of an AnnualTarget, plus the
// deterministic to-do list derived from the prorated numbers.
type SubTarget struct {
	Period          Period             `json:"period"`
	VILTSessions    int                `json:"vilt_sessions"`
	ILTSessions     int                `json:"ilt_sessions"`
	LearningHours   float64            `json:"learning_hours"`
	CompetencyHours map[string]float64 `json:"competency_hours"`
	Tasks           []string           `json:"tasks,omitempty"`
}

// FieldValue returns the sub-target value for a comparable field.
// Unknown competency areas resolve to zero.
func (s *SubTarget) FieldValue(field TargetField) float64 {
	switch {
	case field == FieldVILTSessions:
		return float64(s.VILTSessions)
	case field == FieldILTSessions:
		return float64(s.ILTSessions)
	case field == FieldLearningHours:
		return s.LearningHours
	case field.IsCompetency():
		return s.CompetencyHours[field.Area()]
	default:
		return 0
	}
}

// TargetBreakdown is the decomposer output across all granularities.
type TargetBreakdown struct {
	Annual    AnnualTarget `json:"annual"`
	Quarterly []SubTarget  `json:"quarterly"`
	Monthly   []SubTarget  `json:"monthly"`
	Weekly    []SubTarget  `json:"weekly"`
	Daily     []SubTarget  `json:"daily"`
}

// ByGranularity returns the sub-target slice for g, or nil.
func (b *TargetBreakdown) ByGranularity(g Granularity) []SubTarget {
	switch g {
	case GranularityQuarter:
		return b.Quarterly
	case GranularityMonth:
		return b.Monthly
	case GranularityWeek:
		return b.Weekly
	case GranularityDay:
		return b.Daily
	default:
		return nil
	}
}

// Find returns the sub-target for the given period, if present.
func (b *TargetBreakdown) Find(p Period) (SubTarget, bool) {
	subs := b.ByGranularity(p.Granularity)
	if p.Index < 1 || p.Index > len(subs) {
		return SubTarget{}, false
	}
	sub := subs[p.Index-1]
	if sub.Period != p {
		return SubTarget{}, false
	}
	return sub, true
}
