package domain

import "strings"

// TargetField names one comparable AOP target field. Competency areas use
// the "competency:<area>" form so every area survives decomposition and
// gap analysis without a fixed enum.
type TargetField string

const (
	FieldVILTSessions  TargetField = "vilt_sessions"
	FieldILTSessions   TargetField = "ilt_sessions"
	FieldLearningHours TargetField = "learning_hours"
)

const competencyPrefix = "competency:"

// CompetencyField builds the field name for a competency area.
func CompetencyField(area string) TargetField {
	return TargetField(competencyPrefix + area)
}

// IsCompetency reports whether the field addresses a competency area.
func (f TargetField) IsCompetency() bool {
	return strings.HasPrefix(string(f), competencyPrefix)
}

// Area returns the competency area name, or "" for non-competency fields.
func (f TargetField) Area() string {
	if !f.IsCompetency() {
		return ""
	}
	return strings.TrimPrefix(string(f), competencyPrefix)
}

// IsCount reports whether the field counts sessions rather than hours.
func (f TargetField) IsCount() bool {
	return f == FieldVILTSessions || f == FieldILTSessions
}
