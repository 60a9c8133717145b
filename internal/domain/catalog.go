package domain

import "sort"

// ActionEffect is the typical per-instance contribution of a catalog
// action to each target field.
type ActionEffect struct {
	LearningHours   float64            `json:"learning_hours"`
	VILTSessions    float64            `json:"vilt_sessions"`
	ILTSessions     float64            `json:"ilt_sessions"`
	CompetencyHours map[string]float64 `json:"competency_hours,omitempty"`
}

// EffectOn returns the per-instance effect on a target field.
func (e ActionEffect) EffectOn(field TargetField) float64 {
	switch {
	case field == FieldVILTSessions:
		return e.VILTSessions
	case field == FieldILTSessions:
		return e.ILTSessions
	case field == FieldLearningHours:
		return e.LearningHours
	case field.IsCompetency():
		return e.CompetencyHours[field.Area()]
	default:
		return 0
	}
}

// ActionCatalog maps action names to their effect vectors. Supplied by the
// hosting application; the analysis core hardcodes no actions.
type ActionCatalog struct {
	Actions map[string]ActionEffect `json:"actions"`
}

// Names returns the action names in lexical order, the deterministic
// iteration order used everywhere actions are scanned.
func (c ActionCatalog) Names() []string {
	names := make([]string, 0, len(c.Actions))
	for name := range c.Actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
