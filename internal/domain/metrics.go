package domain

// ActualMetrics is the observed delivery activity for one period, as
// supplied by the upstream learning-data systems. The analysis core never
// fabricates these; missing fields are read as zero.
type ActualMetrics struct {
	Period          Period             `json:"period"`
	Sources         []MetricSource     `json:"sources,omitempty"`
	VILTScheduled   int                `json:"vilt_scheduled"`
	VILTCompleted   int                `json:"vilt_completed"`
	ILTScheduled    int                `json:"ilt_scheduled"`
	ILTCompleted    int                `json:"ilt_completed"`
	LearningHours   float64            `json:"learning_hours"`
	CompetencyHours map[string]float64 `json:"competency_hours,omitempty"`
	Registrations   int                `json:"registrations"`
	Capacity        int                `json:"capacity"`
	ClosureRatio    float64            `json:"closure_ratio"`
}

// FieldValue returns the observed value comparable to a target field.
// Session counts compare against what is scheduled, matching how the
// delivery plan is tracked.
func (m *ActualMetrics) FieldValue(field TargetField) float64 {
	switch {
	case field == FieldVILTSessions:
		return float64(m.VILTScheduled)
	case field == FieldILTSessions:
		return float64(m.ILTScheduled)
	case field == FieldLearningHours:
		return m.LearningHours
	case field.IsCompetency():
		return m.CompetencyHours[field.Area()]
	default:
		return 0
	}
}

// RegistrationRate returns registrations over capacity, or 1 when capacity
// is unreported (no evidence of a registration problem).
func (m *ActualMetrics) RegistrationRate() float64 {
	if m.Capacity <= 0 {
		return 1
	}
	return float64(m.Registrations) / float64(m.Capacity)
}
