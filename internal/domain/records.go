package domain

import "time"

// GapRecord compares one field of a sub-target against actuals for the
// same period. The sign convention is gap = target - actual. Indicator is
// the domain's "0 = No Gap" convention: literal zero when the target is
// met or exceeded, otherwise the positive shortfall.
type GapRecord struct {
	Period    Period      `json:"period"`
	Field     TargetField `json:"field"`
	Target    float64     `json:"target"`
	Actual    float64     `json:"actual"`
	Gap       float64     `json:"gap"`
	Indicator float64     `json:"indicator"`
}

// HasGap reports whether the period fell short of the target.
func (g *GapRecord) HasGap() bool {
	return g.Indicator != 0
}

// GapFraction returns the shortfall as a fraction of the target.
// Zero targets yield zero; over-delivery on a zero target is not a gap.
func (g *GapRecord) GapFraction() float64 {
	if g.Target <= 0 || g.Gap <= 0 {
		return 0
	}
	return g.Gap / g.Target
}

// RiskRecord scores a gap for severity. Mitigation text belongs to the
// narrative collaborator; the record carries only the structured trigger
// facts it needs.
type RiskRecord struct {
	Gap         GapRecord   `json:"gap"`
	Severity    Severity    `json:"severity"`
	GapFraction float64     `json:"gap_fraction"`
	Escalated   bool        `json:"escalated"`
	Factors     []FactorTag `json:"factors,omitempty"`
}

// ActionCount pairs a catalog action with how many instances to run.
type ActionCount struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// Opportunity proposes a bounded set of catalog actions whose cumulative
// effect closes the originating gap.
type Opportunity struct {
	Period         Period        `json:"period"`
	Field          TargetField   `json:"field"`
	Actions        []ActionCount `json:"actions"`
	ExpectedEffect float64       `json:"expected_effect"`
	GapMagnitude   float64       `json:"gap_magnitude"`
	AlsoCloses     []TargetField `json:"also_closes,omitempty"`
}

// NarrativeUnavailable is the placeholder stored when the narrative
// provider fails; the structured report always survives.
const NarrativeUnavailable = "narrative unavailable"

// DiagnosticReport aggregates the pipeline outputs for leadership review.
type DiagnosticReport struct {
	GeneratedAt   time.Time     `json:"generated_at"`
	Strengths     []GapRecord   `json:"strengths"`
	Weaknesses    []GapRecord   `json:"weaknesses"`
	Risks         []RiskRecord  `json:"risks"`
	Opportunities []Opportunity `json:"opportunities"`
	Narrative     string        `json:"narrative"`
}
