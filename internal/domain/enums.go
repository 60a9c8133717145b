package domain

// Granularity identifies the time resolution of a period.
type Granularity string

const (
	GranularityQuarter Granularity = "quarter"
	GranularityMonth   Granularity = "month"
	GranularityWeek    Granularity = "week"
	GranularityDay     Granularity = "day"
)

// Granularities lists all granularities in decomposition order.
var Granularities = []Granularity{
	GranularityQuarter,
	GranularityMonth,
	GranularityWeek,
	GranularityDay,
}

// ValidGranularities is the canonical set of accepted granularity strings.
var ValidGranularities = map[string]bool{
	"quarter": true, "month": true, "week": true, "day": true,
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Escalate raises a severity by one band. High stays High.
func (s Severity) Escalate() Severity {
	switch s {
	case SeverityLow:
		return SeverityMedium
	case SeverityMedium:
		return SeverityHigh
	default:
		return s
	}
}

// Rank orders severities for sorting and monotonicity checks.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 0
	}
}

// FactorTag names the sub-metric most responsible for a shortfall.
type FactorTag string

const (
	FactorRegistrationShortfall FactorTag = "registration_shortfall"
	FactorSchedulingShortfall   FactorTag = "scheduling_shortfall"
	FactorCompletionShortfall   FactorTag = "completion_shortfall"
)

// MetricSource tags where an imported metrics row originated.
type MetricSource string

const (
	SourceLearningPlan MetricSource = "learning_plan"
	SourceIEvolve      MetricSource = "ievolve"
	SourceIGlance      MetricSource = "iglance"
	SourceAFTD         MetricSource = "aftd"
	SourceInternship   MetricSource = "internship"
)

// ValidMetricSources is the canonical set of accepted source strings.
var ValidMetricSources = map[string]bool{
	"learning_plan": true, "ievolve": true, "iglance": true,
	"aftd": true, "internship": true,
}
