package importer

import (
	"fmt"

	"github.com/creative-h/aopplan/internal/domain"
)

// ValidateMetricsFile checks a metrics extract before conversion.
// Returns a slice of all validation errors found.
func ValidateMetricsFile(file *MetricsFile) []error {
	var errs []error

	if file.Year <= 0 {
		errs = append(errs, fmt.Errorf("year is required"))
	}
	if !domain.ValidGranularities[file.Granularity] {
		errs = append(errs, fmt.Errorf("granularity: invalid value %q", file.Granularity))
	}
	if len(file.Rows) == 0 {
		errs = append(errs, fmt.Errorf("rows: at least one row is required"))
	}

	maxIndex := 0
	if domain.ValidGranularities[file.Granularity] && file.Year > 0 {
		maxIndex = domain.PeriodCount(domain.Granularity(file.Granularity), file.Year)
	}

	seen := map[string]bool{}
	for i, row := range file.Rows {
		prefix := fmt.Sprintf("rows[%d]", i)

		if row.Period <= 0 {
			errs = append(errs, fmt.Errorf("%s.period must be positive", prefix))
		} else if maxIndex > 0 && row.Period > maxIndex {
			errs = append(errs, fmt.Errorf("%s.period %d exceeds %d %s periods in %d",
				prefix, row.Period, maxIndex, file.Granularity, file.Year))
		}
		if !domain.ValidMetricSources[row.Source] {
			errs = append(errs, fmt.Errorf("%s.source: invalid value %q", prefix, row.Source))
		}

		key := fmt.Sprintf("%d/%s", row.Period, row.Source)
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate period %d for source %q", prefix, row.Period, row.Source))
		}
		seen[key] = true

		if row.VILTScheduled < 0 || row.VILTCompleted < 0 || row.ILTScheduled < 0 || row.ILTCompleted < 0 {
			errs = append(errs, fmt.Errorf("%s: session counts must be non-negative", prefix))
		}
		if row.LearningHours < 0 {
			errs = append(errs, fmt.Errorf("%s.learning_hours must be non-negative", prefix))
		}
		for area, hours := range row.CompetencyHours {
			if hours < 0 {
				errs = append(errs, fmt.Errorf("%s.competency_hours[%s] must be non-negative", prefix, area))
			}
		}
		if row.Registrations < 0 || row.Capacity < 0 {
			errs = append(errs, fmt.Errorf("%s: registrations and capacity must be non-negative", prefix))
		}
		if row.Registrations > row.Capacity && row.Capacity > 0 {
			errs = append(errs, fmt.Errorf("%s: registrations (%d) exceed capacity (%d)", prefix, row.Registrations, row.Capacity))
		}
		if row.ClosureRatio < 0 || row.ClosureRatio > 1 {
			errs = append(errs, fmt.Errorf("%s.closure_ratio must be between 0 and 1", prefix))
		}
	}

	return errs
}

// ValidateCatalogFile checks an action catalog before conversion.
func ValidateCatalogFile(file *CatalogFile) []error {
	var errs []error

	if len(file.Actions) == 0 {
		errs = append(errs, fmt.Errorf("actions: at least one action is required"))
	}

	seen := map[string]bool{}
	for i, action := range file.Actions {
		prefix := fmt.Sprintf("actions[%d]", i)

		if action.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if seen[action.Name] {
			errs = append(errs, fmt.Errorf("%s: duplicate action name %q", prefix, action.Name))
		}
		seen[action.Name] = true

		if action.LearningHours < 0 || action.VILTSessions < 0 || action.ILTSessions < 0 {
			errs = append(errs, fmt.Errorf("%s: effects must be non-negative", prefix))
		}
		positive := action.LearningHours > 0 || action.VILTSessions > 0 || action.ILTSessions > 0
		for area, hours := range action.CompetencyHours {
			if hours < 0 {
				errs = append(errs, fmt.Errorf("%s.competency_hours[%s] must be non-negative", prefix, area))
			}
			if hours > 0 {
				positive = true
			}
		}
		if !positive {
			errs = append(errs, fmt.Errorf("%s: action %q has no positive effect", prefix, action.Name))
		}
	}

	return errs
}

// ValidateWeightingFile checks a weighting policy before conversion.
// Weight vector lengths are checked against the year at decomposition
// time; here only granularity names and signs are verified.
func ValidateWeightingFile(file *WeightingFile) []error {
	var errs []error

	check := func(prefix string, weights map[string][]float64) {
		for g, vec := range weights {
			if !domain.ValidGranularities[g] {
				errs = append(errs, fmt.Errorf("%s: invalid granularity %q", prefix, g))
			}
			sum := 0.0
			for i, w := range vec {
				if w < 0 {
					errs = append(errs, fmt.Errorf("%s[%s][%d] must be non-negative", prefix, g, i))
				}
				sum += w
			}
			if len(vec) > 0 && sum == 0 {
				errs = append(errs, fmt.Errorf("%s[%s]: weights must not all be zero", prefix, g))
			}
		}
	}

	check("weights", file.Weights)
	for area, weights := range file.AreaWeights {
		check(fmt.Sprintf("area_weights[%s]", area), weights)
	}

	return errs
}
