package importer

import (
	"github.com/creative-h/aopplan/internal/analysis"
	"github.com/creative-h/aopplan/internal/domain"
	"github.com/creative-h/aopplan/internal/repository"
)

// MetricRows transforms a validated MetricsFile into repository rows.
// Call ValidateMetricsFile first; MetricRows assumes the file is valid.
func MetricRows(file *MetricsFile) []*repository.MetricRow {
	rows := make([]*repository.MetricRow, 0, len(file.Rows))
	for _, r := range file.Rows {
		rows = append(rows, &repository.MetricRow{
			Period: domain.Period{
				Granularity: domain.Granularity(file.Granularity),
				Year:        file.Year,
				Index:       r.Period,
			},
			Source:          domain.MetricSource(r.Source),
			VILTScheduled:   r.VILTScheduled,
			VILTCompleted:   r.VILTCompleted,
			ILTScheduled:    r.ILTScheduled,
			ILTCompleted:    r.ILTCompleted,
			LearningHours:   r.LearningHours,
			CompetencyHours: copyHours(r.CompetencyHours),
			Registrations:   r.Registrations,
			Capacity:        r.Capacity,
			ClosureRatio:    r.ClosureRatio,
		})
	}
	return rows
}

// CatalogActions transforms a validated CatalogFile into effect vectors
// keyed by action name.
func CatalogActions(file *CatalogFile) map[string]domain.ActionEffect {
	actions := make(map[string]domain.ActionEffect, len(file.Actions))
	for _, a := range file.Actions {
		actions[a.Name] = domain.ActionEffect{
			LearningHours:   a.LearningHours,
			VILTSessions:    a.VILTSessions,
			ILTSessions:     a.ILTSessions,
			CompetencyHours: copyHours(a.CompetencyHours),
		}
	}
	return actions
}

// WeightingPolicy transforms a validated WeightingFile into an
// analysis policy. Granularities absent from the file stay uniform.
func WeightingPolicy(file *WeightingFile) analysis.WeightingPolicy {
	policy := analysis.WeightingPolicy{}

	if len(file.Weights) > 0 {
		policy.Weights = map[domain.Granularity][]float64{}
		for g, vec := range file.Weights {
			policy.Weights[domain.Granularity(g)] = append([]float64(nil), vec...)
		}
	}
	if len(file.AreaWeights) > 0 {
		policy.AreaWeights = map[string]map[domain.Granularity][]float64{}
		for area, weights := range file.AreaWeights {
			byGranularity := map[domain.Granularity][]float64{}
			for g, vec := range weights {
				byGranularity[domain.Granularity(g)] = append([]float64(nil), vec...)
			}
			policy.AreaWeights[area] = byGranularity
		}
	}
	return policy
}

func copyHours(in map[string]float64) map[string]float64 {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
