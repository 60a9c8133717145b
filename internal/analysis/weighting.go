package analysis

import (
	"fmt"

	"github.com/creative-h/aopplan/internal/domain"
)

// WeightingPolicy controls how annual values are prorated across the
// periods of each granularity. An absent weight sequence means uniform
// distribution. Weights need not sum to 1; they are normalized before use.
// A competency area may override the parent policy per granularity.
type WeightingPolicy struct {
	Weights     map[domain.Granularity][]float64            `json:"weights,omitempty" yaml:"weights,omitempty"`
	AreaWeights map[string]map[domain.Granularity][]float64 `json:"area_weights,omitempty" yaml:"area_weights,omitempty"`
}

// UniformWeighting distributes every granularity evenly.
func UniformWeighting() WeightingPolicy {
	return WeightingPolicy{}
}

// SeasonalPreset carries the delivery calendar's historical seasonal
// shape: a Q2 ramp-up and a year-end slowdown.
func SeasonalPreset() WeightingPolicy {
	return WeightingPolicy{
		Weights: map[domain.Granularity][]float64{
			domain.GranularityQuarter: {0.25, 0.30, 0.25, 0.20},
			domain.GranularityMonth:   {0.08, 0.08, 0.09, 0.09, 0.09, 0.12, 0.08, 0.08, 0.09, 0.08, 0.06, 0.06},
		},
	}
}

// normalized returns per-period fractions summing to 1 for granularity g
// of the given year. area == "" addresses the parent policy.
func (p WeightingPolicy) normalized(area string, g domain.Granularity, year int) ([]float64, error) {
	n := domain.PeriodCount(g, year)

	weights := p.Weights[g]
	if area != "" {
		if override, ok := p.AreaWeights[area]; ok && override[g] != nil {
			weights = override[g]
		}
	}

	if weights == nil {
		uniform := make([]float64, n)
		for i := range uniform {
			uniform[i] = 1.0 / float64(n)
		}
		return uniform, nil
	}

	if len(weights) != n {
		return nil, &domain.InvalidTargetError{
			Field:  "weighting",
			Detail: fmt.Sprintf("%s weights have %d entries, year %d has %d periods", g, len(weights), year, n),
		}
	}

	var sum float64
	for i, w := range weights {
		if w < 0 {
			return nil, &domain.InvalidTargetError{
				Field:  "weighting",
				Detail: fmt.Sprintf("%s weight %d is negative", g, i+1),
			}
		}
		sum += w
	}
	if sum <= 0 {
		return nil, &domain.InvalidTargetError{
			Field:  "weighting",
			Detail: fmt.Sprintf("%s weights sum to zero", g),
		}
	}

	normalized := make([]float64, n)
	for i, w := range weights {
		normalized[i] = w / sum
	}
	return normalized, nil
}
