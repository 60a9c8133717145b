package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/creative-h/aopplan/internal/domain"
)

// YearBounds is the supported planning-year window.
type YearBounds struct {
	Min int
	Max int
}

// DefaultYearBounds allows the current year plus or minus five.
func DefaultYearBounds(now time.Time) YearBounds {
	return YearBounds{Min: now.Year() - 5, Max: now.Year() + 5}
}

// Decompose splits an annual target set into quarterly, monthly, weekly,
// and daily sub-targets. Session counts use the largest-remainder method
// so each granularity reconstructs the annual value exactly; hour fields
// are prorated by normalized weight.
func Decompose(annual domain.AnnualTarget, year int, policy WeightingPolicy, bounds YearBounds) (*domain.TargetBreakdown, error) {
	if err := annual.Validate(); err != nil {
		return nil, err
	}
	if year < bounds.Min || year > bounds.Max {
		return nil, &domain.InvalidPeriodError{
			Year:   year,
			Detail: fmt.Sprintf("outside supported range %d-%d", bounds.Min, bounds.Max),
		}
	}

	breakdown := &domain.TargetBreakdown{Annual: annual}
	for _, g := range domain.Granularities {
		subs, err := decomposeGranularity(annual, year, g, policy)
		if err != nil {
			return nil, err
		}
		switch g {
		case domain.GranularityQuarter:
			breakdown.Quarterly = subs
		case domain.GranularityMonth:
			breakdown.Monthly = subs
		case domain.GranularityWeek:
			breakdown.Weekly = subs
		case domain.GranularityDay:
			breakdown.Daily = subs
		}
	}
	return breakdown, nil
}

func decomposeGranularity(annual domain.AnnualTarget, year int, g domain.Granularity, policy WeightingPolicy) ([]domain.SubTarget, error) {
	weights, err := policy.normalized("", g, year)
	if err != nil {
		return nil, err
	}

	vilt := apportion(annual.VILTSessions, weights)
	ilt := apportion(annual.ILTSessions, weights)

	areaShares := make(map[string][]float64, len(annual.CompetencyHours))
	for _, area := range annual.Areas() {
		areaWeights, err := policy.normalized(area, g, year)
		if err != nil {
			return nil, err
		}
		shares := make([]float64, len(areaWeights))
		for i, w := range areaWeights {
			shares[i] = annual.CompetencyHours[area] * w
		}
		areaShares[area] = shares
	}

	periods := domain.PeriodsOf(g, year)
	subs := make([]domain.SubTarget, len(periods))
	for i, p := range periods {
		sub := domain.SubTarget{
			Period:        p,
			VILTSessions:  vilt[i],
			ILTSessions:   ilt[i],
			LearningHours: annual.LearningHours * weights[i],
		}
		if len(areaShares) > 0 {
			sub.CompetencyHours = make(map[string]float64, len(areaShares))
			for area, shares := range areaShares {
				sub.CompetencyHours[area] = shares[i]
			}
		}
		sub.Tasks = periodTasks(sub)
		subs[i] = sub
	}
	return subs, nil
}

// apportion distributes an integer total across weighted periods with the
// largest-remainder method. Remainder units go to the largest fractional
// shares, earliest periods first, so the parts always sum back to total.
func apportion(total int, weights []float64) []int {
	parts := make([]int, len(weights))
	if total <= 0 {
		return parts
	}

	type remainder struct {
		index int
		frac  float64
	}
	remainders := make([]remainder, len(weights))

	assigned := 0
	for i, w := range weights {
		share := float64(total) * w
		base := int(share)
		parts[i] = base
		assigned += base
		remainders[i] = remainder{index: i, frac: share - float64(base)}
	}

	sort.SliceStable(remainders, func(i, j int) bool {
		if remainders[i].frac != remainders[j].frac {
			return remainders[i].frac > remainders[j].frac
		}
		return remainders[i].index < remainders[j].index
	})

	for i := 0; i < total-assigned; i++ {
		parts[remainders[i].index]++
	}
	return parts
}
