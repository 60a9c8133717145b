package analysis

import (
	"math"
	"sort"

	"github.com/creative-h/aopplan/internal/domain"
)

// TrendData summarizes recent delivery behavior for the opportunity
// finder. When the closure ratio runs under its floor, proposed effects
// are padded so the gap still closes after expected attrition.
type TrendData struct {
	AvgRegistrationRate float64 `json:"avg_registration_rate"`
	AvgClosureRatio     float64 `json:"avg_closure_ratio"`
}

// TrendsFromHistory derives TrendData from prior periods' actuals.
func TrendsFromHistory(history []domain.ActualMetrics) TrendData {
	if len(history) == 0 {
		return TrendData{}
	}
	var reg, closure float64
	for i := range history {
		reg += history[i].RegistrationRate()
		closure += history[i].ClosureRatio
	}
	n := float64(len(history))
	return TrendData{AvgRegistrationRate: reg / n, AvgClosureRatio: closure / n}
}

// actionPlan is a candidate combination of at most two distinct actions.
type actionPlan struct {
	actions    []domain.ActionCount
	effect     float64
	totalCount int
	efficiency float64
	key        string
}

// FindOpportunities proposes, for every weakness-level gap, the minimal
// catalog action counts whose cumulative effect closes the gap. A single
// action with the best gap-to-hours efficiency is preferred; a second
// action is added only when it strictly reduces overshoot. Gaps no
// catalog action can affect are omitted rather than given non-convergent
// counts.
func FindOpportunities(gaps []domain.GapRecord, trends TrendData, catalog domain.ActionCatalog, closureFloor float64) []domain.Opportunity {
	required := func(gap float64) float64 {
		if trends.AvgClosureRatio > 0 && trends.AvgClosureRatio < closureFloor {
			return gap / trends.AvgClosureRatio
		}
		return gap
	}

	var opportunities []domain.Opportunity
	for _, gap := range gaps {
		if !gap.HasGap() {
			continue
		}

		plan, ok := bestPlan(required(gap.Indicator), gap.Field, catalog)
		if !ok {
			continue
		}

		opportunities = append(opportunities, domain.Opportunity{
			Period:         gap.Period,
			Field:          gap.Field,
			Actions:        plan.actions,
			ExpectedEffect: plan.effect,
			GapMagnitude:   gap.Indicator,
			AlsoCloses:     alsoClosed(plan, gap, gaps, catalog),
		})
	}
	return opportunities
}

// bestPlan picks the cheapest closing combination for one field.
func bestPlan(required float64, field domain.TargetField, catalog domain.ActionCatalog) (actionPlan, bool) {
	names := catalog.Names()

	var singles []actionPlan
	for _, name := range names {
		effect := catalog.Actions[name].EffectOn(field)
		if effect <= 0 {
			continue
		}
		count := int(math.Ceil(required / effect))
		if count < 1 {
			count = 1
		}
		singles = append(singles, actionPlan{
			actions:    []domain.ActionCount{{Action: name, Count: count}},
			effect:     float64(count) * effect,
			totalCount: count,
			efficiency: efficiencyOf(catalog.Actions[name], field),
			key:        name,
		})
	}
	if len(singles) == 0 {
		return actionPlan{}, false
	}

	sort.SliceStable(singles, func(i, j int) bool {
		if singles[i].efficiency != singles[j].efficiency {
			return singles[i].efficiency > singles[j].efficiency
		}
		if singles[i].totalCount != singles[j].totalCount {
			return singles[i].totalCount < singles[j].totalCount
		}
		return singles[i].key < singles[j].key
	})
	best := singles[0]

	// A second distinct action is worth suggesting only when covering the
	// remainder with it strictly reduces overshoot.
	if pair, ok := bestPair(required, field, catalog, names); ok {
		if pair.effect-required < best.effect-required {
			return pair, true
		}
	}
	return best, true
}

func bestPair(required float64, field domain.TargetField, catalog domain.ActionCatalog, names []string) (actionPlan, bool) {
	var pairs []actionPlan
	for _, bulk := range names {
		bulkEffect := catalog.Actions[bulk].EffectOn(field)
		if bulkEffect <= 0 {
			continue
		}
		bulkCount := int(math.Floor(required / bulkEffect))
		if bulkCount < 1 {
			continue
		}
		remainder := required - float64(bulkCount)*bulkEffect
		if remainder <= 0 {
			continue
		}
		for _, filler := range names {
			if filler == bulk {
				continue
			}
			fillEffect := catalog.Actions[filler].EffectOn(field)
			if fillEffect <= 0 {
				continue
			}
			fillCount := int(math.Ceil(remainder / fillEffect))
			pairs = append(pairs, actionPlan{
				actions: []domain.ActionCount{
					{Action: bulk, Count: bulkCount},
					{Action: filler, Count: fillCount},
				},
				effect:     float64(bulkCount)*bulkEffect + float64(fillCount)*fillEffect,
				totalCount: bulkCount + fillCount,
				key:        bulk + "\x00" + filler,
			})
		}
	}
	if len(pairs) == 0 {
		return actionPlan{}, false
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].effect != pairs[j].effect {
			return pairs[i].effect < pairs[j].effect
		}
		if pairs[i].totalCount != pairs[j].totalCount {
			return pairs[i].totalCount < pairs[j].totalCount
		}
		return pairs[i].key < pairs[j].key
	})
	return pairs[0], true
}

// efficiencyOf is the gap-to-hours ratio: field effect per learning hour
// the action consumes. Actions with no hours footprint count the footprint
// as one instance-hour.
func efficiencyOf(effect domain.ActionEffect, field domain.TargetField) float64 {
	hours := effect.LearningHours
	if hours <= 0 {
		hours = 1
	}
	return effect.EffectOn(field) / hours
}

// alsoClosed lists other same-period weakness fields the plan's spillover
// effect would fully cover, in gap-record order.
func alsoClosed(plan actionPlan, origin domain.GapRecord, gaps []domain.GapRecord, catalog domain.ActionCatalog) []domain.TargetField {
	var fields []domain.TargetField
	for _, other := range gaps {
		if other.Period != origin.Period || other.Field == origin.Field || !other.HasGap() {
			continue
		}
		var spill float64
		for _, ac := range plan.actions {
			spill += float64(ac.Count) * catalog.Actions[ac.Action].EffectOn(other.Field)
		}
		if spill >= other.Indicator {
			fields = append(fields, other.Field)
		}
	}
	return fields
}
