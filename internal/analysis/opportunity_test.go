package analysis

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creative-h/aopplan/internal/domain"
)

func testCatalog() domain.ActionCatalog {
	return domain.ActionCatalog{
		Actions: map[string]domain.ActionEffect{
			"Python Bootcamp": {
				LearningHours:   120,
				VILTSessions:    3,
				CompetencyHours: map[string]float64{"technical": 120},
			},
			"Leadership Workshop": {
				LearningHours:   40,
				ILTSessions:     2,
				CompetencyHours: map[string]float64{"leadership": 40},
			},
			"Lunch and Learn": {
				LearningHours: 10,
				VILTSessions:  1,
			},
		},
	}
}

func TestFindOpportunities_MinimalCountClosesGap(t *testing.T) {
	gaps := []domain.GapRecord{{
		Period: q1Period(), Field: domain.CompetencyField("technical"),
		Target: 1500, Actual: 1100, Gap: 400, Indicator: 400,
	}}

	opps := FindOpportunities(gaps, TrendData{}, testCatalog(), 0.85)
	require.Len(t, opps, 1)

	opp := opps[0]
	require.Len(t, opp.Actions, 1)
	assert.Equal(t, "Python Bootcamp", opp.Actions[0].Action)
	// 400 / 120 per instance -> 4 instances.
	assert.Equal(t, 4, opp.Actions[0].Count)
	assert.InDelta(t, 480, opp.ExpectedEffect, 1e-9)
	assert.GreaterOrEqual(t, opp.ExpectedEffect, opp.GapMagnitude)
}

func TestFindOpportunities_SkipsMetTargets(t *testing.T) {
	gaps := []domain.GapRecord{{
		Period: q1Period(), Field: domain.FieldLearningHours,
		Target: 2500, Actual: 2600, Gap: -100, Indicator: 0,
	}}
	assert.Empty(t, FindOpportunities(gaps, TrendData{}, testCatalog(), 0.85))
}

func TestFindOpportunities_OmitsNonConvergentGaps(t *testing.T) {
	// No catalog action contributes soft_skills hours.
	gaps := []domain.GapRecord{{
		Period: q1Period(), Field: domain.CompetencyField("soft_skills"),
		Target: 500, Actual: 100, Gap: 400, Indicator: 400,
	}}
	assert.Empty(t, FindOpportunities(gaps, TrendData{}, testCatalog(), 0.85))
}

func TestFindOpportunities_PairReducesOvershoot(t *testing.T) {
	// Gap of 130 hours: 2x Bootcamp overshoots by 110; 1x Bootcamp plus
	// 1x Lunch and Learn overshoots by 0.
	gaps := []domain.GapRecord{{
		Period: q1Period(), Field: domain.FieldLearningHours,
		Target: 2500, Actual: 2370, Gap: 130, Indicator: 130,
	}}

	opps := FindOpportunities(gaps, TrendData{}, testCatalog(), 0.85)
	require.Len(t, opps, 1)
	require.Len(t, opps[0].Actions, 2)
	assert.Equal(t, "Python Bootcamp", opps[0].Actions[0].Action)
	assert.Equal(t, 1, opps[0].Actions[0].Count)
	assert.Equal(t, "Lunch and Learn", opps[0].Actions[1].Action)
	assert.Equal(t, 1, opps[0].Actions[1].Count)
	assert.InDelta(t, 130, opps[0].ExpectedEffect, 1e-9)
}

func TestFindOpportunities_EfficiencyTieBrokenLexically(t *testing.T) {
	catalog := domain.ActionCatalog{
		Actions: map[string]domain.ActionEffect{
			"Beta Series":  {LearningHours: 100},
			"Alpha Series": {LearningHours: 100},
		},
	}
	gaps := []domain.GapRecord{{
		Period: q1Period(), Field: domain.FieldLearningHours,
		Target: 500, Actual: 200, Gap: 300, Indicator: 300,
	}}

	opps := FindOpportunities(gaps, TrendData{}, catalog, 0.85)
	require.Len(t, opps, 1)
	require.Len(t, opps[0].Actions, 1)
	assert.Equal(t, "Alpha Series", opps[0].Actions[0].Action)
	assert.Equal(t, 3, opps[0].Actions[0].Count)
}

func TestFindOpportunities_LowClosureTrendPadsEffect(t *testing.T) {
	gaps := []domain.GapRecord{{
		Period: q1Period(), Field: domain.FieldLearningHours,
		Target: 2500, Actual: 2260, Gap: 240, Indicator: 240,
	}}

	// Healthy closure: 2 bootcamps cover 240.
	opps := FindOpportunities(gaps, TrendData{AvgClosureRatio: 0.90}, testCatalog(), 0.85)
	require.Len(t, opps, 1)
	assert.Equal(t, 2, opps[0].Actions[0].Count)

	// Closure running at 50%: required effect doubles to 480.
	opps = FindOpportunities(gaps, TrendData{AvgClosureRatio: 0.50}, testCatalog(), 0.85)
	require.Len(t, opps, 1)
	assert.Equal(t, 4, opps[0].Actions[0].Count)
}

func TestFindOpportunities_ReportsSpilloverFields(t *testing.T) {
	gaps := []domain.GapRecord{
		{
			Period: q1Period(), Field: domain.CompetencyField("technical"),
			Target: 1500, Actual: 1100, Gap: 400, Indicator: 400,
		},
		{
			Period: q1Period(), Field: domain.FieldVILTSessions,
			Target: 125, Actual: 115, Gap: 10, Indicator: 10,
		},
	}

	opps := FindOpportunities(gaps, TrendData{}, testCatalog(), 0.85)
	require.Len(t, opps, 2)

	// 4 bootcamps contribute 12 VILT sessions, covering the VILT gap too.
	technical := opps[0]
	require.Equal(t, domain.CompetencyField("technical"), technical.Field)
	assert.Equal(t, []domain.TargetField{domain.FieldVILTSessions}, technical.AlsoCloses)
}

// TestFindOpportunities_Property_Soundness checks that any returned plan,
// applied through its effect vector, covers the originating gap, with at
// most two distinct actions.
func TestFindOpportunities_Property_Soundness(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	catalog := testCatalog()

	for trial := 0; trial < 200; trial++ {
		target := float64(rng.Intn(3000) + 100)
		actual := float64(rng.Intn(3000))
		gap := target - actual
		indicator := 0.0
		if gap > 0 {
			indicator = gap
		}
		field := []domain.TargetField{
			domain.FieldVILTSessions,
			domain.FieldILTSessions,
			domain.FieldLearningHours,
			domain.CompetencyField("technical"),
		}[rng.Intn(4)]

		gaps := []domain.GapRecord{{
			Period: q1Period(), Field: field,
			Target: target, Actual: actual, Gap: gap, Indicator: indicator,
		}}

		for _, opp := range FindOpportunities(gaps, TrendData{}, catalog, 0.85) {
			require.LessOrEqual(t, len(opp.Actions), 2, "trial %d", trial)
			var cumulative float64
			for _, ac := range opp.Actions {
				require.Greater(t, ac.Count, 0, "trial %d", trial)
				cumulative += float64(ac.Count) * catalog.Actions[ac.Action].EffectOn(opp.Field)
			}
			assert.GreaterOrEqual(t, cumulative, opp.GapMagnitude,
				"trial %d: cumulative effect must cover the gap", trial)
		}
	}
}
