package narrative

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creative-h/aopplan/internal/analysis"
	"github.com/creative-h/aopplan/internal/domain"
)

func q1() domain.Period {
	return domain.Period{Granularity: domain.GranularityQuarter, Year: 2026, Index: 1}
}

func sampleFacts() analysis.NarrativeFacts {
	gap := domain.GapRecord{
		Period: q1(), Field: domain.FieldLearningHours,
		Target: 2500, Actual: 2000, Gap: 500, Indicator: 500,
	}
	return analysis.NarrativeFacts{
		Weaknesses: []domain.GapRecord{gap},
		Strengths: []domain.GapRecord{{
			Period: q1(), Field: domain.FieldILTSessions,
			Target: 50, Actual: 60, Gap: -10, Indicator: 0,
		}},
		Risks: []domain.RiskRecord{{
			Gap: gap, Severity: domain.SeverityMedium, GapFraction: 0.20,
		}},
		Opportunities: []domain.Opportunity{{
			Period: q1(), Field: domain.FieldLearningHours,
			Actions:        []domain.ActionCount{{Action: "Python Bootcamp", Count: 5}},
			ExpectedEffect: 600, GapMagnitude: 500,
		}},
	}
}

func TestTemplateProvider_CoversAllSections(t *testing.T) {
	text, err := TemplateProvider{}.Narrate(context.Background(), sampleFacts())
	require.NoError(t, err)

	assert.Contains(t, text, "1 target(s) are behind plan and 1 are ahead.")
	assert.Contains(t, text, "Q1 learning hours is 20% behind target (medium severity)")
	assert.Contains(t, text, "run 5x Python Bootcamp")
	assert.Contains(t, text, "Strongest area: Q1 ILT sessions at 60 against a target of 50")
}

func TestTemplateProvider_Deterministic(t *testing.T) {
	first, err := TemplateProvider{}.Narrate(context.Background(), sampleFacts())
	require.NoError(t, err)
	second, err := TemplateProvider{}.Narrate(context.Background(), sampleFacts())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTemplateProvider_AllOnPlan(t *testing.T) {
	text, err := TemplateProvider{}.Narrate(context.Background(), analysis.NarrativeFacts{})
	require.NoError(t, err)
	assert.Equal(t, "All tracked targets are on plan with no notable over-delivery.", text)
}

type stubNarrator struct {
	text string
	err  error
}

func (s stubNarrator) Narrate(context.Context, analysis.NarrativeFacts) (string, error) {
	return s.text, s.err
}

func TestChain_PrefersPrimary(t *testing.T) {
	c := Chain{
		Primary:  stubNarrator{text: "from model"},
		Fallback: TemplateProvider{},
	}
	text, err := c.Narrate(context.Background(), sampleFacts())
	require.NoError(t, err)
	assert.Equal(t, "from model", text)
}

func TestChain_FallsBackOnError(t *testing.T) {
	c := Chain{
		Primary:  stubNarrator{err: errors.New("model offline")},
		Fallback: TemplateProvider{},
	}
	text, err := c.Narrate(context.Background(), sampleFacts())
	require.NoError(t, err)
	assert.Contains(t, text, "behind plan")
}
