package contract

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creative-h/aopplan/internal/domain"
)

// The JSON field names of PlanResult are consumed by downstream tooling
// and must stay fixed across releases.
func TestPlanResult_StableJSONFieldNames(t *testing.T) {
	result := PlanResult{
		RunID:       "r1",
		GeneratedAt: time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
		Period:      domain.Period{Granularity: domain.GranularityQuarter, Year: 2026, Index: 1},
		GapAnalysis: []domain.GapRecord{{
			Period: domain.Period{Granularity: domain.GranularityQuarter, Year: 2026, Index: 1},
			Field:  domain.FieldLearningHours,
			Target: 2500, Actual: 2000, Gap: 500, Indicator: 500,
		}},
		DiagnosticReport: domain.DiagnosticReport{Narrative: domain.NarrativeUnavailable},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"run_id",
		"generated_at",
		"period",
		"target_breakdown",
		"gap_analysis",
		"risk_assessment",
		"opportunities",
		"diagnostic_report",
	} {
		assert.Contains(t, decoded, key)
	}
}

func TestNewPlanRequest_Defaults(t *testing.T) {
	period := domain.Period{Granularity: domain.GranularityQuarter, Year: 2026, Index: 2}
	req := NewPlanRequest(period)

	assert.Equal(t, period, req.Period)
	assert.True(t, req.Persist)
	assert.InDelta(t, 0.05, req.Thresholds.Ignore, 1e-9)
	assert.InDelta(t, 1.10, req.Report.StrengthMargin, 1e-9)
}
