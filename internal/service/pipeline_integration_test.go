package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creative-h/aopplan/internal/analysis"
	"github.com/creative-h/aopplan/internal/app"
	"github.com/creative-h/aopplan/internal/contract"
	"github.com/creative-h/aopplan/internal/db"
	"github.com/creative-h/aopplan/internal/domain"
	"github.com/creative-h/aopplan/internal/narrative"
	"github.com/creative-h/aopplan/internal/repository"
	"github.com/creative-h/aopplan/internal/testutil"
)

type fixedNarrative struct {
	text string
	err  error
}

func (f fixedNarrative) Narrate(context.Context, analysis.NarrativeFacts) (string, error) {
	return f.text, f.err
}

type testEnv struct {
	targets repository.TargetRepo
	metrics repository.MetricsRepo
	catalog repository.CatalogRepo
	runs    repository.RunRepo
	uow     db.UnitOfWork
	plans   PlanService
	runsSvc RunService
}

func newTestEnv(t *testing.T, provider analysis.NarrativeProvider) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	targets := repository.NewSQLiteTargetRepo(database)
	metrics := repository.NewSQLiteMetricsRepo(database)
	catalog := repository.NewSQLiteCatalogRepo(database)
	runs := repository.NewSQLiteRunRepo(database)

	bounds := analysis.YearBounds{Min: 2020, Max: 2030}
	return &testEnv{
		targets: targets,
		metrics: metrics,
		catalog: catalog,
		runs:    runs,
		uow:     testutil.NewTestUoW(database),
		plans:   NewPlanService(targets, metrics, catalog, runs, provider, "llm", bounds),
		runsSvc: NewRunService(runs),
	}
}

func (e *testEnv) seedYear(t *testing.T, ctx context.Context) {
	t.Helper()

	require.NoError(t, e.targets.Upsert(ctx, 2026, testutil.NewAnnualTarget()))

	q1 := domain.Period{Granularity: domain.GranularityQuarter, Year: 2026, Index: 1}
	q2 := domain.Period{Granularity: domain.GranularityQuarter, Year: 2026, Index: 2}

	require.NoError(t, e.metrics.Upsert(ctx, &repository.MetricRow{
		Period:        q1,
		Source:        domain.SourceLearningPlan,
		VILTScheduled: 95,
		VILTCompleted: 92,
		ILTScheduled:  50,
		ILTCompleted:  49,
		LearningHours: 2900,
		CompetencyHours: map[string]float64{
			"leadership": 190,
			"technical":  600,
		},
		Registrations: 85,
		Capacity:      100,
		ClosureRatio:  0.92,
	}))
	require.NoError(t, e.metrics.Upsert(ctx, &repository.MetricRow{
		Period:        q2,
		Source:        domain.SourceLearningPlan,
		VILTScheduled: 80,
		VILTCompleted: 75,
		ILTScheduled:  50,
		ILTCompleted:  48,
		LearningHours: 2400,
		CompetencyHours: map[string]float64{
			"leadership": 150,
			"technical":  600,
		},
		Registrations: 70,
		Capacity:      100,
		ClosureRatio:  0.90,
	}))

	for name, effect := range testutil.NewActionCatalog().Actions {
		require.NoError(t, e.catalog.Upsert(ctx, name, effect))
	}
}

func q2Request(now time.Time) contract.PlanRequest {
	req := app.NewPlanRequest(domain.Period{
		Granularity: domain.GranularityQuarter,
		Year:        2026,
		Index:       2,
	})
	req.Now = &now
	return req
}

func TestRunPlanFullPipeline(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, fixedNarrative{text: "Q2 is running behind on virtual delivery."})
	env.seedYear(t, ctx)

	now := time.Date(2026, 7, 3, 8, 0, 0, 0, time.UTC)
	result, err := env.plans.RunPlan(ctx, q2Request(now))
	require.NoError(t, err)

	assert.Equal(t, now, result.GeneratedAt)
	assert.NotEmpty(t, result.RunID)

	// Uniform quarterly decomposition of the annual numbers.
	sub, ok := result.TargetBreakdown.Find(result.Period)
	require.True(t, ok)
	assert.Equal(t, 100, sub.VILTSessions)
	assert.Equal(t, 50, sub.ILTSessions)
	assert.InDelta(t, 3000, sub.LearningHours, 1e-9)
	assert.InDelta(t, 200, sub.CompetencyHours["leadership"], 1e-9)
	assert.InDelta(t, 600, sub.CompetencyHours["technical"], 1e-9)

	// One gap record per comparable field, in fixed order.
	require.Len(t, result.GapAnalysis, 5)
	fields := make([]domain.TargetField, 0, 5)
	for _, gap := range result.GapAnalysis {
		fields = append(fields, gap.Field)
	}
	assert.Equal(t, []domain.TargetField{
		domain.FieldVILTSessions,
		domain.FieldILTSessions,
		domain.FieldLearningHours,
		domain.CompetencyField("leadership"),
		domain.CompetencyField("technical"),
	}, fields)

	vilt := result.GapAnalysis[0]
	assert.InDelta(t, 20, vilt.Gap, 1e-9)
	assert.InDelta(t, 20, vilt.Indicator, 1e-9)
	assert.Zero(t, result.GapAnalysis[1].Indicator)
	assert.InDelta(t, 600, result.GapAnalysis[2].Indicator, 1e-9)
	assert.InDelta(t, 50, result.GapAnalysis[3].Indicator, 1e-9)
	assert.Zero(t, result.GapAnalysis[4].Indicator)

	// The three shortfalls all land in the medium band, no escalation
	// with a single prior period.
	require.Len(t, result.RiskAssessment, 3)
	for _, risk := range result.RiskAssessment {
		assert.Equal(t, domain.SeverityMedium, risk.Severity)
		assert.False(t, risk.Escalated)
	}
	assert.Equal(t, []domain.FactorTag{
		domain.FactorSchedulingShortfall,
		domain.FactorRegistrationShortfall,
	}, result.RiskAssessment[0].Factors)

	// Opportunities follow gap order and close each shortfall.
	require.Len(t, result.Opportunities, 3)

	viltOpp := result.Opportunities[0]
	assert.Equal(t, domain.FieldVILTSessions, viltOpp.Field)
	require.Len(t, viltOpp.Actions, 1)
	assert.Equal(t, domain.ActionCount{Action: "Virtual Series", Count: 10}, viltOpp.Actions[0])
	assert.InDelta(t, 20, viltOpp.ExpectedEffect, 1e-9)

	hoursOpp := result.Opportunities[1]
	assert.Equal(t, domain.FieldLearningHours, hoursOpp.Field)
	require.Len(t, hoursOpp.Actions, 1)
	assert.Equal(t, domain.ActionCount{Action: "Virtual Series", Count: 15}, hoursOpp.Actions[0])
	assert.Equal(t, []domain.TargetField{domain.FieldVILTSessions}, hoursOpp.AlsoCloses)

	leadOpp := result.Opportunities[2]
	assert.Equal(t, domain.CompetencyField("leadership"), leadOpp.Field)
	require.Len(t, leadOpp.Actions, 1)
	assert.Equal(t, domain.ActionCount{Action: "Leadership Workshop", Count: 7}, leadOpp.Actions[0])
	assert.InDelta(t, 56, leadOpp.ExpectedEffect, 1e-9)

	// Report: nothing cleared the 110% strength margin, three weaknesses,
	// and the provider's narrative came through.
	report := result.DiagnosticReport
	assert.Empty(t, report.Strengths)
	assert.Len(t, report.Weaknesses, 3)
	assert.Equal(t, "Q2 is running behind on virtual delivery.", report.Narrative)
}

func TestRunPlanDeterministic(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, fixedNarrative{text: "steady."})
	env.seedYear(t, ctx)

	now := time.Date(2026, 7, 3, 8, 0, 0, 0, time.UTC)
	req := q2Request(now)
	req.Persist = false

	first, err := env.plans.RunPlan(ctx, req)
	require.NoError(t, err)
	second, err := env.plans.RunPlan(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunPlanPersistsRun(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, fixedNarrative{text: "persisted narrative."})
	env.seedYear(t, ctx)

	now := time.Date(2026, 7, 3, 8, 0, 0, 0, time.UTC)
	result, err := env.plans.RunPlan(ctx, q2Request(now))
	require.NoError(t, err)
	require.NotEmpty(t, result.RunID)

	run, err := env.runsSvc.LatestRun(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, result.RunID, run.ID)
	assert.Equal(t, "llm", run.NarrativeSource)

	var stored contract.PlanResult
	require.NoError(t, json.Unmarshal(run.ResultJSON, &stored))
	assert.Equal(t, result.Period, stored.Period)
	assert.Equal(t, result.GapAnalysis, stored.GapAnalysis)
	assert.Equal(t, result.DiagnosticReport.Narrative, stored.DiagnosticReport.Narrative)
}

func TestRunPlanNarrativeFailureStillPersists(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, fixedNarrative{err: errors.New("model offline")})
	env.seedYear(t, ctx)

	now := time.Date(2026, 7, 3, 8, 0, 0, 0, time.UTC)
	result, err := env.plans.RunPlan(ctx, q2Request(now))
	require.NoError(t, err)
	assert.Equal(t, domain.NarrativeUnavailable, result.DiagnosticReport.Narrative)
	assert.Len(t, result.RiskAssessment, 3)

	run, err := env.runsSvc.LatestRun(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, "unavailable", run.NarrativeSource)
}

func TestRunPlanTemplateFallbackChain(t *testing.T) {
	ctx := context.Background()
	provider := narrative.Chain{
		Primary:  fixedNarrative{err: errors.New("model offline")},
		Fallback: narrative.TemplateProvider{},
	}
	env := newTestEnv(t, provider)
	env.seedYear(t, ctx)

	now := time.Date(2026, 7, 3, 8, 0, 0, 0, time.UTC)
	result, err := env.plans.RunPlan(ctx, q2Request(now))
	require.NoError(t, err)
	assert.NotEqual(t, domain.NarrativeUnavailable, result.DiagnosticReport.Narrative)
	assert.NotEmpty(t, result.DiagnosticReport.Narrative)
}

func TestRunPlanMissingMetricsCountAsZero(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, fixedNarrative{text: "nothing delivered."})
	env.seedYear(t, ctx)

	now := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	req := app.NewPlanRequest(domain.Period{
		Granularity: domain.GranularityQuarter,
		Year:        2026,
		Index:       3,
	})
	req.Now = &now

	result, err := env.plans.RunPlan(ctx, req)
	require.NoError(t, err)

	// Every field shows its full prorated target as the gap.
	require.Len(t, result.GapAnalysis, 5)
	for _, gap := range result.GapAnalysis {
		assert.Zero(t, gap.Actual)
		assert.InDelta(t, gap.Target, gap.Indicator, 1e-9)
	}
}

func TestRunPlanNoTarget(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, fixedNarrative{})

	_, err := env.plans.RunPlan(ctx, q2Request(time.Now().UTC()))
	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrNoTarget, planErr.Code)
}

func TestRunPlanInvalidPeriod(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, fixedNarrative{})
	env.seedYear(t, ctx)

	req := app.NewPlanRequest(domain.Period{
		Granularity: domain.GranularityQuarter,
		Year:        2026,
		Index:       5,
	})
	_, err := env.plans.RunPlan(ctx, req)
	var periodErr *domain.InvalidPeriodError
	require.ErrorAs(t, err, &periodErr)
}

func TestBreakdownWithoutMetrics(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, fixedNarrative{})
	env.seedYear(t, ctx)

	breakdown, err := env.plans.Breakdown(ctx, app.NewBreakdownRequest(2026))
	require.NoError(t, err)
	assert.Len(t, breakdown.Quarterly, 4)
	assert.Len(t, breakdown.Monthly, 12)

	var viltTotal int
	for _, sub := range breakdown.Monthly {
		viltTotal += sub.VILTSessions
	}
	assert.Equal(t, 400, viltTotal)
}

func TestLatestRunNoRuns(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, fixedNarrative{})

	_, err := env.runsSvc.LatestRun(ctx, 2026)
	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrNoRuns, planErr.Code)
}
