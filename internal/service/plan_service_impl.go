package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/creative-h/aopplan/internal/analysis"
	"github.com/creative-h/aopplan/internal/app"
	"github.com/creative-h/aopplan/internal/contract"
	"github.com/creative-h/aopplan/internal/domain"
	"github.com/creative-h/aopplan/internal/repository"
)

type planService struct {
	targets         repository.TargetRepo
	metrics         repository.MetricsRepo
	catalog         repository.CatalogRepo
	runs            repository.RunRepo
	provider        analysis.NarrativeProvider
	narrativeSource string
	bounds          analysis.YearBounds
	observer        UseCaseObserver
}

// NewPlanService wires the full diagnostic pipeline. The narrative
// provider may be nil; the report then carries the unavailable marker.
// narrativeSource labels the configured provider ("llm", "template") on
// persisted runs.
func NewPlanService(
	targets repository.TargetRepo,
	metrics repository.MetricsRepo,
	catalog repository.CatalogRepo,
	runs repository.RunRepo,
	provider analysis.NarrativeProvider,
	narrativeSource string,
	bounds analysis.YearBounds,
	observers ...UseCaseObserver,
) PlanService {
	if narrativeSource == "" {
		narrativeSource = "template"
	}
	return &planService{
		targets:         targets,
		metrics:         metrics,
		catalog:         catalog,
		runs:            runs,
		provider:        provider,
		narrativeSource: narrativeSource,
		bounds:          bounds,
		observer:        useCaseObserverOrNoop(observers),
	}
}

// RunPlan executes the five stages strictly in order. Every stage
// consumes only its predecessors' outputs, so identical stored inputs
// yield identical results.
func (s *planService) RunPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResult, error) {
	started := time.Now()
	result, err := s.runPlan(ctx, req)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan_run",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields: map[string]any{
			"year":   req.Period.Year,
			"period": req.Period.Label(),
		},
	})
	return result, err
}

func (s *planService) runPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResult, error) {
	if err := req.Period.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	target, err := s.loadTarget(ctx, req.Period.Year)
	if err != nil {
		return nil, err
	}

	breakdown, err := analysis.Decompose(*target, req.Period.Year, req.Policy, s.bounds)
	if err != nil {
		return nil, fmt.Errorf("decomposing target: %w", err)
	}

	sub, ok := breakdown.Find(req.Period)
	if !ok {
		return nil, &app.PlanError{
			Code:    app.PlanErrInvalidPeriod,
			Message: fmt.Sprintf("period %s not in %d breakdown", req.Period.Label(), req.Period.Year),
		}
	}

	// Periods with no imported extracts count as zero delivery rather
	// than blocking the run.
	actual := domain.ActualMetrics{Period: req.Period}
	if stored, err := s.metrics.GetPeriod(ctx, req.Period); err == nil {
		actual = *stored
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading metrics: %w", err)
	}

	history, err := s.metrics.ListHistory(ctx, req.Period)
	if err != nil {
		return nil, fmt.Errorf("loading metric history: %w", err)
	}

	gaps, err := analysis.AnalyzeGaps(sub, actual)
	if err != nil {
		return nil, fmt.Errorf("analyzing gaps: %w", err)
	}

	risks := analysis.AssessRisks(gaps, actual, history, req.Thresholds)

	catalog, err := s.catalog.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading action catalog: %w", err)
	}
	trends := analysis.TrendsFromHistory(history)
	opportunities := analysis.FindOpportunities(gaps, trends, catalog, req.Thresholds.ClosureFloor)

	report := analysis.BuildReport(ctx, now, gaps, risks, opportunities, s.provider, req.Report)

	result := &contract.PlanResult{
		GeneratedAt:      now,
		Period:           req.Period,
		TargetBreakdown:  *breakdown,
		GapAnalysis:      gaps,
		RiskAssessment:   risks,
		Opportunities:    opportunities,
		DiagnosticReport: report,
	}

	if req.Persist {
		if err := s.persistRun(ctx, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *planService) Breakdown(ctx context.Context, req contract.BreakdownRequest) (*domain.TargetBreakdown, error) {
	target, err := s.loadTarget(ctx, req.Year)
	if err != nil {
		return nil, err
	}
	breakdown, err := analysis.Decompose(*target, req.Year, req.Policy, s.bounds)
	if err != nil {
		return nil, fmt.Errorf("decomposing target: %w", err)
	}
	return breakdown, nil
}

func (s *planService) loadTarget(ctx context.Context, year int) (*domain.AnnualTarget, error) {
	target, err := s.targets.GetByYear(ctx, year)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &app.PlanError{
				Code:    app.PlanErrNoTarget,
				Message: fmt.Sprintf("no annual target set for %d", year),
			}
		}
		return nil, fmt.Errorf("loading annual target: %w", err)
	}
	return target, nil
}

func (s *planService) persistRun(ctx context.Context, result *contract.PlanResult) error {
	narrativeSource := s.narrativeSource
	if result.DiagnosticReport.Narrative == domain.NarrativeUnavailable {
		narrativeSource = "unavailable"
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding run result: %w", err)
	}

	run := &repository.RunRecord{
		Year:            result.Period.Year,
		CreatedAt:       result.GeneratedAt,
		NarrativeSource: narrativeSource,
		ResultJSON:      payload,
	}
	if err := s.runs.Create(ctx, run); err != nil {
		return fmt.Errorf("persisting run: %w", err)
	}
	result.RunID = run.ID
	return nil
}
