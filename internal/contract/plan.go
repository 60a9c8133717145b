package contract

import (
	"github.com/creative-h/aopplan/internal/app"
	"github.com/creative-h/aopplan/internal/domain"
)

type PlanRequest = app.PlanRequest

func NewPlanRequest(period domain.Period) PlanRequest {
	return app.NewPlanRequest(period)
}

type PlanResult = app.PlanResult

type BreakdownRequest = app.BreakdownRequest

func NewBreakdownRequest(year int) BreakdownRequest {
	return app.NewBreakdownRequest(year)
}
