// Package contract re-exports the application-layer request and response
// types that form the tool's public surface. Outer layers (CLI, JSON
// output) import this package instead of reaching into app directly.
package contract

import "github.com/creative-h/aopplan/internal/app"

type PlanErrorCode = app.PlanErrorCode

const (
	PlanErrNoTarget      PlanErrorCode = app.PlanErrNoTarget
	PlanErrNoMetrics     PlanErrorCode = app.PlanErrNoMetrics
	PlanErrNoCatalog     PlanErrorCode = app.PlanErrNoCatalog
	PlanErrInvalidPeriod PlanErrorCode = app.PlanErrInvalidPeriod
	PlanErrNoRuns        PlanErrorCode = app.PlanErrNoRuns
)

type PlanError = app.PlanError

type ImportStats = app.ImportStats

type CatalogStats = app.CatalogStats
