package app

type PlanErrorCode string

const (
	PlanErrNoTarget      PlanErrorCode = "NO_TARGET"
	PlanErrNoMetrics     PlanErrorCode = "NO_METRICS"
	PlanErrNoCatalog     PlanErrorCode = "NO_CATALOG"
	PlanErrInvalidPeriod PlanErrorCode = "INVALID_PERIOD"
	PlanErrNoRuns        PlanErrorCode = "NO_RUNS"
)

// PlanError carries a stable machine-readable code alongside the message
// so CLI and JSON consumers can branch without string matching.
type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// ImportStats summarizes an extract import.
type ImportStats struct {
	RowsImported int
	Sources      []string
	Warnings     []string
}

// CatalogStats summarizes a catalog import.
type CatalogStats struct {
	ActionsImported int
}
