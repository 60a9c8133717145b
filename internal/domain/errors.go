package domain

import "fmt"

// InvalidTargetError reports a malformed or negative target input.
// Numeric-stage errors are fail-fast: analysis never continues with an
// invalid target.
type InvalidTargetError struct {
	Field  string
	Value  float64
	Detail string
}

func (e *InvalidTargetError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid target %s: %s", e.Field, e.Detail)
	}
	return fmt.Sprintf("invalid target %s: value %g must be >= 0", e.Field, e.Value)
}

// InvalidPeriodError reports a year or period index outside the supported
// calendar.
type InvalidPeriodError struct {
	Year   int
	Detail string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period (year %d): %s", e.Year, e.Detail)
}

// PeriodMismatchError reports a comparison between a sub-target and
// actuals of different periods. This is a programmer error and is never
// coerced or recovered.
type PeriodMismatchError struct {
	Want Period
	Got  Period
}

func (e *PeriodMismatchError) Error() string {
	return fmt.Sprintf("period mismatch: sub-target is %s %d/%s, actuals are %s %d/%s",
		e.Want.Granularity, e.Want.Year, e.Want.Label(),
		e.Got.Granularity, e.Got.Year, e.Got.Label())
}
