package domain

import (
	"fmt"
	"time"
)

// Period is one slot of a yearly calendar at a given granularity.
// Index is 1-based: quarter 1-4, month 1-12, ISO week number, or day of year.
type Period struct {
	Granularity Granularity `json:"granularity"`
	Year        int         `json:"year"`
	Index       int         `json:"index"`
}

// PeriodCount returns how many periods of granularity g exist in year.
func PeriodCount(g Granularity, year int) int {
	switch g {
	case GranularityQuarter:
		return 4
	case GranularityMonth:
		return 12
	case GranularityWeek:
		return isoWeekCount(year)
	case GranularityDay:
		return daysInYear(year)
	default:
		return 0
	}
}

// PeriodsOf returns the ordered, contiguous set of periods covering year
// exactly once at granularity g.
func PeriodsOf(g Granularity, year int) []Period {
	n := PeriodCount(g, year)
	periods := make([]Period, n)
	for i := 0; i < n; i++ {
		periods[i] = Period{Granularity: g, Year: year, Index: i + 1}
	}
	return periods
}

// Validate checks the index against the calendar for the period's year.
func (p Period) Validate() error {
	n := PeriodCount(p.Granularity, p.Year)
	if n == 0 {
		return &InvalidPeriodError{Year: p.Year, Detail: fmt.Sprintf("unknown granularity %q", p.Granularity)}
	}
	if p.Index < 1 || p.Index > n {
		return &InvalidPeriodError{
			Year:   p.Year,
			Detail: fmt.Sprintf("%s index %d out of range 1-%d", p.Granularity, p.Index, n),
		}
	}
	return nil
}

// Label renders a human-readable name: Q2, June, W05, or 2026-03-14.
func (p Period) Label() string {
	switch p.Granularity {
	case GranularityQuarter:
		return fmt.Sprintf("Q%d", p.Index)
	case GranularityMonth:
		return time.Month(p.Index).String()
	case GranularityWeek:
		return fmt.Sprintf("W%02d", p.Index)
	case GranularityDay:
		start := time.Date(p.Year, 1, 1, 0, 0, 0, 0, time.UTC)
		return start.AddDate(0, 0, p.Index-1).Format("2006-01-02")
	default:
		return fmt.Sprintf("%s-%d", p.Granularity, p.Index)
	}
}

// isoWeekCount returns 52 or 53. December 28 always falls in the last
// ISO week of its year.
func isoWeekCount(year int) int {
	_, week := time.Date(year, 12, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

func daysInYear(year int) int {
	if time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC).YearDay() == 366 {
		return 366
	}
	return 365
}
