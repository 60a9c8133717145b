package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodCount(t *testing.T) {
	assert.Equal(t, 4, PeriodCount(GranularityQuarter, 2026))
	assert.Equal(t, 12, PeriodCount(GranularityMonth, 2026))
	assert.Equal(t, 365, PeriodCount(GranularityDay, 2026))
	assert.Equal(t, 366, PeriodCount(GranularityDay, 2028))
	// 2026 has 53 ISO weeks, 2025 has 52.
	assert.Equal(t, 53, PeriodCount(GranularityWeek, 2026))
	assert.Equal(t, 52, PeriodCount(GranularityWeek, 2025))
}

func TestPeriodsOf_ContiguousAndComplete(t *testing.T) {
	for _, g := range Granularities {
		periods := PeriodsOf(g, 2026)
		require.Len(t, periods, PeriodCount(g, 2026))
		for i, p := range periods {
			assert.Equal(t, i+1, p.Index)
			assert.Equal(t, g, p.Granularity)
			assert.NoError(t, p.Validate())
		}
	}
}

func TestPeriodValidate_OutOfRange(t *testing.T) {
	err := Period{Granularity: GranularityQuarter, Year: 2026, Index: 5}.Validate()
	require.Error(t, err)
	var perr *InvalidPeriodError
	assert.ErrorAs(t, err, &perr)

	assert.Error(t, Period{Granularity: GranularityMonth, Year: 2026, Index: 0}.Validate())
	assert.Error(t, Period{Granularity: Granularity("fortnight"), Year: 2026, Index: 1}.Validate())
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Q2", Period{GranularityQuarter, 2026, 2}.Label())
	assert.Equal(t, "June", Period{GranularityMonth, 2026, 6}.Label())
	assert.Equal(t, "W05", Period{GranularityWeek, 2026, 5}.Label())
	assert.Equal(t, "2026-01-01", Period{GranularityDay, 2026, 1}.Label())
	assert.Equal(t, "2026-12-31", Period{GranularityDay, 2026, 365}.Label())
}
