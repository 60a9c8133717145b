package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/creative-h/aopplan/internal/analysis"
	"github.com/creative-h/aopplan/internal/domain"
	"github.com/creative-h/aopplan/internal/importer"
)

// weightingFlags are the shared proration flags on breakdown and plan.
type weightingFlags struct {
	seasonal    bool
	weightsPath string
}

func (f *weightingFlags) resolve() (analysis.WeightingPolicy, error) {
	if f.seasonal && f.weightsPath != "" {
		return analysis.WeightingPolicy{}, errors.New("--seasonal and --weights are mutually exclusive")
	}
	if f.seasonal {
		return analysis.SeasonalPreset(), nil
	}
	if f.weightsPath != "" {
		file, err := importer.LoadWeightingFile(f.weightsPath)
		if err != nil {
			return analysis.WeightingPolicy{}, fmt.Errorf("loading weighting file: %w", err)
		}
		if errs := importer.ValidateWeightingFile(file); len(errs) > 0 {
			return analysis.WeightingPolicy{}, fmt.Errorf("invalid weighting file: %w", errors.Join(errs...))
		}
		return importer.WeightingPolicy(file), nil
	}
	return analysis.UniformWeighting(), nil
}

func parsePeriod(year int, granularity string, index int) (domain.Period, error) {
	if !domain.ValidGranularities[granularity] {
		return domain.Period{}, fmt.Errorf("unknown granularity %q (quarter, month, week, day)", granularity)
	}
	period := domain.Period{
		Granularity: domain.Granularity(granularity),
		Year:        year,
		Index:       index,
	}
	if err := period.Validate(); err != nil {
		return domain.Period{}, err
	}
	return period, nil
}

func defaultYear() int {
	return time.Now().Year()
}
