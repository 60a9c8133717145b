// Package importer reads YAML extract files (metrics, action catalogs,
// weighting policies) and converts them into domain objects.
package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MetricsFile is the top-level YAML structure for a metrics extract.
// One file carries rows from one or more reporting sources for one year
// at a single granularity.
type MetricsFile struct {
	Year        int               `yaml:"year"`
	Granularity string            `yaml:"granularity"`
	Rows        []MetricRowImport `yaml:"rows"`
}

// MetricRowImport is one source's numbers for one period.
type MetricRowImport struct {
	Period          int                `yaml:"period"`
	Source          string             `yaml:"source"`
	VILTScheduled   int                `yaml:"vilt_scheduled"`
	VILTCompleted   int                `yaml:"vilt_completed"`
	ILTScheduled    int                `yaml:"ilt_scheduled"`
	ILTCompleted    int                `yaml:"ilt_completed"`
	LearningHours   float64            `yaml:"learning_hours"`
	CompetencyHours map[string]float64 `yaml:"competency_hours,omitempty"`
	Registrations   int                `yaml:"registrations"`
	Capacity        int                `yaml:"capacity"`
	ClosureRatio    float64            `yaml:"closure_ratio"`
}

// CatalogFile is the top-level YAML structure for an action catalog.
type CatalogFile struct {
	Actions []ActionImport `yaml:"actions"`
}

// ActionImport defines one catalog action and its per-instance effects.
type ActionImport struct {
	Name            string             `yaml:"name"`
	LearningHours   float64            `yaml:"learning_hours"`
	VILTSessions    float64            `yaml:"vilt_sessions"`
	ILTSessions     float64            `yaml:"ilt_sessions"`
	CompetencyHours map[string]float64 `yaml:"competency_hours,omitempty"`
}

// WeightingFile is the top-level YAML structure for a weighting policy.
// Keys of weights are granularity names; area_weights overrides per
// competency area.
type WeightingFile struct {
	Weights     map[string][]float64            `yaml:"weights,omitempty"`
	AreaWeights map[string]map[string][]float64 `yaml:"area_weights,omitempty"`
}

// LoadMetricsFile reads and parses a metrics extract YAML file.
func LoadMetricsFile(path string) (*MetricsFile, error) {
	var file MetricsFile
	if err := loadYAML(path, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// LoadCatalogFile reads and parses an action catalog YAML file.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	var file CatalogFile
	if err := loadYAML(path, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// LoadWeightingFile reads and parses a weighting policy YAML file.
func LoadWeightingFile(path string) (*WeightingFile, error) {
	var file WeightingFile
	if err := loadYAML(path, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
