package engine

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Algorithm selects the engine's routing algorithm.
type Algorithm string

const (
	AlgorithmCH  Algorithm = "ch"  // contraction hierarchies (default)
	AlgorithmMLD Algorithm = "mld" // multi-level dijkstra
)

// Config carries everything an engine implementation needs to come up: the
// dataset location and the service limits. -1 means unlimited for every
// limit field. The zero-ish defaults come from DefaultConfig; a YAML file
// only overrides what it names.
type Config struct {
	// BasePath points at the processed dataset; empty selects shared memory
	// populated by an external datastore process.
	BasePath  string    `yaml:"base_path"`
	Algorithm Algorithm `yaml:"algorithm" validate:"omitempty,oneof=ch mld"`

	MaxLocationsTrip          int     `yaml:"max_locations_trip" validate:"gte=-1"`
	MaxLocationsViaroute      int     `yaml:"max_locations_viaroute" validate:"gte=-1"`
	MaxLocationsDistanceTable int     `yaml:"max_locations_distance_table" validate:"gte=-1"`
	MaxLocationsMapMatching   int     `yaml:"max_locations_map_matching" validate:"gte=-1"`
	MaxRadiusMapMatching      float64 `yaml:"max_radius_map_matching" validate:"gte=-1"`
	MaxResultsNearest         int     `yaml:"max_results_nearest" validate:"gte=-1"`
	DefaultRadius             float64 `yaml:"default_radius" validate:"gte=-1"`
	MaxAlternatives           int     `yaml:"max_alternatives" validate:"gte=-1"`

	UseSharedMemory bool   `yaml:"use_shared_memory"`
	MemoryFile      string `yaml:"memory_file"`
	UseMmap         bool   `yaml:"use_mmap"`
	DatasetName     string `yaml:"dataset_name"`
	Verbosity       string `yaml:"verbosity" validate:"omitempty,oneof=NONE ERROR WARNING INFO DEBUG"`

	// DisabledFeatureDatasets names optional dataset features the engine
	// should not load.
	DisabledFeatureDatasets []string `yaml:"disabled_feature_datasets" validate:"dive,oneof=ROUTE_GEOMETRY ROUTE_STEPS"`
}

// DefaultConfig returns the engine defaults: CH, every limit unlimited
// except three alternatives.
func DefaultConfig() *Config {
	return &Config{
		Algorithm:                 AlgorithmCH,
		MaxLocationsTrip:          -1,
		MaxLocationsViaroute:      -1,
		MaxLocationsDistanceTable: -1,
		MaxLocationsMapMatching:   -1,
		MaxRadiusMapMatching:      -1,
		MaxResultsNearest:         -1,
		DefaultRadius:             -1,
		MaxAlternatives:           3,
	}
}

// LoadConfig reads a YAML config file over the defaults and validates the
// result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the field constraints.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid engine config: %w", err)
	}
	return nil
}

// DisableFeatureDataset adds one feature dataset to the disabled set.
func (c *Config) DisableFeatureDataset(name string) error {
	if name != "ROUTE_GEOMETRY" && name != "ROUTE_STEPS" {
		return fmt.Errorf("unknown feature dataset %q", name)
	}
	for _, existing := range c.DisabledFeatureDatasets {
		if existing == name {
			return nil
		}
	}
	c.DisabledFeatureDatasets = append(c.DisabledFeatureDatasets, name)
	return nil
}

// ClearDisabledFeatureDatasets re-enables every feature dataset.
func (c *Config) ClearDisabledFeatureDatasets() {
	c.DisabledFeatureDatasets = nil
}
