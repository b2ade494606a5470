package gen

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds the fields shared by both pipelines: run identity,
// seeding, event count, output patterns, and the stream-split metadata that
// is passed through verbatim to the downstream router.
type RunConfig struct {
	DatasetNumber      int    `yaml:"dataset_number"`
	Seed               int64  `yaml:"seed"`
	NumEvents          int    `yaml:"n_events_per_run"`
	OutfilePattern     string `yaml:"outfile_pattern"`
	ScratchfilePattern string `yaml:"scratchfile_pattern,omitempty"`

	// Oversize/distance split metadata, consumed by the external
	// output-stream router. Empty DistanceSplits disables splitting.
	DistanceSplits  []float64 `yaml:"distance_splits,omitempty"`
	ThresholdDOMs   []float64 `yaml:"threshold_doms,omitempty"`
	OversizeFactors []float64 `yaml:"oversize_factors,omitempty"`
}

func (c *RunConfig) validate() error {
	if c.NumEvents <= 0 {
		return configErrorf("n_events_per_run must be positive, got %d", c.NumEvents)
	}
	if _, err := NormalizeSplits(c.DistanceSplits, c.ThresholdDOMs, c.OversizeFactors); err != nil {
		return err
	}
	return nil
}

// Splits returns the normalized stream-split metadata.
func (c *RunConfig) Splits() ([]StreamSpec, error) {
	return NormalizeSplits(c.DistanceSplits, c.ThresholdDOMs, c.OversizeFactors)
}

// CascadeConfig configures the neutrino-cascade pipeline. Angles are given
// in degrees, positions in meters, times in nanoseconds, energies in GeV;
// unit conversion happens once, inside the builder.
type CascadeConfig struct {
	RunConfig `yaml:",inline"`

	AzimuthRange        Range    `yaml:"azimuth_range"`
	ZenithRange         Range    `yaml:"zenith_range"`
	HadronEnergyRange   Range    `yaml:"hadron_energy_range"`
	HadronFractionRange Range    `yaml:"fractional_energy_in_hadrons_range"`
	TimeRange           Range    `yaml:"time_range"`
	XRange              Range    `yaml:"x_range"`
	YRange              Range    `yaml:"y_range"`
	ZRange              Range    `yaml:"z_range"`
	Flavors             []string `yaml:"flavors"`
	InteractionTypes    []string `yaml:"interaction_types"`
}

// Validate checks every sampled range and resolves the flavor and
// interaction lists, so that misconfiguration fails before the first draw.
func (c *CascadeConfig) Validate() error {
	if err := c.RunConfig.validate(); err != nil {
		return err
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"azimuth_range", c.AzimuthRange},
		{"zenith_range", c.ZenithRange},
		{"hadron_energy_range", c.HadronEnergyRange},
		{"fractional_energy_in_hadrons_range", c.HadronFractionRange},
		{"time_range", c.TimeRange},
		{"x_range", c.XRange},
		{"y_range", c.YRange},
		{"z_range", c.ZRange},
	}
	for _, e := range ranges {
		if err := e.r.Validate(e.name); err != nil {
			return err
		}
	}
	if _, _, err := c.resolveLists(); err != nil {
		return err
	}
	return nil
}

func (c *CascadeConfig) resolveLists() ([]Flavor, []Interaction, error) {
	if len(c.Flavors) == 0 {
		return nil, nil, configErrorf("flavors: at least one flavor required")
	}
	if len(c.InteractionTypes) == 0 {
		return nil, nil, configErrorf("interaction_types: at least one interaction type required")
	}
	flavors := make([]Flavor, len(c.Flavors))
	for i, s := range c.Flavors {
		f, err := ParseFlavor(s)
		if err != nil {
			return nil, nil, err
		}
		flavors[i] = f
	}
	interactions := make([]Interaction, len(c.InteractionTypes))
	for i, s := range c.InteractionTypes {
		it, err := ParseInteraction(s)
		if err != nil {
			return nil, nil, err
		}
		interactions[i] = it
	}
	return flavors, interactions, nil
}

// MuonConfig configures the single-muon resimulation pipeline. The anchor
// ranges describe where the muon is expected inside the detector; the vertex
// is back-projected LengthToGoBack meters upstream along the track.
type MuonConfig struct {
	RunConfig `yaml:",inline"`

	AzimuthRange    Range   `yaml:"azimuth_range"`
	ZenithRange     Range   `yaml:"zenith_range"`
	EnergyRange     Range   `yaml:"energy_range"`
	AnchorTimeRange Range   `yaml:"anchor_time_range"`
	AnchorXRange    Range   `yaml:"anchor_x_range"`
	AnchorYRange    Range   `yaml:"anchor_y_range"`
	AnchorZRange    Range   `yaml:"anchor_z_range"`
	LengthToGoBack  float64 `yaml:"length_to_go_back"`
}

// Validate checks every sampled range and the back-projection distance.
func (c *MuonConfig) Validate() error {
	if err := c.RunConfig.validate(); err != nil {
		return err
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"azimuth_range", c.AzimuthRange},
		{"zenith_range", c.ZenithRange},
		{"energy_range", c.EnergyRange},
		{"anchor_time_range", c.AnchorTimeRange},
		{"anchor_x_range", c.AnchorXRange},
		{"anchor_y_range", c.AnchorYRange},
		{"anchor_z_range", c.AnchorZRange},
	}
	for _, e := range ranges {
		if err := e.r.Validate(e.name); err != nil {
			return err
		}
	}
	if math.IsNaN(c.LengthToGoBack) || math.IsInf(c.LengthToGoBack, 0) || c.LengthToGoBack < 0 {
		return configErrorf("length_to_go_back must be finite and non-negative, got %v", c.LengthToGoBack)
	}
	return nil
}

// LoadCascadeConfig reads and parses a YAML cascade configuration file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadCascadeConfig(path string) (*CascadeConfig, error) {
	var cfg CascadeConfig
	if err := loadStrict(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadMuonConfig reads and parses a YAML muon configuration file.
func LoadMuonConfig(path string) (*MuonConfig, error) {
	var cfg MuonConfig
	if err := loadStrict(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadStrict(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}
