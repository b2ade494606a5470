package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cascadeYAML = `
dataset_number: 11069
seed: 1337
n_events_per_run: 100
outfile_pattern: "cascades_{dataset_number}_{run_number}.jsonl"
azimuth_range: [0, 360]
zenith_range: [0, 180]
hadron_energy_range: [10000, 10000]
fractional_energy_in_hadrons_range: [0, 1]
time_range: [9000, 12000]
x_range: [-500, 500]
y_range: [-500, 500]
z_range: [-500, 500]
flavors: [NuE, NuMu, NuTau]
interaction_types: [CC, NC]
distance_splits: [2000, 500]
threshold_doms: [8]
oversize_factors: [5, 1]
`

const muonYAML = `
dataset_number: 11070
seed: 42
n_events_per_run: 10
outfile_pattern: "muons_{run_number}.jsonl"
azimuth_range: [0, 360]
zenith_range: [0, 180]
energy_range: [10000, 10000]
anchor_time_range: [9000, 12000]
anchor_x_range: [-400, 400]
anchor_y_range: [-400, 400]
anchor_z_range: [-400, 400]
length_to_go_back: 2000
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCascadeConfig(t *testing.T) {
	cfg, err := LoadCascadeConfig(writeConfig(t, cascadeYAML))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 11069, cfg.DatasetNumber)
	assert.Equal(t, int64(1337), cfg.Seed)
	assert.Equal(t, 100, cfg.NumEvents)
	assert.Equal(t, Range{Min: 0, Max: 360}, cfg.AzimuthRange)
	assert.Equal(t, Range{Min: 10000, Max: 10000}, cfg.HadronEnergyRange)
	assert.Equal(t, []string{"NuE", "NuMu", "NuTau"}, cfg.Flavors)

	splits, err := cfg.Splits()
	require.NoError(t, err)
	require.Len(t, splits, 2)
	// Sorted ascending, single DOM limit broadcast.
	assert.Equal(t, 500.0, splits[0].Threshold)
	assert.Equal(t, 8.0, splits[0].DOMLimit)
	assert.Equal(t, 2000.0, splits[1].Threshold)
	assert.Equal(t, 5.0, splits[1].OversizeFactor)
}

func TestLoadMuonConfig(t *testing.T) {
	cfg, err := LoadMuonConfig(writeConfig(t, muonYAML))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2000.0, cfg.LengthToGoBack)
	assert.Equal(t, Range{Min: -400, Max: 400}, cfg.AnchorXRange)
	splits, err := cfg.Splits()
	require.NoError(t, err)
	assert.Empty(t, splits)
}

func TestLoadCascadeConfig_UnknownKeyRejected(t *testing.T) {
	_, err := LoadCascadeConfig(writeConfig(t, cascadeYAML+"\nzentih_range: [0, 90]\n"))
	require.Error(t, err)
}

func TestLoadCascadeConfig_MissingFile(t *testing.T) {
	_, err := LoadCascadeConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestCascadeConfig_ValidateFailsFast(t *testing.T) {
	// A bad flavor must be rejected by Validate, before any builder exists
	// or any event is sampled.
	cfg, err := LoadCascadeConfig(writeConfig(t, cascadeYAML))
	require.NoError(t, err)
	cfg.Flavors = append(cfg.Flavors, "nux")
	assert.Error(t, cfg.Validate())

	cfg2, err := LoadCascadeConfig(writeConfig(t, cascadeYAML))
	require.NoError(t, err)
	cfg2.InteractionTypes = []string{"xc"}
	assert.Error(t, cfg2.Validate())
}

func TestRunConfig_SplitValidation(t *testing.T) {
	cfg, err := LoadCascadeConfig(writeConfig(t, cascadeYAML))
	require.NoError(t, err)
	cfg.OversizeFactors = []float64{5}
	assert.Error(t, cfg.Validate())

	// Splits surfaces the same error instead of masking it.
	_, err = cfg.Splits()
	assert.Error(t, err)
}
