package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures everything delivered to it.
type recordingSink struct {
	keys      []string
	frameIDs  []uuid.UUID
	trees     []*DecayTree
	exhausted int
	failNext  bool
}

func (s *recordingSink) Deliver(key string, frameID uuid.UUID, tree *DecayTree) error {
	if s.failNext {
		return fmt.Errorf("sink unavailable")
	}
	s.keys = append(s.keys, key)
	s.frameIDs = append(s.frameIDs, frameID)
	s.trees = append(s.trees, tree)
	return nil
}

func (s *recordingSink) Exhausted() error {
	s.exhausted++
	return nil
}

func newTestDriver(t *testing.T, target int, seed int64) (*Driver, *recordingSink) {
	t.Helper()
	rng := NewPartitionedRNG(seed)
	builder := newTestCascadeBuilderWithRNG(t, rng)
	sink := &recordingSink{}
	d, err := NewDriver(builder, sink, target, rng.ForStageReader(StageFrameID))
	require.NoError(t, err)
	return d, sink
}

func newTestCascadeBuilderWithRNG(t *testing.T, rng *PartitionedRNG) *CascadeBuilder {
	t.Helper()
	b, err := NewCascadeBuilder(testCascadeConfig(), rng.ForStage(StageGeneration))
	require.NoError(t, err)
	return b
}

func TestDriver_ProducesExactlyTarget(t *testing.T) {
	d, sink := newTestDriver(t, 7, 42)
	require.NoError(t, d.Run())

	assert.Equal(t, 7, d.Produced())
	assert.Equal(t, StateDone, d.State())
	assert.Len(t, sink.trees, 7)
	assert.Equal(t, 1, sink.exhausted)
	for _, key := range sink.keys {
		assert.Equal(t, TreeKey, key)
	}
}

func TestDriver_StepAfterDoneIsLifecycleError(t *testing.T) {
	d, sink := newTestDriver(t, 3, 42)
	require.NoError(t, d.Run())

	err := d.Step()
	var lcErr *LifecycleError
	require.ErrorAs(t, err, &lcErr)

	// The refused step must not have produced an extra event.
	assert.Equal(t, 3, d.Produced())
	assert.Len(t, sink.trees, 3)
	assert.Equal(t, 1, sink.exhausted)
}

func TestDriver_TransitionsOnFinalStep(t *testing.T) {
	d, _ := newTestDriver(t, 2, 42)
	require.NoError(t, d.Step())
	assert.Equal(t, StateGenerating, d.State())
	require.NoError(t, d.Step())
	assert.Equal(t, StateDone, d.State())
}

func TestDriver_FrameIDsReproducible(t *testing.T) {
	d1, sink1 := newTestDriver(t, 5, 1234)
	d2, sink2 := newTestDriver(t, 5, 1234)
	require.NoError(t, d1.Run())
	require.NoError(t, d2.Run())

	assert.Equal(t, sink1.frameIDs, sink2.frameIDs)

	// Distinct within a run.
	seen := make(map[uuid.UUID]bool)
	for _, id := range sink1.frameIDs {
		assert.False(t, seen[id], "duplicate frame ID %s", id)
		seen[id] = true
	}
}

func TestDriver_SinkFailurePropagates(t *testing.T) {
	d, sink := newTestDriver(t, 3, 42)
	sink.failNext = true
	err := d.Step()
	require.Error(t, err)
	assert.Equal(t, 0, d.Produced())
	assert.Equal(t, StateGenerating, d.State())
}

func TestNewDriver_Validation(t *testing.T) {
	rng := NewPartitionedRNG(42)
	builder := newTestCascadeBuilderWithRNG(t, rng)
	sink := &recordingSink{}
	ids := rng.ForStageReader(StageFrameID)

	tests := []struct {
		name    string
		builder Builder
		sink    TreeSink
		target  int
	}{
		{"nil builder", nil, sink, 1},
		{"nil sink", builder, nil, 1},
		{"zero target", builder, sink, 0},
		{"negative target", builder, sink, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDriver(tt.builder, tt.sink, tt.target, ids)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("NewDriver error = %v, want ConfigurationError", err)
			}
		})
	}

	t.Run("nil frame-ID stream", func(t *testing.T) {
		_, err := NewDriver(builder, sink, 1, nil)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("NewDriver error = %v, want ConfigurationError", err)
		}
	})
}

func TestDriver_MuonReplayPipeline(t *testing.T) {
	// End-to-end: the muon pipeline replays one particle N times.
	rng := NewPartitionedRNG(42)
	builder, err := NewMuonBuilder(testMuonConfig(), rng.ForStage(StageGeneration))
	require.NoError(t, err)
	sink := &recordingSink{}
	d, err := NewDriver(builder, sink, 4, rng.ForStageReader(StageFrameID))
	require.NoError(t, err)
	require.NoError(t, d.Run())

	require.Len(t, sink.trees, 4)
	for _, tree := range sink.trees {
		assert.Equal(t, builder.Muon(), tree.Primary())
		assert.Equal(t, 1, tree.Len())
	}
}
