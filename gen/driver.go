package gen

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Builder produces one decay tree per invocation.
type Builder interface {
	Build() (*DecayTree, error)
}

// TreeSink is the external propagation/output stage. It receives exactly one
// fully-populated decay tree per produced event, keyed under TreeKey, and is
// told once when production is exhausted.
type TreeSink interface {
	Deliver(key string, frameID uuid.UUID, tree *DecayTree) error
	Exhausted() error
}

// DriverState is the lifecycle state of the event-count driver.
type DriverState int

const (
	StateGenerating DriverState = iota
	StateDone
)

func (s DriverState) String() string {
	switch s {
	case StateGenerating:
		return "Generating"
	case StateDone:
		return "Done"
	default:
		return fmt.Sprintf("DriverState(%d)", int(s))
	}
}

// Driver repeats event construction until the configured target count is
// reached, delivering each tree to the sink. Once Done, further Step calls
// are a contract violation: the driver refuses to silently keep producing.
type Driver struct {
	builder  Builder
	sink     TreeSink
	target   int
	produced int
	state    DriverState
	frameIDs io.Reader
}

// NewDriver creates a driver that will produce exactly target events.
// frameIDs is the deterministic byte stream used to stamp each event with a
// reproducible frame ID (typically the StageFrameID stream).
func NewDriver(builder Builder, sink TreeSink, target int, frameIDs io.Reader) (*Driver, error) {
	if builder == nil || sink == nil {
		return nil, configErrorf("driver requires a builder and a sink")
	}
	if target <= 0 {
		return nil, configErrorf("target event count must be positive, got %d", target)
	}
	if frameIDs == nil {
		return nil, configErrorf("driver requires a frame-ID stream")
	}
	return &Driver{
		builder:  builder,
		sink:     sink,
		target:   target,
		state:    StateGenerating,
		frameIDs: frameIDs,
	}, nil
}

// Step builds and delivers one event, then transitions to Done when the
// target count is reached. Stepping a Done driver returns a LifecycleError.
func (d *Driver) Step() error {
	if d.state == StateDone {
		return lifecycleErrorf("event requested after driver finished (%d/%d produced)",
			d.produced, d.target)
	}

	tree, err := d.builder.Build()
	if err != nil {
		return err
	}
	frameID, err := uuid.NewRandomFromReader(d.frameIDs)
	if err != nil {
		return fmt.Errorf("generating frame ID: %w", err)
	}
	if err := d.sink.Deliver(TreeKey, frameID, tree); err != nil {
		return fmt.Errorf("delivering event %d: %w", d.produced+1, err)
	}

	d.produced++
	logrus.Debugf("event %d/%d delivered (frame %s)", d.produced, d.target, frameID)
	if d.produced >= d.target {
		d.state = StateDone
		if err := d.sink.Exhausted(); err != nil {
			return fmt.Errorf("signaling exhaustion: %w", err)
		}
	}
	return nil
}

// Run steps the driver to completion.
func (d *Driver) Run() error {
	for d.state == StateGenerating {
		if err := d.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Produced returns the number of events delivered so far.
func (d *Driver) Produced() int {
	return d.produced
}

// State returns the current lifecycle state.
func (d *Driver) State() DriverState {
	return d.state
}
