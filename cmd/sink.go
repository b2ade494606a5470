package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/icesim/eventgen/gen"
)

// particleRecord is the serialized form of one particle.
type particleRecord struct {
	Kind     string      `json:"kind"`
	Position gen.Vector3 `json:"position_m"`
	TimeNs   float64     `json:"time_ns"`
	ZenithR  float64     `json:"zenith_rad"`
	AzimuthR float64     `json:"azimuth_rad"`
	Speed    float64     `json:"speed_m_per_ns"`
	Energy   float64     `json:"energy_gev"`
	Shape    string      `json:"shape"`
	Location string      `json:"location"`
}

// eventRecord is one JSON line of output: a frame ID plus the decay tree
// under its well-known key.
type eventRecord struct {
	FrameID  string           `json:"frame_id"`
	Key      string           `json:"key"`
	Primary  particleRecord   `json:"primary"`
	Children []particleRecord `json:"children"`
}

func toRecord(p gen.Particle) particleRecord {
	return particleRecord{
		Kind:     p.Kind.String(),
		Position: p.Position,
		TimeNs:   p.Time,
		ZenithR:  p.Direction.Zenith,
		AzimuthR: p.Direction.Azimuth,
		Speed:    p.Speed,
		Energy:   p.Energy,
		Shape:    p.Shape.String(),
		Location: p.Location.String(),
	}
}

// jsonSink writes delivered decay trees as JSON lines. It stands in for the
// propagation/output stage in standalone runs.
type jsonSink struct {
	f         *os.File
	enc       *json.Encoder
	delivered int
}

func newJSONSink(path string) (*jsonSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return &jsonSink{f: f, enc: json.NewEncoder(f)}, nil
}

func (s *jsonSink) Deliver(key string, frameID uuid.UUID, tree *gen.DecayTree) error {
	rec := eventRecord{
		FrameID: frameID.String(),
		Key:     key,
		Primary: toRecord(tree.Primary()),
	}
	for _, c := range tree.Children() {
		rec.Children = append(rec.Children, toRecord(c))
	}
	if err := s.enc.Encode(&rec); err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}
	s.delivered++
	return nil
}

func (s *jsonSink) Exhausted() error {
	logrus.Infof("Production exhausted after %d events", s.delivered)
	return nil
}

func (s *jsonSink) Close() error {
	return s.f.Close()
}
