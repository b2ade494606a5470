package gen

import "github.com/sirupsen/logrus"

// MuonBuilder generates single-muon events for resimulation. The muon is
// sampled ONCE, at construction: direction and energy first, then an anchor
// point and time inside the detector; the vertex is back-projected upstream
// along the track. Every Build call replays the identical particle, so all
// requested events share the same kinematics. This asymmetry with the
// cascade builder is intentional: resimulation replays one track many times.
type MuonBuilder struct {
	muon Particle
}

// NewMuonBuilder validates the configuration, samples the muon, and computes
// its back-projected vertex. The draw order is fixed: azimuth, zenith,
// energy, anchor x, y, z, anchor time.
func NewMuonBuilder(cfg *MuonConfig, svc RandomService) (*MuonBuilder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sampler := NewSampler(svc)

	dir := Direction{
		Azimuth: sampler.Uniform(cfg.AzimuthRange.ToRadians()),
		Zenith:  sampler.Uniform(cfg.ZenithRange.ToRadians()),
	}
	energy := sampler.Uniform(cfg.EnergyRange)

	anchor := Vector3{
		X: sampler.Uniform(cfg.AnchorXRange),
		Y: sampler.Uniform(cfg.AnchorYRange),
		Z: sampler.Uniform(cfg.AnchorZRange),
	}
	anchorTime := sampler.Uniform(cfg.AnchorTimeRange)

	vertex := anchor.Sub(dir.Unit().Scale(cfg.LengthToGoBack))
	travelTime := cfg.LengthToGoBack / SpeedOfLight
	vertexTime := anchorTime - travelTime

	muon, err := NewParticle(Particle{
		Kind:      KindMuMinus,
		Position:  vertex,
		Time:      vertexTime,
		Direction: dir,
		Speed:     SpeedOfLight,
		Energy:    energy,
		Shape:     ShapeTrack,
		Location:  LocationInDetector,
	})
	if err != nil {
		return nil, err
	}

	logrus.Debugf("muon: E=%.3g GeV, vertex (%.1f, %.1f, %.1f) m, %v m upstream of anchor",
		energy, vertex.X, vertex.Y, vertex.Z, cfg.LengthToGoBack)

	return &MuonBuilder{muon: muon}, nil
}

// Muon returns the sampled particle shared by every event.
func (b *MuonBuilder) Muon() Particle {
	return b.muon
}

// Build returns a single-node decay tree holding the sampled muon.
func (b *MuonBuilder) Build() (*DecayTree, error) {
	return NewDecayTree(b.muon), nil
}
