package gen

import "github.com/sirupsen/logrus"

// hadronFractionEpsilon is the numerical-stability floor added to the
// sampled hadronic fraction before dividing. It prevents division by zero
// when the fraction is sampled at 0; it is not a physical parameter.
const hadronFractionEpsilon = 1e-6

// CascadeBuilder samples independent neutrino-interaction events and builds
// their 3-node decay trees (primary -> daughter, primary -> hadronic shower).
type CascadeBuilder struct {
	sampler *Sampler

	azimuthRange  Range // radians
	zenithRange   Range // radians
	hadronERange  Range
	fractionRange Range
	timeRange     Range
	xRange        Range
	yRange        Range
	zRange        Range

	flavors      []Flavor
	interactions []Interaction
}

// NewCascadeBuilder validates the configuration and binds the builder to the
// given random service. All configuration errors surface here, before any
// event is produced.
func NewCascadeBuilder(cfg *CascadeConfig, svc RandomService) (*CascadeBuilder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	flavors, interactions, err := cfg.resolveLists()
	if err != nil {
		return nil, err
	}
	return &CascadeBuilder{
		sampler:       NewSampler(svc),
		azimuthRange:  cfg.AzimuthRange.ToRadians(),
		zenithRange:   cfg.ZenithRange.ToRadians(),
		hadronERange:  cfg.HadronEnergyRange,
		fractionRange: cfg.HadronFractionRange,
		timeRange:     cfg.TimeRange,
		xRange:        cfg.XRange,
		yRange:        cfg.YRange,
		zRange:        cfg.ZRange,
		flavors:       flavors,
		interactions:  interactions,
	}, nil
}

// Build samples one cascade event. The draw order is fixed: vertex x, y, z,
// vertex time, azimuth, zenith, hadron energy, hadronic fraction, flavor
// index, interaction index. Reordering would break seed reproducibility.
func (b *CascadeBuilder) Build() (*DecayTree, error) {
	vertex := Vector3{
		X: b.sampler.Uniform(b.xRange),
		Y: b.sampler.Uniform(b.yRange),
		Z: b.sampler.Uniform(b.zRange),
	}
	vertexTime := b.sampler.Uniform(b.timeRange)

	dir := Direction{
		Azimuth: b.sampler.Uniform(b.azimuthRange),
		Zenith:  b.sampler.Uniform(b.zenithRange),
	}

	hadronEnergy := b.sampler.Uniform(b.hadronERange)
	fraction := b.sampler.Uniform(b.fractionRange)
	primaryEnergy := hadronEnergy / (hadronFractionEpsilon + fraction)
	daughterEnergy := primaryEnergy - hadronEnergy
	if daughterEnergy < 0 {
		// Preserved from the original energy-partition model: a fraction
		// above 1-eps drives the daughter energy below zero.
		logrus.Warnf("negative daughter energy %.6g GeV (hadronic fraction %.6g)",
			daughterEnergy, fraction)
	}

	fi, err := b.sampler.Index(len(b.flavors))
	if err != nil {
		return nil, err
	}
	ii, err := b.sampler.Index(len(b.interactions))
	if err != nil {
		return nil, err
	}
	decision, err := Resolve(b.flavors[fi], b.interactions[ii])
	if err != nil {
		return nil, err
	}

	primary, err := NewParticle(Particle{
		Kind:      decision.Primary,
		Position:  vertex,
		Time:      vertexTime,
		Direction: dir,
		Speed:     SpeedOfLight,
		Energy:    primaryEnergy,
		Shape:     ShapeCascade,
		Location:  LocationInDetector,
	})
	if err != nil {
		return nil, err
	}
	daughter, err := NewParticle(Particle{
		Kind:      decision.Daughter,
		Position:  vertex,
		Time:      vertexTime,
		Direction: dir,
		Speed:     SpeedOfLight,
		Energy:    daughterEnergy,
		Shape:     decision.DaughterShape,
		Location:  LocationInDetector,
	})
	if err != nil {
		return nil, err
	}
	// Always emitted for tree-shape uniformity, even at zero hadron energy.
	hadrons, err := NewParticle(Particle{
		Kind:      KindHadrons,
		Position:  vertex,
		Time:      vertexTime,
		Direction: dir,
		Speed:     SpeedOfLight,
		Energy:    hadronEnergy,
		Shape:     ShapeCascade,
		Location:  LocationInDetector,
	})
	if err != nil {
		return nil, err
	}

	logrus.Debugf("cascade: %s %s at (%.1f, %.1f, %.1f) m, E=%.3g GeV",
		decision.Primary, decision.DaughterShape, vertex.X, vertex.Y, vertex.Z, primaryEnergy)

	tree := NewDecayTree(primary)
	tree.AppendChild(daughter)
	tree.AppendChild(hadrons)
	return tree, nil
}
