package gen

import "math"

// SpeedOfLight is the propagation speed of light in vacuum, in m/ns. It is
// used as the nominal speed of every generated particle.
const SpeedOfLight = 0.299792458

// ParticleKind is the closed set of physics types this generator emits.
type ParticleKind int

const (
	KindUnset ParticleKind = iota
	KindNuE
	KindNuMu
	KindNuTau
	KindEMinus
	KindMuMinus
	KindTauMinus
	KindHadrons
)

func (k ParticleKind) String() string {
	switch k {
	case KindNuE:
		return "NuE"
	case KindNuMu:
		return "NuMu"
	case KindNuTau:
		return "NuTau"
	case KindEMinus:
		return "EMinus"
	case KindMuMinus:
		return "MuMinus"
	case KindTauMinus:
		return "TauMinus"
	case KindHadrons:
		return "Hadrons"
	default:
		return "Unset"
	}
}

// Shape is the light-deposition topology of a particle.
type Shape int

const (
	ShapeUnset Shape = iota
	ShapeTrack
	ShapeCascade
)

func (s Shape) String() string {
	switch s {
	case ShapeTrack:
		return "Track"
	case ShapeCascade:
		return "Cascade"
	default:
		return "Unset"
	}
}

// Location classifies where the particle sits relative to the instrumented
// volume.
type Location int

const (
	LocationUnset Location = iota
	LocationInDetector
	LocationOther
)

func (l Location) String() string {
	switch l {
	case LocationInDetector:
		return "InDetector"
	case LocationOther:
		return "Other"
	default:
		return "Unset"
	}
}

// Particle is a fully-populated particle record. Immutable once constructed;
// build one through NewParticle, which rejects records with unset fields.
type Particle struct {
	Kind      ParticleKind
	Position  Vector3
	Time      float64 // ns
	Direction Direction
	Speed     float64 // m/ns
	Energy    float64 // GeV
	Shape     Shape
	Location  Location
}

// NewParticle constructs a particle record, validating that every field is
// set. A missing field is a construction error, not a runtime state. Energy
// may be negative (see the cascade energy-partition edge case) but must be
// finite.
func NewParticle(p Particle) (Particle, error) {
	if p.Kind == KindUnset {
		return Particle{}, configErrorf("particle record: kind not set")
	}
	if p.Shape == ShapeUnset {
		return Particle{}, configErrorf("particle record: shape not set")
	}
	if p.Location == LocationUnset {
		return Particle{}, configErrorf("particle record: location not set")
	}
	scalars := []struct {
		name string
		v    float64
	}{
		{"x", p.Position.X},
		{"y", p.Position.Y},
		{"z", p.Position.Z},
		{"time", p.Time},
		{"zenith", p.Direction.Zenith},
		{"azimuth", p.Direction.Azimuth},
		{"speed", p.Speed},
		{"energy", p.Energy},
	}
	for _, s := range scalars {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) {
			return Particle{}, configErrorf("particle record: %s is not finite (%v)", s.name, s.v)
		}
	}
	return p, nil
}
