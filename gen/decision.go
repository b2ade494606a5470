package gen

import "strings"

// Flavor is a neutrino family.
type Flavor int

const (
	FlavorUnset Flavor = iota
	FlavorNuE
	FlavorNuMu
	FlavorNuTau
)

func (f Flavor) String() string {
	switch f {
	case FlavorNuE:
		return "NuE"
	case FlavorNuMu:
		return "NuMu"
	case FlavorNuTau:
		return "NuTau"
	default:
		return "Unset"
	}
}

// ParseFlavor resolves a configured flavor name. Matching is
// case-insensitive so the spellings used by existing config files ("NuE",
// "nue") both work. Unknown names fail at configuration time.
func ParseFlavor(s string) (Flavor, error) {
	switch strings.ToLower(s) {
	case "nue":
		return FlavorNuE, nil
	case "numu":
		return FlavorNuMu, nil
	case "nutau":
		return FlavorNuTau, nil
	default:
		return FlavorUnset, configErrorf("flavor unknown: %q", s)
	}
}

// Interaction is the neutrino interaction channel.
type Interaction int

const (
	InteractionUnset Interaction = iota
	InteractionCC
	InteractionNC
)

func (i Interaction) String() string {
	switch i {
	case InteractionCC:
		return "CC"
	case InteractionNC:
		return "NC"
	default:
		return "Unset"
	}
}

// ParseInteraction resolves a configured interaction-type name ("CC" or
// "NC", case-insensitive). Unknown names fail at configuration time.
func ParseInteraction(s string) (Interaction, error) {
	switch strings.ToLower(s) {
	case "cc":
		return InteractionCC, nil
	case "nc":
		return InteractionNC, nil
	default:
		return InteractionUnset, configErrorf("interaction unknown: %q", s)
	}
}

// Decision is the outcome of the particle decision table for one
// (flavor, interaction) pair.
type Decision struct {
	Primary       ParticleKind
	Daughter      ParticleKind
	DaughterShape Shape
}

// Resolve maps (flavor, interaction) to the primary kind, daughter kind, and
// daughter topology.
//
// The primary is always the neutrino of the given flavor. Charged-current
// daughters are the charged lepton partner; only the NuMu CC daughter is
// track-shaped. Neutral-current daughters are the surviving neutrino,
// cascade-shaped.
func Resolve(flavor Flavor, interaction Interaction) (Decision, error) {
	var primary, lepton ParticleKind
	switch flavor {
	case FlavorNuE:
		primary, lepton = KindNuE, KindEMinus
	case FlavorNuMu:
		primary, lepton = KindNuMu, KindMuMinus
	case FlavorNuTau:
		primary, lepton = KindNuTau, KindTauMinus
	default:
		return Decision{}, configErrorf("flavor unknown: %v", flavor)
	}

	switch interaction {
	case InteractionCC:
		shape := ShapeCascade
		if flavor == FlavorNuMu {
			shape = ShapeTrack
		}
		return Decision{Primary: primary, Daughter: lepton, DaughterShape: shape}, nil
	case InteractionNC:
		return Decision{Primary: primary, Daughter: primary, DaughterShape: ShapeCascade}, nil
	default:
		return Decision{}, configErrorf("interaction unknown: %v", interaction)
	}
}
