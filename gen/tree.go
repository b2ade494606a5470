package gen

// TreeKey is the well-known identifier the propagation stage expects each
// decay tree to be delivered under.
const TreeKey = "MCTreePreMuonProp"

type treeNode struct {
	particle Particle
	parent   *treeNode
	children []*treeNode
}

// DecayTree is the ownership hierarchy of one generated event: exactly one
// primary particle with zero or more daughter records attached directly to
// it. The tree is owned by the event that created it and discarded after
// hand-off to the output stage.
type DecayTree struct {
	primary *treeNode
}

// NewDecayTree creates a tree rooted at the given primary.
func NewDecayTree(primary Particle) *DecayTree {
	return &DecayTree{primary: &treeNode{particle: primary}}
}

// AppendChild attaches a daughter record directly under the primary.
func (t *DecayTree) AppendChild(p Particle) {
	child := &treeNode{particle: p, parent: t.primary}
	t.primary.children = append(t.primary.children, child)
}

// Primary returns the root particle.
func (t *DecayTree) Primary() Particle {
	return t.primary.particle
}

// Children returns the daughter particles in insertion order.
func (t *DecayTree) Children() []Particle {
	out := make([]Particle, len(t.primary.children))
	for i, c := range t.primary.children {
		out[i] = c.particle
	}
	return out
}

// Len returns the total number of particles in the tree.
func (t *DecayTree) Len() int {
	return 1 + len(t.primary.children)
}
