package gen

import (
	"fmt"
	"hash/fnv"
	"io"
	"math/rand"
)

// RandomService is the deterministic random stream the generator draws from.
// It is owned by the caller; builders hold a reference only. Given the same
// seed, a RandomService MUST reproduce the same draw sequence.
type RandomService interface {
	// Uniform draws a single value uniformly in [min, max].
	Uniform(min, max float64) float64
	// Integer draws a uniform index in [0, n). n must be positive.
	Integer(n int) int
}

// Stage names for the partitioned RNG. Each pipeline stage draws from its
// own stream so that adding draws to one stage cannot shift another.
const (
	StageGeneration  = "generation"
	StagePropagation = "propagation"
	StageFrameID     = "frameid"
)

// MasterSeed derives the per-run master seed from the dataset number, run
// number, and configured base seed. Distinct runs of the same dataset get
// distinct, reproducible streams.
func MasterSeed(datasetNumber, runNumber int, seed int64) int64 {
	return seed ^ fnv1a64(fmt.Sprintf("dataset_%d_run_%d", datasetNumber, runNumber))
}

// PartitionedRNG hands out deterministic, isolated random services per stage.
//
// Derivation: stageSeed = masterSeed XOR fnv1a64(stageName). The same stage
// name always returns the same underlying stream (cached).
//
// Not safe for concurrent use; the generator is single-threaded.
type PartitionedRNG struct {
	masterSeed int64
	stages     map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(masterSeed int64) *PartitionedRNG {
	return &PartitionedRNG{
		masterSeed: masterSeed,
		stages:     make(map[string]*rand.Rand),
	}
}

// ForStage returns the deterministically-seeded random service for the named
// stage, creating it on first use.
func (p *PartitionedRNG) ForStage(name string) RandomService {
	return &seededService{rng: p.stage(name)}
}

// ForStageReader exposes the named stage's stream as an io.Reader, for
// consumers that need deterministic raw bytes (frame-ID generation).
func (p *PartitionedRNG) ForStageReader(name string) io.Reader {
	return p.stage(name)
}

func (p *PartitionedRNG) stage(name string) *rand.Rand {
	if rng, ok := p.stages[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.masterSeed ^ fnv1a64(name)))
	p.stages[name] = rng
	return rng
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// seededService adapts a *rand.Rand to the RandomService contract.
type seededService struct {
	rng *rand.Rand
}

// Uniform always consumes exactly one draw, so the stream position depends
// only on the number of samples taken, never on the configured bounds.
// A degenerate range yields min exactly: min + f*0 == min.
func (s *seededService) Uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func (s *seededService) Integer(n int) int {
	return s.rng.Intn(n)
}
