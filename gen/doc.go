// Package gen provides the stochastic event generator and decay-tree builder
// for the detector simulation pipeline.
//
// # Reading Guide
//
// Start with these three files to understand the generation kernel:
//   - particle.go: Particle record, kinds, shapes, and the decay tree building blocks
//   - cascade.go / muon.go: the two event builders and their fixed draw orders
//   - driver.go: the event-count loop that hands finished trees to the sink
//
// # Architecture
//
// Everything is driven by a seeded, partitioned random-number service
// (rng.go): each generation stage draws from its own deterministic stream, so
// a given master seed reproduces a byte-identical event sequence. Builders
// draw through a Sampler (sampler.go) over validated [min, max] ranges
// (range.go); the flavor/interaction decision table lives in decision.go.
// Configuration is YAML, strictly decoded and fully validated before the
// first draw (config.go). Output-stream split metadata is normalized in
// split.go and passed through verbatim; the routing decision itself belongs
// to the downstream stage.
package gen
