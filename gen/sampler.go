package gen

// Sampler draws scalar values and categorical indices from a RandomService.
// It is a pure function of (range, stream state): no hidden global state.
type Sampler struct {
	svc RandomService
}

// NewSampler wraps the given random service.
func NewSampler(svc RandomService) *Sampler {
	return &Sampler{svc: svc}
}

// Uniform draws a single value uniformly in [r.Min, r.Max]. A degenerate
// range returns the fixed value without consuming entropy semantics beyond
// the single draw.
func (s *Sampler) Uniform(r Range) float64 {
	return s.svc.Uniform(r.Min, r.Max)
}

// Index draws a uniform categorical index in [0, n). A non-positive n is an
// input-constraint violation.
func (s *Sampler) Index(n int) (int, error) {
	if n <= 0 {
		return 0, configErrorf("categorical index requires a positive count, got %d", n)
	}
	return s.svc.Integer(n), nil
}
