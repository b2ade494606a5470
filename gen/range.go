package gen

import (
	"math"

	"gopkg.in/yaml.v3"
)

// Range is an inclusive [Min, Max] sampling interval in a fixed physical
// unit. A degenerate range (Min == Max) is a valid fixed value.
type Range struct {
	Min float64
	Max float64
}

// UnmarshalYAML decodes a range from the two-element list form used in
// config files, e.g. `azimuth_range: [0, 360]`.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	var bounds []float64
	if err := node.Decode(&bounds); err != nil {
		return err
	}
	if len(bounds) != 2 {
		return configErrorf("range must be a [min, max] pair, got %d elements", len(bounds))
	}
	r.Min, r.Max = bounds[0], bounds[1]
	return nil
}

// MarshalYAML emits the [min, max] list form.
func (r Range) MarshalYAML() (any, error) {
	return []float64{r.Min, r.Max}, nil
}

// Validate checks the range invariant at configuration time.
func (r Range) Validate(name string) error {
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) || math.IsNaN(r.Max) || math.IsInf(r.Max, 0) {
		return configErrorf("%s: bounds must be finite, got [%v, %v]", name, r.Min, r.Max)
	}
	if r.Min > r.Max {
		return configErrorf("%s: min %v exceeds max %v", name, r.Min, r.Max)
	}
	return nil
}

// Fixed reports whether the range is degenerate (a single fixed value).
func (r Range) Fixed() bool {
	return r.Min == r.Max
}

// ToRadians converts a range configured in degrees to radians. Angle ranges
// are converted once at the configuration boundary; everything downstream
// works in radians.
func (r Range) ToRadians() Range {
	return Range{Min: r.Min * math.Pi / 180, Max: r.Max * math.Pi / 180}
}
