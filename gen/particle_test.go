package gen

import (
	"errors"
	"math"
	"testing"
)

func validParticle() Particle {
	return Particle{
		Kind:      KindMuMinus,
		Position:  Vector3{X: 1, Y: 2, Z: 3},
		Time:      10000,
		Direction: Direction{Zenith: math.Pi / 2, Azimuth: 0},
		Speed:     SpeedOfLight,
		Energy:    5000,
		Shape:     ShapeTrack,
		Location:  LocationInDetector,
	}
}

func TestNewParticle_Valid(t *testing.T) {
	p, err := NewParticle(validParticle())
	if err != nil {
		t.Fatalf("NewParticle: %v", err)
	}
	if p != validParticle() {
		t.Error("NewParticle modified a valid record")
	}
}

func TestNewParticle_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Particle)
	}{
		{"unset kind", func(p *Particle) { p.Kind = KindUnset }},
		{"unset shape", func(p *Particle) { p.Shape = ShapeUnset }},
		{"unset location", func(p *Particle) { p.Location = LocationUnset }},
		{"NaN time", func(p *Particle) { p.Time = math.NaN() }},
		{"infinite energy", func(p *Particle) { p.Energy = math.Inf(1) }},
		{"NaN position", func(p *Particle) { p.Position.Y = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParticle()
			tt.mutate(&p)
			_, err := NewParticle(p)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("NewParticle error = %v, want ConfigurationError", err)
			}
		})
	}
}

func TestNewParticle_NegativeEnergyAllowed(t *testing.T) {
	// A negative energy is a documented edge case of the cascade energy
	// partition, not a construction error.
	p := validParticle()
	p.Energy = -12.5
	if _, err := NewParticle(p); err != nil {
		t.Errorf("NewParticle with negative energy: %v", err)
	}
}

func TestDirection_Unit(t *testing.T) {
	const tol = 1e-12
	tests := []struct {
		name string
		dir  Direction
		want Vector3
	}{
		{"straight up", Direction{Zenith: 0, Azimuth: 0}, Vector3{0, 0, 1}},
		{"straight down", Direction{Zenith: math.Pi, Azimuth: 0}, Vector3{0, 0, -1}},
		{"horizontal +x", Direction{Zenith: math.Pi / 2, Azimuth: 0}, Vector3{1, 0, 0}},
		{"horizontal +y", Direction{Zenith: math.Pi / 2, Azimuth: math.Pi / 2}, Vector3{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.dir.Unit()
			if math.Abs(got.X-tt.want.X) > tol ||
				math.Abs(got.Y-tt.want.Y) > tol ||
				math.Abs(got.Z-tt.want.Z) > tol {
				t.Errorf("Unit() = %+v, want %+v", got, tt.want)
			}
			if math.Abs(got.Norm()-1) > tol {
				t.Errorf("Unit() norm = %v, want 1", got.Norm())
			}
		})
	}
}

func TestVector3_SubScale(t *testing.T) {
	v := Vector3{X: 1, Y: 2, Z: 3}
	if got := v.Sub(Vector3{X: 1, Y: 1, Z: 1}); got != (Vector3{X: 0, Y: 1, Z: 2}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := v.Scale(-2); got != (Vector3{X: -2, Y: -4, Z: -6}) {
		t.Errorf("Scale = %+v", got)
	}
}
