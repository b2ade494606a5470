package gen

import "math"

// Vector3 is a point or displacement in detector coordinates, in meters.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Direction is a (zenith, azimuth) angle pair in radians. Zenith 0 points
// straight up (+z), zenith pi straight down.
type Direction struct {
	Zenith  float64 `json:"zenith"`
	Azimuth float64 `json:"azimuth"`
}

// Unit returns the direction-of-travel unit vector.
func (d Direction) Unit() Vector3 {
	sz := math.Sin(d.Zenith)
	return Vector3{
		X: sz * math.Cos(d.Azimuth),
		Y: sz * math.Sin(d.Azimuth),
		Z: math.Cos(d.Zenith),
	}
}
