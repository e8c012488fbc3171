package geom

import "math"

// Vec3 is a free direction or displacement in 3-space (value type,
// stack-allocated). It carries no positional meaning; see Point for
// locations.
type Vec3 [3]float64

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Magnitude is the L1 norm: the sum of absolute components, not the
// Euclidean length.
func (v Vec3) Magnitude() float64 {
	return math.Abs(v[0]) + math.Abs(v[1]) + math.Abs(v[2])
}

// Normalize scales v to magnitude 1. The zero vector normalizes to
// itself rather than dividing by zero.
func (v Vec3) Normalize() Vec3 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec3{}
	}
	return v.Div(mag)
}

// AbsDiffEq reports whether a and b match component-wise within eps.
func (a Vec3) AbsDiffEq(b Vec3, eps float64) bool {
	return absDiffEq(a[0], b[0], eps) &&
		absDiffEq(a[1], b[1], eps) &&
		absDiffEq(a[2], b[2], eps)
}
