package geom

// Point is a location in 3-space. It is a distinct type from Vec3 so
// positions and directions cannot be mixed by accident: Point − Point
// is a displacement (Vec3), Point ± Vec3 is another Point, and under a
// homogeneous transform a Point carries w=1 while a Vec3 carries w=0.
type Point [3]float64

func NewPoint(x, y, z float64) Point {
	return Point{x, y, z}
}

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }
func (p Point) Z() float64 { return p[2] }

// Add translates p by the displacement v.
func (p Point) Add(v Vec3) Point {
	return Point{p[0] + v[0], p[1] + v[1], p[2] + v[2]}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec3 {
	return Vec3{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

// SubVec translates p by the negation of v.
func (p Point) SubVec(v Vec3) Point {
	return Point{p[0] - v[0], p[1] - v[1], p[2] - v[2]}
}

// AbsDiffEq reports whether p and q match component-wise within eps.
func (p Point) AbsDiffEq(q Point, eps float64) bool {
	return absDiffEq(p[0], q[0], eps) &&
		absDiffEq(p[1], q[1], eps) &&
		absDiffEq(p[2], q[2], eps)
}
