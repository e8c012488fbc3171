package geom

import (
	"fmt"
	"math"
)

// Transformable is satisfied by entities that round-trip through a 4×1
// homogeneous column, which is what lets a 4×4 affine matrix be applied
// to them. Point lifts with w=1 so translation moves it; Vec3 lifts
// with w=0 so translation leaves it alone. Color has no spatial meaning
// and does not participate.
type Transformable[T any] interface {
	// HomogeneousColumn lifts the entity into a 4×1 column.
	HomogeneousColumn() Matrix
	// FromHomogeneousColumn reconstructs the entity from a 4×1 column,
	// ignoring the trailing homogeneous coordinate.
	FromHomogeneousColumn(Matrix) T
}

// Transform applies the 4×4 matrix m to e: lift, left-multiply, lower.
// No perspective division is performed; m is assumed affine.
func Transform[T Transformable[T]](e T, m Matrix) T {
	return e.FromHomogeneousColumn(m.Mul(e.HomogeneousColumn()))
}

// HomogeneousColumn lifts the point to [x, y, z, 1].
func (p Point) HomogeneousColumn() Matrix {
	return Matrix{rows: 4, cols: 1, data: []float64{p[0], p[1], p[2], 1}}
}

func (Point) FromHomogeneousColumn(m Matrix) Point {
	x, y, z := homogeneousXYZ(m)
	return Point{x, y, z}
}

// HomogeneousColumn lifts the vector to [x, y, z, 0]. The zero keeps
// free vectors invariant under translation.
func (v Vec3) HomogeneousColumn() Matrix {
	return Matrix{rows: 4, cols: 1, data: []float64{v[0], v[1], v[2], 0}}
}

func (Vec3) FromHomogeneousColumn(m Matrix) Vec3 {
	x, y, z := homogeneousXYZ(m)
	return Vec3{x, y, z}
}

func homogeneousXYZ(m Matrix) (x, y, z float64) {
	if m.rows != 4 || m.cols != 1 {
		panic(fmt.Sprintf("geom: expected 4×1 homogeneous column, got %d×%d", m.rows, m.cols))
	}
	return m.data[0], m.data[1], m.data[2]
}

// Translate returns the 4×4 matrix that moves points by (x, y, z).
func Translate(x, y, z float64) Matrix {
	m := Identity(4)
	m.data[0*4+3] = x
	m.data[1*4+3] = y
	m.data[2*4+3] = z
	return m
}

// Scale returns the 4×4 matrix that scales by (x, y, z) along the axes.
// Negative factors produce reflection.
func Scale(x, y, z float64) Matrix {
	m := Identity(4)
	m.data[0*4+0] = x
	m.data[1*4+1] = y
	m.data[2*4+2] = z
	return m
}

// RotateX returns the right-handed rotation about the X axis. Angle in
// radians.
func RotateX(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	m := Identity(4)
	m.data[1*4+1] = c
	m.data[1*4+2] = -s
	m.data[2*4+1] = s
	m.data[2*4+2] = c
	return m
}

// RotateY returns the right-handed rotation about the Y axis.
func RotateY(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	m := Identity(4)
	m.data[0*4+0] = c
	m.data[0*4+2] = s
	m.data[2*4+0] = -s
	m.data[2*4+2] = c
	return m
}

// RotateZ returns the right-handed rotation about the Z axis.
func RotateZ(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	m := Identity(4)
	m.data[0*4+0] = c
	m.data[0*4+1] = -s
	m.data[1*4+0] = s
	m.data[1*4+1] = c
	return m
}

// Rotate composes the axis rotations as RotateX(rx) × RotateY(ry) ×
// RotateZ(rz). Rotation composition is non-commutative; this order is
// the convention throughout the pipeline.
func Rotate(rx, ry, rz float64) Matrix {
	return RotateX(rx).Mul(RotateY(ry)).Mul(RotateZ(rz))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
