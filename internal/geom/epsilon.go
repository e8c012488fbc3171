package geom

import "math"

// Default absolute tolerances for approximate equality. Matrices use a
// looser tolerance than the scalar types: chained matrix arithmetic
// (composition, inversion) accumulates more rounding error than the
// component-wise vector operations.
const (
	Epsilon       = 1e-10
	MatrixEpsilon = 1e-4
)

// AbsDiffEq reports whether two scalars match within an absolute
// tolerance. The structured types build their comparisons on it.
func AbsDiffEq(a, b, eps float64) bool {
	return absDiffEq(a, b, eps)
}

func absDiffEq(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
