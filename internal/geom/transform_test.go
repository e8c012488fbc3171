package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslatePoint(t *testing.T) {
	p := NewPoint(-3, 4, 5)
	require.Equal(t, NewPoint(2, 1, 7), Transform(p, Translate(5, -3, 2)))
}

func TestTranslateVec3Noop(t *testing.T) {
	// Vectors lift with w=0, so translation has no effect on them.
	v := NewVec3(-3, 4, 5)
	require.Equal(t, v, Transform(v, Translate(6, -1.3, 2)))
}

func TestScalePoint(t *testing.T) {
	p := NewPoint(-4, 6, 8)
	require.Equal(t, NewPoint(-8, 18, 32), Transform(p, Scale(2, 3, 4)))
}

func TestScaleVec3(t *testing.T) {
	v := NewVec3(-4, 6, 8)
	require.Equal(t, NewVec3(-8, 18, 32), Transform(v, Scale(2, 3, 4)))
}

func TestScaleReflection(t *testing.T) {
	p := NewPoint(2, 3, 4)
	require.Equal(t, NewPoint(-2, 3, 4), Transform(p, Scale(-1, 1, 1)))
}

func TestRotateX(t *testing.T) {
	p := NewPoint(0, 1, 0)
	halfQuarter := RotateX(math.Pi / 4)
	fullQuarter := RotateX(math.Pi / 2)

	require.True(t, Transform(p, halfQuarter).AbsDiffEq(
		NewPoint(0, math.Sqrt2/2, math.Sqrt2/2), Epsilon))
	require.True(t, Transform(p, fullQuarter).AbsDiffEq(
		NewPoint(0, 0, 1), Epsilon))
}

func TestRotateFullCircle(t *testing.T) {
	tests := []struct {
		name     string
		rotation Matrix
	}{
		{"about x", RotateX(2 * math.Pi)},
		{"about y", RotateY(2 * math.Pi)},
		{"about z", RotateZ(2 * math.Pi)},
	}
	v := NewVec3(1.5, -2, 4.25)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, Transform(v, tt.rotation).AbsDiffEq(v, Epsilon))
		})
	}
}

func TestRotateCompositionOrder(t *testing.T) {
	rx, ry, rz := 0.3, -1.1, 2.5
	want := RotateX(rx).Mul(RotateY(ry)).Mul(RotateZ(rz))
	require.True(t, Rotate(rx, ry, rz).Equal(want))

	// The reversed order gives a different matrix.
	reversed := RotateZ(rz).Mul(RotateY(ry)).Mul(RotateX(rx))
	require.False(t, Rotate(rx, ry, rz).AbsDiffEq(reversed, MatrixEpsilon))
}

func TestTranslateWithInverse(t *testing.T) {
	translation := Translate(6, -1.3, 2)
	roundTrip := translation.Mul(translation.Inverse())

	p := NewPoint(3.5, 2, -9)
	require.True(t, Transform(p, roundTrip).AbsDiffEq(p, Epsilon))
}

func TestScaleWithInverse(t *testing.T) {
	scaling := Scale(6, -1.3, 2)
	roundTrip := scaling.Mul(scaling.Inverse())

	v := NewVec3(1, 2, 3)
	require.True(t, Transform(v, roundTrip).AbsDiffEq(v, Epsilon))
}

func TestRotateWithInverseOnPoint(t *testing.T) {
	rotation := Rotate(0.4, 1.2, -0.7)
	roundTrip := rotation.Mul(rotation.Inverse())

	p := NewPoint(-1, 5, 2.5)
	require.True(t, Transform(p, roundTrip).AbsDiffEq(p, Epsilon))
}

func TestHomogeneousColumns(t *testing.T) {
	p := NewPoint(1, 2, 3)
	require.True(t, p.HomogeneousColumn().Equal(
		NewMatrix([][]float64{{1}, {2}, {3}, {1}})))

	v := NewVec3(1, 2, 3)
	require.True(t, v.HomogeneousColumn().Equal(
		NewMatrix([][]float64{{1}, {2}, {3}, {0}})))
}

func TestFromHomogeneousColumnShape(t *testing.T) {
	require.Panics(t, func() {
		Point{}.FromHomogeneousColumn(NewMatrix([][]float64{{1}, {2}, {3}}))
	})
}

func TestDeg2Rad(t *testing.T) {
	require.Equal(t, math.Pi, Deg2Rad(180))
	require.Equal(t, math.Pi/2, Deg2Rad(90))
}
