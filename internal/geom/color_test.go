package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorAdd(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)
	require.True(t, c1.Add(c2).AbsDiffEq(NewColor(1.6, 0.7, 1.0), Epsilon))
}

func TestColorSub(t *testing.T) {
	c1 := NewColor(0.8, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)
	require.True(t, c1.Sub(c2).AbsDiffEq(NewColor(0.1, 0.5, 0.5), Epsilon))
}

func TestColorScale(t *testing.T) {
	c := NewColor(0.2, 0.3, 0.4)
	require.True(t, c.Scale(2).AbsDiffEq(NewColor(0.4, 0.6, 0.8), Epsilon))
}

func TestColorMul(t *testing.T) {
	c1 := NewColor(1, 0.2, 0.4)
	c2 := NewColor(0.9, 1, 0.1)
	require.True(t, c1.Mul(c2).AbsDiffEq(NewColor(0.9, 0.2, 0.04), Epsilon))
}

func TestColorClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want Color
	}{
		{"out of range both ways", NewColor(1.5, 0.5, -20.0), NewColor(1.0, 0.5, 0.0)},
		{"in range untouched", NewColor(0, 0.5, 1), NewColor(0, 0.5, 1)},
		{"all above", NewColor(2, 3, 4), NewColor(1, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.in.Clamp())
		})
	}
}
