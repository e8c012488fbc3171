package geom

// Color is an RGB triple. Channel values outside [0, 1] are valid
// intermediate states (e.g. from additive blending) and are only
// clamped when quantizing to a display pixel.
type Color [3]float64

func NewColor(r, g, b float64) Color {
	return Color{r, g, b}
}

func (c Color) R() float64 { return c[0] }
func (c Color) G() float64 { return c[1] }
func (c Color) B() float64 { return c[2] }

func (a Color) Add(b Color) Color {
	return Color{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Color) Sub(b Color) Color {
	return Color{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Mul is the component-wise (Hadamard) product.
func (a Color) Mul(b Color) Color {
	return Color{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func (c Color) Scale(s float64) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s}
}

// Clamp limits every channel to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c[0]), clamp01(c[1]), clamp01(c[2])}
}

// AbsDiffEq reports whether a and b match channel-wise within eps.
func (a Color) AbsDiffEq(b Color, eps float64) bool {
	return absDiffEq(a[0], b[0], eps) &&
		absDiffEq(a[1], b[1], eps) &&
		absDiffEq(a[2], b[2], eps)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
