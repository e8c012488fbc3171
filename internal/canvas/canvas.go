// Package canvas holds the rendering target: a width×height grid of
// colors, stored row-major with x as the fast-varying axis.
package canvas

import (
	"iter"

	"github.com/arjandepooter/raytracing/internal/geom"
)

// Canvas is a pixel grid of colors. Pixels start out black.
type Canvas struct {
	Width  int
	Height int
	pixels []geom.Color
}

// New allocates a w×h canvas with every pixel set to the zero color.
func New(w, h int) *Canvas {
	return &Canvas{
		Width:  w,
		Height: h,
		pixels: make([]geom.Color, w*h),
	}
}

// At returns the color at (x, y). Out-of-range coordinates panic.
func (c *Canvas) At(x, y int) geom.Color {
	return c.pixels[c.offset(x, y)]
}

// Set writes the color at (x, y). Out-of-range coordinates panic.
func (c *Canvas) Set(x, y int, col geom.Color) {
	c.pixels[c.offset(x, y)] = col
}

// Pixels yields every pixel in row-major order.
func (c *Canvas) Pixels() iter.Seq[geom.Color] {
	return func(yield func(geom.Color) bool) {
		for _, p := range c.pixels {
			if !yield(p) {
				return
			}
		}
	}
}

func (c *Canvas) offset(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic("canvas: pixel out of range")
	}
	return y*c.Width + x
}
