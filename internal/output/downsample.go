package output

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled render down to w×h with CatmullRom
// filtering. Quantized renders are fully opaque, so no alpha
// premultiplication pass is needed. Images already within the target
// size are returned unchanged.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
