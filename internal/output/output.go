// Package output converts a canvas to a display image and writes it to
// disk. Color channels are clamped to [0, 1] and quantized to 8 bits
// here, at the boundary; upstream arithmetic keeps the full range.
package output

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"github.com/arjandepooter/raytracing/internal/canvas"
)

// ToNRGBA quantizes the canvas to an 8-bit NRGBA image: each channel is
// clamped to [0, 1], scaled to 0–255 and truncated. Alpha is opaque.
func ToNRGBA(c *canvas.Canvas) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	i := 0
	for p := range c.Pixels() {
		clamped := p.Clamp()
		img.Pix[i] = uint8(clamped.R() * 255)
		img.Pix[i+1] = uint8(clamped.G() * 255)
		img.Pix[i+2] = uint8(clamped.B() * 255)
		img.Pix[i+3] = 255
		i += 4
	}
	return img
}

// WriteFile encodes img to path, picking the format from the filename
// extension: .png, .jpg/.jpeg, .webp or .tga.
func WriteFile(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, nil)
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".tga":
		err = tga.Encode(f, img)
	default:
		return fmt.Errorf("output: unknown image extension: %s", path)
	}
	if err != nil {
		return fmt.Errorf("output: encode %s: %w", path, err)
	}

	return nil
}

// Save quantizes the canvas and writes it to path.
func Save(c *canvas.Canvas, path string) error {
	return WriteFile(ToNRGBA(c), path)
}
