// Command render draws an animated clock face — twelve marks placed
// with scaling, rotation and translation transforms — and writes one
// image per frame. It exists to exercise the geometry core end to end.
package main

import (
	"flag"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/arjandepooter/raytracing/internal/batch"
	"github.com/arjandepooter/raytracing/internal/canvas"
	"github.com/arjandepooter/raytracing/internal/config"
	"github.com/arjandepooter/raytracing/internal/geom"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 1)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Image format: png, jpg, webp or tga (default: png)")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			logger.Error("loading config", "err", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Size:        *size,
		Frames:      *frames,
		Supersample: *supersample,
		Workers:     *workers,
		OutputDir:   *outputDir,
		Format:      *format,
	})

	renderSize := cfg.Size * cfg.Supersample

	logger.Info("rendering",
		"frames", cfg.Frames,
		"size", cfg.Size,
		"supersample", cfg.Supersample,
		"workers", cfg.Workers,
		"output", cfg.OutputDir)

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Frames:      cfg.Frames,
		Logger:      logger,
	}, func(frame int) *canvas.Canvas {
		sweep := 2 * math.Pi * float64(frame) / float64(cfg.Frames)
		return renderClock(renderSize, sweep)
	})

	manifest := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifest, results); err != nil {
		logger.Error("writing manifest", "err", err)
	}

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			logger.Error("frame failed", "frame", r.Frame, "err", r.Error)
		}
	}

	logger.Info("done", "rendered", len(results)-failed, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// renderClock plots twelve hour marks on a square canvas. Each mark
// starts at the twelve o'clock point and is carried to its place by a
// single composed transform: scale to the clock radius, rotate about z,
// translate to the canvas center.
func renderClock(size int, sweep float64) *canvas.Canvas {
	c := canvas.New(size, size)

	radius := 0.375 * float64(size)
	center := float64(size) / 2
	toCanvas := geom.Translate(center, center, 0)

	for hour := 0; hour < 12; hour++ {
		angle := sweep + 2*math.Pi*float64(hour)/12
		placement := toCanvas.
			Mul(geom.RotateZ(angle)).
			Mul(geom.Scale(radius, radius, 1))

		mark := geom.Transform(geom.NewPoint(0, 1, 0), placement)

		shade := 1 - float64(hour)/16
		plot(c, mark, geom.NewColor(shade, shade, 1))
	}

	return c
}

// plot fills a small square around p so marks stay visible after
// downsampling.
func plot(c *canvas.Canvas, p geom.Point, col geom.Color) {
	px, py := int(p.X()), int(p.Y())
	r := c.Width / 128
	if r < 1 {
		r = 1
	}
	for y := py - r; y <= py+r; y++ {
		for x := px - r; x <= px+r; x++ {
			if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
				c.Set(x, y, col)
			}
		}
	}
}
