// Package batch renders animation frames concurrently. Every frame is
// an independent pure computation over value types, so the only shared
// state is the result slice, with one slot per frame.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arjandepooter/raytracing/internal/canvas"
	"github.com/arjandepooter/raytracing/internal/output"
)

// Config holds shared settings for a batch run.
type Config struct {
	OutputDir   string
	Format      string // image extension without the dot: png, jpg, webp, tga
	Size        int    // final image size in pixels (square)
	Supersample int    // render at Size*Supersample, then downsample
	Workers     int
	Frames      int
	Logger      *slog.Logger
}

// RenderFunc produces the canvas for one frame. It must be
// side-effect-free: frames are rendered from multiple goroutines.
type RenderFunc func(frame int) *canvas.Canvas

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Run renders all frames using a worker pool and writes one image per
// frame into cfg.OutputDir.
func Run(cfg Config, render RenderFunc) []Result {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]Result, cfg.Frames)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					logger.Info("progress",
						"frames", p,
						"total", cfg.Frames,
						"rate", fmt.Sprintf("%.1f/sec", float64(p)/elapsed))
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for frame := range frameChan {
				results[frame] = processFrame(cfg, frame, render)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < cfg.Frames; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func processFrame(cfg Config, frame int, render RenderFunc) Result {
	c := render(frame)

	img := output.ToNRGBA(c)
	if cfg.Supersample > 1 {
		img = output.Downsample(img, cfg.Size, cfg.Size)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%04d.%s", frame, cfg.Format))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return Result{Frame: frame, Path: outPath, Error: err.Error()}
	}

	if err := output.WriteFile(img, outPath); err != nil {
		return Result{Frame: frame, Path: outPath, Error: err.Error()}
	}

	return Result{Frame: frame, Path: outPath, Success: true}
}
