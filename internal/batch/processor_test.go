package batch

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arjandepooter/raytracing/internal/canvas"
	"github.com/arjandepooter/raytracing/internal/geom"
)

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunRendersAllFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		OutputDir:   dir,
		Format:      "png",
		Size:        4,
		Supersample: 2,
		Workers:     2,
		Frames:      3,
		Logger:      nopLogger(),
	}

	results := Run(cfg, func(frame int) *canvas.Canvas {
		c := canvas.New(8, 8)
		c.Set(frame, frame, geom.NewColor(1, 1, 1))
		return c
	})

	require.Len(t, results, 3)
	for i, r := range results {
		require.Equal(t, i, r.Frame)
		require.True(t, r.Success, r.Error)

		info, err := os.Stat(r.Path)
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	}
}

func TestRunReportsFrameErrors(t *testing.T) {
	cfg := Config{
		OutputDir: t.TempDir(),
		Format:    "nope", // unknown extension fails per frame
		Size:      2,
		Workers:   1,
		Frames:    1,
		Logger:    nopLogger(),
	}

	results := Run(cfg, func(int) *canvas.Canvas {
		return canvas.New(2, 2)
	})

	require.Len(t, results, 1)
	require.False(t, results[0].Success)
	require.NotEmpty(t, results[0].Error)
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	results := []Result{
		{Frame: 0, Path: "frame_0000.png", Success: true},
		{Frame: 1, Path: "frame_0001.png", Error: "boom"},
	}

	require.NoError(t, WriteManifest(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	require.Equal(t, "frame_0000.png", entries[0].Image)
	require.Empty(t, entries[0].Error)
	require.Equal(t, "boom", entries[1].Error)
}
