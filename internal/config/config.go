// Package config holds render settings loaded from an optional JSON
// file with CLI flag overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable render settings.
type Config struct {
	Size        int    `json:"size"`
	Frames      int    `json:"frames"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
	OutputDir   string `json:"output_dir"`
	Format      string `json:"format"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Size        int
	Frames      int
	Supersample int
	Workers     int
	OutputDir   string
	Format      string
}

// Load reads a JSON config file. Fields not set in the file keep
// their zero values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI flag overrides, then fills remaining zero fields
// with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}

	if c.Size <= 0 {
		c.Size = 256
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = "png"
	}
}
