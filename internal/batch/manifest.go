package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry describes one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame int    `json:"frame"`
	Image string `json:"image"`
	Error string `json:"error,omitempty"`
}

// WriteManifest writes a manifest.json listing every frame of a run.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{Frame: r.Frame, Image: r.Path}
		if !r.Success {
			entries[i].Error = r.Error
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("batch: write manifest: %w", err)
	}
	return nil
}
