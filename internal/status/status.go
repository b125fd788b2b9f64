// Package status writes and reads the run status artifact consumed by the
// downstream publisher.
package status

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the artifact name inside the data directory.
const FileName = "status.json"

// Artifact is the single JSON object written once at the end of every run.
// The status field always reports "success"; the run journal carries the
// per-tier truth.
type Artifact struct {
	LastUpdate string `json:"last_update"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// Write records a successful run in dir. The artifact is rewritten whole on
// every run; no prior content is consulted.
func Write(dir, message string) error {
	artifact := Artifact{
		LastUpdate: time.Now().UTC().Format(time.RFC3339),
		Status:     "success",
		Message:    message,
	}
	payload, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal status artifact: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write status artifact: %w", err)
	}
	return nil
}

// Read loads the artifact from dir.
func Read(dir string) (Artifact, error) {
	payload, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return Artifact{}, fmt.Errorf("read status artifact: %w", err)
	}
	var artifact Artifact
	if err := json.Unmarshal(payload, &artifact); err != nil {
		return Artifact{}, fmt.Errorf("parse status artifact: %w", err)
	}
	return artifact, nil
}
