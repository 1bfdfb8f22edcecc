package snapshots

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	manifestName = "manifest.json"

	// maxManifestRuns bounds how much run history the manifest keeps.
	maxManifestRuns = 20
)

// RunRecord summarizes one completed run for the manifest.
type RunRecord struct {
	ID        string    `json:"id"`
	Season    int       `json:"season"`
	Endpoint  string    `json:"endpoint"`
	FetchedAt time.Time `json:"fetchedAt"`
	Players   int       `json:"players"`
	Rows      int       `json:"rows"`
	JSONPath  string    `json:"jsonPath"`
	CSVPath   string    `json:"csvPath"`
}

type manifest struct {
	Runs []RunRecord `json:"runs"`
}

// RecordRun appends a run record to the manifest in the debug directory,
// keeping the most recent entries only.
func (w *Writer) RecordRun(rec RunRecord) error {
	if w == nil || w.debugDir == "" {
		return nil
	}
	if rec.ID == "" {
		rec.ID = w.runID
	}
	if rec.FetchedAt.IsZero() {
		rec.FetchedAt = w.now().UTC()
	}

	if err := os.MkdirAll(w.debugDir, 0o755); err != nil {
		return fmt.Errorf("creating debug directory: %w", err)
	}

	path := filepath.Join(w.debugDir, manifestName)
	m, _ := readManifest(path)
	m.Runs = append(m.Runs, rec)
	if len(m.Runs) > maxManifestRuns {
		m.Runs = m.Runs[len(m.Runs)-maxManifestRuns:]
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalizing manifest: %w", err)
	}
	return nil
}

// LastRun returns the most recent manifest entry, if any.
func (w *Writer) LastRun() (RunRecord, bool) {
	if w == nil || w.debugDir == "" {
		return RunRecord{}, false
	}
	m, err := readManifest(filepath.Join(w.debugDir, manifestName))
	if err != nil || len(m.Runs) == 0 {
		return RunRecord{}, false
	}
	return m.Runs[len(m.Runs)-1], true
}

func readManifest(path string) (manifest, error) {
	var m manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return manifest{}, err
	}
	return m, nil
}
