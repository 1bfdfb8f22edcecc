// Package snapshots persists the raw upstream payload, a manifest of runs,
// and best-effort debug artifacts.
package snapshots

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"ffl-projections/internal/logging"
)

// Writer persists run outputs. Each Writer covers one run, identified by a
// fresh run id that groups its debug artifacts.
type Writer struct {
	debugDir string
	runID    string
	logger   *slog.Logger
	now      func() time.Time
}

// NewWriter constructs a writer whose debug artifacts land under debugDir.
func NewWriter(debugDir string, logger *slog.Logger) *Writer {
	return &Writer{
		debugDir: debugDir,
		runID:    uuid.NewString(),
		logger:   logger,
		now:      time.Now,
	}
}

// RunID returns the identifier grouping this run's debug artifacts.
func (w *Writer) RunID() string {
	if w == nil {
		return ""
	}
	return w.runID
}

// WriteRaw writes the payload verbatim (UTF-8, no byte-order mark) to the
// given path. The file is staged and renamed into place, so a prior run's
// artifact survives untouched if anything fails.
func (w *Writer) WriteRaw(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("raw output path required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating raw output directory: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing raw payload: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalizing raw payload: %w", err)
	}
	return nil
}

// SaveArtifact writes one debug artifact under the debug directory,
// prefixed with the run id. Artifacts are best-effort: failures are logged
// and swallowed, never surfaced to the run.
func (w *Writer) SaveArtifact(name string, data []byte) {
	if w == nil || w.debugDir == "" || name == "" {
		return
	}
	if err := os.MkdirAll(w.debugDir, 0o755); err != nil {
		logging.Warn(w.logger, "debug artifact skipped", logging.FieldPath, w.debugDir, "error", err)
		return
	}
	path := filepath.Join(w.debugDir, fmt.Sprintf("%s-%s", w.runID, name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logging.Warn(w.logger, "debug artifact skipped", logging.FieldPath, path, "error", err)
	}
}
