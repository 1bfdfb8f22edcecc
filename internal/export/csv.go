// Package export writes the flattened rows to disk.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"ffl-projections/internal/domain"
)

// Header is the fixed column set of the export file.
var Header = []string{"player_id", "name", "position_id", "team_id", "season", "proj_points"}

// WriteCSV writes a header row plus one row per input row. The file is
// staged next to the target and renamed into place so a failed run never
// leaves a partial export behind.
func WriteCSV(path string, rows []domain.Row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(Header)
	for _, row := range rows {
		if writeErr != nil {
			break
		}
		writeErr = w.Write(record(row))
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writing export file: %w", writeErr)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalizing export file: %w", err)
	}
	return nil
}

// record renders one row; a nil points value becomes an empty cell, which
// keeps "no projection" distinguishable from a genuine 0.
func record(row domain.Row) []string {
	points := ""
	if row.ProjPoints != nil {
		points = strconv.FormatFloat(*row.ProjPoints, 'f', -1, 64)
	}
	return []string{
		strconv.Itoa(row.PlayerID),
		row.Name,
		strconv.Itoa(row.PositionID),
		strconv.Itoa(row.TeamID),
		strconv.Itoa(row.Season),
		points,
	}
}
