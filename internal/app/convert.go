package app

import (
	"fmt"
	"os"

	"ffl-projections/internal/export"
	"ffl-projections/internal/logging"
	"ffl-projections/internal/projection"
	"ffl-projections/internal/providers/espn"
)

// Convert flattens an already-downloaded players payload to CSV without any
// network access. Credentials are not required for this path.
func (r *Runner) Convert(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input payload: %w", err)
	}
	if err := espn.ValidateBody(data); err != nil {
		return err
	}
	players, err := espn.ParsePlayers(data)
	if err != nil {
		return err
	}
	r.metrics.RecordPlayersParsed(len(players))

	rows := projection.Flatten(players, r.cfg.Season)
	if err := export.WriteCSV(outputPath, rows); err != nil {
		return err
	}
	r.metrics.RecordRowsExported(len(rows))

	logging.Info(r.logger, "convert complete",
		logging.FieldSeason, r.cfg.Season,
		logging.FieldPath, outputPath,
		"players", len(players),
		"rows", len(rows),
		"rows_with_points", countWithPoints(rows),
		"positions", positionBreakdown(rows),
	)
	return nil
}
