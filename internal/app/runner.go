// Package app wires the fetch pipeline: fetch raw payload, validate, persist
// the raw response, flatten projections, and export rows. The pipeline is
// fully sequential; outputs are written only after the payload has parsed.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"ffl-projections/internal/config"
	"ffl-projections/internal/domain"
	"ffl-projections/internal/export"
	"ffl-projections/internal/logging"
	"ffl-projections/internal/metrics"
	"ffl-projections/internal/projection"
	"ffl-projections/internal/providers"
	"ffl-projections/internal/providers/espn"
	"ffl-projections/internal/snapshots"
)

// Options configures a Runner. Source and Snapshots default to the espn
// client and a debug-dir writer when unset.
type Options struct {
	Config    config.Config
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Source    providers.PlayerSource
	Snapshots *snapshots.Writer
}

// Runner executes one fetch-and-export run.
type Runner struct {
	cfg       config.Config
	logger    *slog.Logger
	metrics   *metrics.Recorder
	source    providers.PlayerSource
	snapshots *snapshots.Writer
}

// New constructs a Runner from the given options.
func New(opts Options) *Runner {
	r := &Runner{
		cfg:       opts.Config,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		source:    opts.Source,
		snapshots: opts.Snapshots,
	}
	if r.snapshots == nil {
		r.snapshots = snapshots.NewWriter(r.cfg.Outputs.DebugDir, r.logger)
	}
	if r.source == nil {
		r.source = espn.NewClient(espn.Config{
			BaseURL:   r.cfg.ESPN.BaseURL,
			Season:    r.cfg.Season,
			SWID:      r.cfg.ESPN.SWID,
			S2:        r.cfg.ESPN.S2,
			Timeout:   r.cfg.ESPN.Timeout,
			Logger:    r.logger,
			Artifacts: r.snapshots,
			Metrics:   r.metrics,
		})
	}
	return r
}

// Run performs the full pipeline once.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	err := r.run(ctx, start)
	r.metrics.RecordRun(time.Since(start), err)
	return err
}

func (r *Runner) run(ctx context.Context, start time.Time) error {
	if err := r.cfg.Validate(); err != nil {
		return err
	}

	res, err := r.source.FetchPlayersRaw(ctx)
	if err != nil {
		return err
	}
	if err := espn.ValidateBody(res.Body); err != nil {
		return err
	}
	players, err := espn.ParsePlayers(res.Body)
	if err != nil {
		return err
	}
	r.metrics.RecordPlayersParsed(len(players))

	if err := r.snapshots.WriteRaw(r.cfg.Outputs.JSONPath, res.Body); err != nil {
		return err
	}

	rows := projection.Flatten(players, r.cfg.Season)
	if err := export.WriteCSV(r.cfg.Outputs.CSVPath, rows); err != nil {
		return err
	}
	r.metrics.RecordRowsExported(len(rows))

	if err := r.snapshots.RecordRun(snapshots.RunRecord{
		Season:   r.cfg.Season,
		Endpoint: res.Endpoint,
		Players:  len(players),
		Rows:     len(rows),
		JSONPath: r.cfg.Outputs.JSONPath,
		CSVPath:  r.cfg.Outputs.CSVPath,
	}); err != nil {
		logging.Warn(r.logger, "run manifest not updated", "error", err)
	}

	logging.Info(r.logger, "run complete",
		logging.FieldSeason, r.cfg.Season,
		logging.FieldEndpoint, res.Endpoint,
		"players", len(players),
		"rows", len(rows),
		"rows_with_points", countWithPoints(rows),
		"positions", positionBreakdown(rows),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func countWithPoints(rows []domain.Row) int {
	n := 0
	for _, row := range rows {
		if row.ProjPoints != nil {
			n++
		}
	}
	return n
}

// positionBreakdown summarizes exported rows per fantasy position, e.g.
// "QB:32 RB:81 other:4". Position ids without a fantasy label are grouped
// under "other".
func positionBreakdown(rows []domain.Row) string {
	counts := make(map[string]int)
	for _, row := range rows {
		label := domain.PositionName(row.PositionID)
		if label == "" {
			label = "other"
		}
		counts[label]++
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("%s:%d", label, counts[label]))
	}
	return strings.Join(parts, " ")
}
