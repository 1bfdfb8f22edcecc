// Package cli wires the command-line surface: a fetch command that runs the
// full download-and-flatten pipeline and a convert command that re-flattens a
// previously saved payload offline.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ffl-projections/internal/app"
	"ffl-projections/internal/config"
	"ffl-projections/internal/logging"
	"ffl-projections/internal/metrics"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagSeason    int
	flagSWID      string
	flagS2        string
	flagBaseURL   string
	flagOutJSON   string
	flagOutCSV    string
	flagDebugDir  string
	flagTimeout   time.Duration
	flagLogLevel  string
	flagLogFormat string
	flagMetrics   bool
)

// NewRootCmd creates the root command with its subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ffl-projections",
		Short: "Fetch and flatten ESPN fantasy football season projections",
		Long: `Downloads the full-season player projections payload from the ESPN
fantasy API, saves the raw JSON verbatim, and flattens each player to one
CSV row of projected season points.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.IntVar(&flagSeason, "season", 0, "Season year (default: current year, or FFL_SEASON)")
	pf.StringVar(&flagSWID, "swid", "", "SWID session cookie (or ESPN_SWID)")
	pf.StringVar(&flagS2, "espn-s2", "", "espn_s2 session cookie (or ESPN_S2)")
	pf.StringVar(&flagBaseURL, "base-url", "", "Override the upstream API base URL")
	pf.StringVar(&flagOutJSON, "out-json", "", "Raw payload destination (default espn_projections_<season>.json)")
	pf.StringVar(&flagOutCSV, "out-csv", "", "CSV destination (default espn_projections_<season>_season.csv)")
	pf.StringVar(&flagDebugDir, "debug-dir", "", "Directory for debug artifacts and the run manifest")
	pf.DurationVar(&flagTimeout, "timeout", 0, "Per-request HTTP timeout")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFormat, "log-format", "", "Log format: text or json")
	pf.BoolVar(&flagMetrics, "metrics", false, "Expose Prometheus metrics while the run is active")

	cmd.AddCommand(newFetchCmd(), newConvertCmd())
	return cmd
}

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the projections payload and export the season CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)
			logger := newLogger(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rec, promHandler, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
				Enabled:      cfg.Metrics.Enabled,
				ServiceName:  cfg.Metrics.ServiceName,
				OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
				OtlpInsecure: cfg.Metrics.OtlpInsecure,
			})
			if err != nil {
				return fmt.Errorf("setting up telemetry: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					logging.Warn(logger, "telemetry shutdown failed", "error", err)
				}
			}()

			stopMetrics := serveMetrics(cfg, logger, promHandler)
			defer stopMetrics()

			runner := app.New(app.Options{Config: cfg, Logger: logger, Metrics: rec})
			if err := runner.Run(ctx); err != nil {
				logging.Error(logger, "run failed", err)
				return err
			}
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input.json> [output.csv]",
		Short: "Flatten a previously saved payload to CSV without fetching",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)
			logger := newLogger(cfg)

			output := cfg.Outputs.CSVPath
			if len(args) == 2 {
				output = args[1]
			}

			runner := app.New(app.Options{Config: cfg, Logger: logger})
			if err := runner.Convert(args[0], output); err != nil {
				logging.Error(logger, "convert failed", err)
				return err
			}
			return nil
		},
	}
}

// loadConfig reads the environment and applies any explicitly set flags on
// top. Flags win over environment variables; defaults fill in last.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load()
	f := cmd.Flags()

	if f.Changed("season") {
		cfg.Season = flagSeason
	}
	if f.Changed("swid") {
		cfg.ESPN.SWID = flagSWID
	}
	if f.Changed("espn-s2") {
		cfg.ESPN.S2 = flagS2
	}
	if f.Changed("base-url") {
		cfg.ESPN.BaseURL = flagBaseURL
	}
	if f.Changed("out-json") {
		cfg.Outputs.JSONPath = flagOutJSON
	}
	if f.Changed("out-csv") {
		cfg.Outputs.CSVPath = flagOutCSV
	}
	if f.Changed("debug-dir") {
		cfg.Outputs.DebugDir = flagDebugDir
	}
	if f.Changed("timeout") {
		cfg.ESPN.Timeout = flagTimeout
	}
	if f.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = flagLogFormat
	}
	if f.Changed("metrics") {
		cfg.Metrics.Enabled = flagMetrics
	}

	cfg.ApplyDefaults()
	return cfg
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Metrics.ServiceName,
	})
}

// serveMetrics exposes the Prometheus handler for the duration of the run.
// The returned func stops the listener; it is a no-op when metrics are off.
func serveMetrics(cfg config.Config, logger *slog.Logger, handler http.Handler) func() {
	if !cfg.Metrics.Enabled || handler == nil {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{Handler: mux}

	ln, err := net.Listen("tcp", ":"+cfg.Metrics.Port)
	if err != nil {
		logging.Warn(logger, "metrics listener unavailable", "error", err, "port", cfg.Metrics.Port)
		return func() {}
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, "metrics server stopped", "error", err)
		}
	}()
	logging.Info(logger, "metrics exposed", "port", cfg.Metrics.Port)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}
