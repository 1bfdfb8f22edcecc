package config

import "time"

const (
	envSeason      = "FFL_SEASON"
	envOutJSON     = "FFL_OUT_JSON"
	envOutCSV      = "FFL_OUT_CSV"
	envDebugDir    = "FFL_DEBUG_DIR"
	envLogLevel    = "LOG_LEVEL"
	envLogFormat   = "LOG_FORMAT"
	envMetricsOn   = "METRICS_ENABLED"
	envMetricsPort = "METRICS_PORT"
	envOtelEnd     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService = "OTEL_SERVICE_NAME"
	envOtelInsec   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultDebugDir    = "data/debug"
	defaultMetricsPort = "9090"
	defaultServiceName = "ffl-projections"

	// Conservative default; the primary endpoint can take a while to build
	// the full projection table server-side.
	defaultHTTPTimeout = 60 * time.Second
)
