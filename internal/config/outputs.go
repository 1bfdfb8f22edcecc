package config

import "fmt"

// OutputConfig holds the file destinations for one run.
type OutputConfig struct {
	JSONPath string // raw upstream payload, written verbatim
	CSVPath  string // flattened rows
	DebugDir string // best-effort debug artifacts and run manifest
}

func loadOutputs() OutputConfig {
	return OutputConfig{
		JSONPath: envOrDefault(envOutJSON, ""),
		CSVPath:  envOrDefault(envOutCSV, ""),
		DebugDir: envOrDefault(envDebugDir, defaultDebugDir),
	}
}

// applyDefaults fills season-derived output paths when none were supplied.
func (o *OutputConfig) applyDefaults(season int) {
	if o.JSONPath == "" {
		o.JSONPath = fmt.Sprintf("espn_projections_%d.json", season)
	}
	if o.CSVPath == "" {
		o.CSVPath = fmt.Sprintf("espn_projections_%d_season.csv", season)
	}
}
