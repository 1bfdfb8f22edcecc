package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingCredentials is returned by Validate when either session
// credential is absent. The run must fail before any network activity.
var ErrMissingCredentials = errors.New("missing credentials")

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string
	Format string
}

// Config holds runtime configuration for a run.
type Config struct {
	Season  int
	Outputs OutputConfig
	ESPN    ESPNConfig
	Metrics MetricsConfig
	Log     LogConfig
}

// Load reads configuration from environment variables with sensible defaults.
// Output paths are left empty here; ApplyDefaults derives them from the
// season once flag overrides have been applied.
func Load() Config {
	return Config{
		Season:  intEnvOrDefault(envSeason, defaultSeason()),
		Outputs: loadOutputs(),
		ESPN:    loadESPN(),
		Metrics: loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, ""),
			Format: envOrDefault(envLogFormat, ""),
		},
	}
}

// ApplyDefaults fills in values that depend on other settings.
func (c *Config) ApplyDefaults() {
	if c.Season <= 0 {
		c.Season = defaultSeason()
	}
	c.Outputs.applyDefaults(c.Season)
}

// Validate checks the fail-fast preconditions for a fetch run.
func (c Config) Validate() error {
	if c.ESPN.SWID == "" {
		return fmt.Errorf("%w: SWID cookie (set --swid or %s)", ErrMissingCredentials, envEspnSWID)
	}
	if c.ESPN.S2 == "" {
		return fmt.Errorf("%w: espn_s2 cookie (set --espn-s2 or %s)", ErrMissingCredentials, envEspnS2)
	}
	if c.Season <= 0 {
		return fmt.Errorf("season must be a positive year, got %d", c.Season)
	}
	return nil
}

// defaultSeason is the current calendar year; NFL seasons are labeled by
// their starting year.
func defaultSeason() int {
	return time.Now().Year()
}
