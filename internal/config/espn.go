package config

import "time"

const (
	envEspnBaseURL = "ESPN_BASE_URL"
	envEspnSWID    = "ESPN_SWID"
	envEspnS2      = "ESPN_S2"
	envEspnTimeout = "ESPN_HTTP_TIMEOUT"

	defaultEspnBaseURL = "https://lm-api-reads.fantasy.espn.com"
)

// ESPNConfig controls how we talk to the ESPN fantasy API. SWID and S2 are
// the two session cookie values; both are opaque strings supplied by the
// caller and required before any network activity.
type ESPNConfig struct {
	BaseURL string
	SWID    string
	S2      string
	Timeout time.Duration
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envEspnBaseURL, defaultEspnBaseURL),
		SWID:    envOrDefault(envEspnSWID, ""),
		S2:      envOrDefault(envEspnS2, ""),
		Timeout: durationEnvOrDefault(envEspnTimeout, defaultHTTPTimeout),
	}
}
