package config

import "time"

const (
	envNHLBaseURL = "NHL_BASE_URL"
	envNHLTimeout = "NHL_TIMEOUT"

	defaultNHLBaseURL = "https://statsapi.web.nhl.com"
	defaultNHLTimeout = 10 * Duration(time.Second)
)

// NHLConfig controls how we talk to the NHL stats API.
type NHLConfig struct {
	BaseURL string
	Timeout Duration
}

func loadNHL() NHLConfig {
	return NHLConfig{
		BaseURL: envOrDefault(envNHLBaseURL, defaultNHLBaseURL),
		Timeout: durationEnvOrDefault(envNHLTimeout, defaultNHLTimeout),
	}
}
