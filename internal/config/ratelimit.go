package config

// RateLimitConfig controls per-client request throttling on the public API.
type RateLimitConfig struct {
	// Requests is the number of requests allowed per client per Window.
	// Zero or negative disables throttling.
	Requests int
	Window   Duration
}

func loadRateLimit() RateLimitConfig {
	return RateLimitConfig{
		Requests: intEnvOrDefault(envRateLimitMax, defaultRateLimitMax),
		Window:   durationEnvOrDefault(envRateLimitWindow, defaultRateLimitWindow),
	}
}
