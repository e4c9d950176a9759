package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	Provider        string
	WorkerCount     int
	CacheTTL        Duration
	RefreshInterval Duration
	RateLimit       RateLimitConfig
	NHL             NHLConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		Provider:        envOrDefault(envProvider, defaultProvider),
		WorkerCount:     intEnvOrDefault(envWorkerCount, defaultWorkerCount),
		CacheTTL:        durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, 0),
		RateLimit:       loadRateLimit(),
		NHL:             loadNHL(),
		Metrics:         loadMetrics(),
	}
}
