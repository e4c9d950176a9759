package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envWorkerCount     = "WORKER_COUNT"
	envCacheTTL        = "PLAYERS_CACHE_TTL"
	envRefreshInterval = "REFRESH_INTERVAL"
	envRateLimitMax    = "RATE_LIMIT_REQUESTS"
	envRateLimitWindow = "RATE_LIMIT_WINDOW"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "nhl"
	// Matches the upstream fan-out width the service was tuned with; caps
	// in-flight upstream requests regardless of roster sizes.
	defaultWorkerCount = 60
	// Full aggregate responses are expensive to build; serve them from cache
	// for ten minutes before fanning out again.
	defaultCacheTTL    = 10 * Duration(time.Minute)
	defaultMetricsPort = "9090"

	defaultRateLimitMax    = 120
	defaultRateLimitWindow = Duration(time.Minute)
)
