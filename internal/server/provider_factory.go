package server

import (
	"log/slog"
	"time"

	"nhl-stats-service/internal/config"
	"nhl-stats-service/internal/metrics"
	"nhl-stats-service/internal/providers"
	"nhl-stats-service/internal/providers/fixture"
	"nhl-stats-service/internal/providers/nhl"
)

// providerFactory assembles the upstream provider with the observability wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	base, name := selectProvider(cfg)
	return providers.NewObservedProvider(base, f.logger, f.metrics, name)
}

func selectProvider(cfg config.Config) (providers.StatsProvider, string) {
	switch cfg.Provider {
	case "fixture":
		return fixture.New(), "fixture"
	default:
		client := nhl.NewClient(nhl.Config{
			BaseURL: cfg.NHL.BaseURL,
			Timeout: time.Duration(cfg.NHL.Timeout),
		})
		return client, "nhl"
	}
}
