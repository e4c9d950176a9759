package providers

import (
	"context"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"

	"nhl-stats-service/internal/domain"
	"nhl-stats-service/internal/metrics"
)

// observedProvider wraps a StatsProvider with per-call metrics and logging.
// It performs exactly one attempt per call; there is no retry policy.
type observedProvider struct {
	inner   StatsProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
}

// NewObservedProvider decorates the given provider with call metrics and
// structured logging under the given provider name.
func NewObservedProvider(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) StatsProvider {
	if name == "" {
		name = "provider"
	}
	return &observedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
	}
}

func (o *observedProvider) CurrentSeason(ctx context.Context) (domain.Season, error) {
	if o.inner == nil {
		return "", ErrProviderUnavailable
	}
	start := time.Now()
	season, err := o.inner.CurrentSeason(ctx)
	o.observe(ctx, "current season fetch", start, err)
	return season, err
}

func (o *observedProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	if o.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	teams, err := o.inner.FetchTeams(ctx)
	o.observe(ctx, "team list fetch", start, err)
	return teams, err
}

func (o *observedProvider) FetchPlayerStats(ctx context.Context, playerID int64, season domain.Season) (json.RawMessage, bool, error) {
	if o.inner == nil {
		return nil, false, ErrProviderUnavailable
	}
	start := time.Now()
	stat, ok, err := o.inner.FetchPlayerStats(ctx, playerID, season)
	o.observe(ctx, "player stats fetch", start, err, slog.Int64("player_id", playerID), slog.String("season", string(season)))
	return stat, ok, err
}

func (o *observedProvider) observe(ctx context.Context, call string, start time.Time, err error, args ...any) {
	duration := time.Since(start)
	o.metrics.RecordProviderAttempt(o.name, duration, err)

	if rlErr, ok := AsRateLimitError(err); ok {
		o.metrics.RecordRateLimit(o.name, rlErr.RetryAfter)
	}

	if err != nil {
		args = append(args, "err", err)
		logWithProvider(ctx, o.logger, slog.LevelWarn, o.name, call+" failed", args...)
		return
	}
	args = append(args, slog.Int64("duration_ms", duration.Milliseconds()))
	logWithProvider(ctx, o.logger, slog.LevelDebug, o.name, call, args...)
}
