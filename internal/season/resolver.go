// Package season resolves which statistics season to query: an explicit
// validated override, a live lookup of the current season, or the default.
package season

import (
	"context"
	"log/slog"

	"nhl-stats-service/internal/domain"
	"nhl-stats-service/internal/logging"
	"nhl-stats-service/internal/providers"
)

// Resolver turns an optional requested season into a valid season id.
type Resolver struct {
	provider providers.SeasonProvider
	logger   *slog.Logger
}

// New constructs a Resolver backed by the given season provider.
func New(provider providers.SeasonProvider, logger *slog.Logger) *Resolver {
	return &Resolver{provider: provider, logger: logger}
}

// Resolve returns a valid season id, never an error. An empty requested
// season triggers one upstream current-season lookup; any failure there,
// and any malformed requested season, falls back to the default.
func (r *Resolver) Resolve(ctx context.Context, requested domain.Season) domain.Season {
	if requested != "" {
		if requested.Valid() {
			return requested
		}
		logging.Warn(r.logger, "malformed season requested, using default",
			slog.String(logging.FieldSeason, string(requested)))
		return domain.DefaultSeason
	}

	if r.provider == nil {
		return domain.DefaultSeason
	}

	current, err := r.provider.CurrentSeason(ctx)
	if err != nil {
		logging.Warn(r.logger, "current season lookup failed, using default", "err", err)
		return domain.DefaultSeason
	}
	if !current.Valid() {
		logging.Warn(r.logger, "current season response unusable, using default",
			slog.String(logging.FieldSeason, string(current)))
		return domain.DefaultSeason
	}
	return current
}
