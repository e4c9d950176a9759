package providers

import (
	"context"

	json "github.com/goccy/go-json"

	"nhl-stats-service/internal/domain"
)

// SeasonProvider looks up the current upstream season.
type SeasonProvider interface {
	// CurrentSeason returns the current season id. An empty season with a
	// nil error means the upstream answered but carried no usable id.
	CurrentSeason(ctx context.Context) (domain.Season, error)
}

// TeamProvider fetches the full team list with rosters expanded.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]domain.Team, error)
}

// PlayerStatsProvider fetches one player's single-season statistics.
type PlayerStatsProvider interface {
	// FetchPlayerStats returns the raw stat object for the player-season
	// pair. ok is false when the upstream answered 200 but the stats are
	// structurally missing (no stats list, no splits); that player simply
	// has no usable stats for the season.
	FetchPlayerStats(ctx context.Context, playerID int64, season domain.Season) (stat json.RawMessage, ok bool, err error)
}

// StatsProvider combines all provider capabilities.
type StatsProvider interface {
	SeasonProvider
	TeamProvider
	PlayerStatsProvider
}
