package testutil

import (
	"context"

	json "github.com/goccy/go-json"

	"nhl-stats-service/internal/domain"
)

// StubProvider is a StatsProvider with overridable behavior per call.
// Unset functions return benign defaults.
type StubProvider struct {
	CurrentSeasonFn    func(ctx context.Context) (domain.Season, error)
	FetchTeamsFn       func(ctx context.Context) ([]domain.Team, error)
	FetchPlayerStatsFn func(ctx context.Context, playerID int64, season domain.Season) (json.RawMessage, bool, error)
}

func (s *StubProvider) CurrentSeason(ctx context.Context) (domain.Season, error) {
	if s.CurrentSeasonFn != nil {
		return s.CurrentSeasonFn(ctx)
	}
	return domain.DefaultSeason, nil
}

func (s *StubProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	if s.FetchTeamsFn != nil {
		return s.FetchTeamsFn(ctx)
	}
	return []domain.Team{}, nil
}

func (s *StubProvider) FetchPlayerStats(ctx context.Context, playerID int64, season domain.Season) (json.RawMessage, bool, error) {
	if s.FetchPlayerStatsFn != nil {
		return s.FetchPlayerStatsFn(ctx, playerID, season)
	}
	return nil, false, nil
}
