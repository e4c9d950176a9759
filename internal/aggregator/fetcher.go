package aggregator

import (
	"context"
	"log/slog"

	"nhl-stats-service/internal/domain"
	"nhl-stats-service/internal/logging"
)

const (
	statsFetchErrorMsg = "Problem retrieving player stats"
	missingIDErrorMsg  = "Player id missing"
)

// fetchPlayer combines one roster stub with that player's season stats.
// A nil return means the player has no usable stats for the season and is
// filtered out downstream. Upstream failures degrade to an error record;
// they never abort the batch.
func (s *Service) fetchPlayer(ctx context.Context, stub domain.PlayerStub, currentSeason domain.Season) *domain.PlayerRecord {
	if stub.Person.ID == 0 {
		// A stub without an identity would only produce a guaranteed-404
		// upstream call; surface the problem instead of querying a
		// sentinel id.
		logging.Warn(s.logger, "roster entry without player id", "full_name", stub.Person.FullName)
		rec := domain.ErrorRecord(missingIDErrorMsg)
		return &rec
	}

	stat, ok, err := s.provider.FetchPlayerStats(ctx, stub.Person.ID, currentSeason)
	if err != nil {
		logging.Warn(s.logger, "player stats fetch failed",
			slog.Int64(logging.FieldPlayerID, stub.Person.ID), "err", err)
		rec := domain.ErrorRecord(statsFetchErrorMsg)
		return &rec
	}
	if !ok {
		return nil
	}

	return &domain.PlayerRecord{
		Player:   stub.Person,
		Stats:    stat,
		Position: stub.Position,
	}
}
