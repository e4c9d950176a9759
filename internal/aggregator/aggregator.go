// Package aggregator runs the fan-out/fan-in pipeline: all teams, every
// roster entry, one stats fetch per player, joined into one ordered list.
package aggregator

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"nhl-stats-service/internal/domain"
	"nhl-stats-service/internal/logging"
	"nhl-stats-service/internal/providers"
	"nhl-stats-service/internal/season"
)

const defaultWorkerCount = 60

// Service aggregates rosters and per-player season stats into the combined
// player list. Each call is an independent pipeline run; the Service keeps
// no state between calls.
type Service struct {
	provider providers.StatsProvider
	seasons  *season.Resolver
	logger   *slog.Logger
	workers  int
}

// New constructs a Service. workerCount bounds in-flight upstream requests
// per fan-out phase regardless of roster sizes.
func New(provider providers.StatsProvider, seasons *season.Resolver, logger *slog.Logger, workerCount int) *Service {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	return &Service{
		provider: provider,
		seasons:  seasons,
		logger:   logger,
		workers:  workerCount,
	}
}

// PlayerStats runs one full aggregation pass and returns the combined,
// filtered player list. It never returns an error: every upstream failure
// resolves to a value. A failed team-list fetch yields an empty list; a
// failed per-player fetch yields an error record in place.
func (s *Service) PlayerStats(ctx context.Context) []domain.PlayerRecord {
	currentSeason := s.seasons.Resolve(ctx, "")

	teams, err := s.provider.FetchTeams(ctx)
	if err != nil {
		logging.Warn(s.logger, "team list fetch failed, serving empty aggregate", "err", err)
		return []domain.PlayerRecord{}
	}

	stubs := s.collectStubs(teams)
	records := s.fetchAll(ctx, stubs, currentSeason)

	filtered := domain.FilterRecords(records)
	logging.Info(s.logger, "aggregate built",
		slog.String(logging.FieldSeason, string(currentSeason)),
		slog.Int(logging.FieldTeamCount, len(teams)),
		slog.Int(logging.FieldCount, len(filtered)),
	)
	return filtered
}

// collectStubs extracts every roster concurrently, then concatenates in
// team order so the final list order follows the upstream team order.
func (s *Service) collectStubs(teams []domain.Team) []domain.PlayerStub {
	rosters := make([][]domain.PlayerStub, len(teams))
	s.forEach(len(teams), func(i int) {
		rosters[i] = teams[i].Players()
	})

	total := 0
	for _, roster := range rosters {
		total += len(roster)
	}
	stubs := make([]domain.PlayerStub, 0, total)
	for _, roster := range rosters {
		stubs = append(stubs, roster...)
	}
	return stubs
}

// fetchAll resolves stats for every stub concurrently. Results land in an
// index-addressed slice so output order matches input order.
func (s *Service) fetchAll(ctx context.Context, stubs []domain.PlayerStub, currentSeason domain.Season) []*domain.PlayerRecord {
	records := make([]*domain.PlayerRecord, len(stubs))
	s.forEach(len(stubs), func(i int) {
		records[i] = s.fetchPlayer(ctx, stubs[i], currentSeason)
	})
	return records
}

// forEach runs fn(0..n-1) on a bounded worker pool and waits for all units.
// Units are independent; no unit's completion depends on another's.
func (s *Service) forEach(n int, fn func(int)) {
	if n == 0 {
		return
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		logging.Warn(s.logger, "worker pool unavailable, running serially", "err", err)
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			fn(i)
		}); err != nil {
			// Submission only fails on a released pool; run the unit
			// inline rather than dropping it.
			fn(i)
			wg.Done()
		}
	}
	wg.Wait()
}
