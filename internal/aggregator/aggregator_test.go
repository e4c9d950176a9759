package aggregator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	json "github.com/goccy/go-json"

	"nhl-stats-service/internal/domain"
	"nhl-stats-service/internal/season"
	"nhl-stats-service/internal/testutil"
)

func newService(provider *testutil.StubProvider, workers int) *Service {
	return New(provider, season.New(provider, nil), nil, workers)
}

func TestPlayerStatsEndToEnd(t *testing.T) {
	// Two teams, 3 + 2 players. Player 3 has no splits (filtered out),
	// player 4's stats call fails (kept as an error record).
	teams := []domain.Team{
		testutil.Team(
			testutil.Stub(t, 1, "One", "C"),
			testutil.Stub(t, 2, "Two", "L"),
			testutil.Stub(t, 3, "Three", "G"),
		),
		testutil.Team(
			testutil.Stub(t, 4, "Four", "D"),
			testutil.Stub(t, 5, "Five", "R"),
		),
	}

	provider := &testutil.StubProvider{
		CurrentSeasonFn: func(ctx context.Context) (domain.Season, error) {
			return "20192020", nil
		},
		FetchTeamsFn: func(ctx context.Context) ([]domain.Team, error) {
			return teams, nil
		},
		FetchPlayerStatsFn: func(ctx context.Context, playerID int64, s domain.Season) (json.RawMessage, bool, error) {
			if s != "20192020" {
				t.Errorf("expected resolved season bound to fetch, got %s", s)
			}
			switch playerID {
			case 3:
				return nil, false, nil
			case 4:
				return nil, false, errors.New("upstream 503")
			default:
				return json.RawMessage(`{"goals":` + string(rune('0'+playerID)) + `}`), true, nil
			}
		},
	}

	records := newService(provider, 4).PlayerStats(context.Background())

	if len(records) != 4 {
		t.Fatalf("expected 4 records (5 players minus 1 filtered), got %d", len(records))
	}
	if records[0].Player.ID != 1 || records[1].Player.ID != 2 {
		t.Fatalf("expected traversal order preserved, got %d then %d", records[0].Player.ID, records[1].Player.ID)
	}
	if records[2].Err != "Problem retrieving player stats" {
		t.Fatalf("expected error record for player 4, got %+v", records[2])
	}
	if records[3].Player.ID != 5 {
		t.Fatalf("expected player 5 last, got %+v", records[3])
	}
	if string(records[0].Stats) != `{"goals":1}` {
		t.Fatalf("unexpected stats payload %s", records[0].Stats)
	}
	if string(records[0].Position) != `{"code":"C"}` {
		t.Fatalf("unexpected position payload %s", records[0].Position)
	}
}

func TestPlayerStatsTeamListFailure(t *testing.T) {
	provider := &testutil.StubProvider{
		FetchTeamsFn: func(ctx context.Context) ([]domain.Team, error) {
			return nil, errors.New("upstream 502")
		},
	}

	records := newService(provider, 4).PlayerStats(context.Background())

	if records == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(records) != 0 {
		t.Fatalf("expected empty aggregate, got %d records", len(records))
	}
}

func TestPlayerStatsEmptyTeamList(t *testing.T) {
	provider := &testutil.StubProvider{
		FetchTeamsFn: func(ctx context.Context) ([]domain.Team, error) {
			return []domain.Team{}, nil
		},
	}

	records := newService(provider, 4).PlayerStats(context.Background())
	if len(records) != 0 {
		t.Fatalf("expected empty aggregate, got %d", len(records))
	}
}

func TestPlayerStatsMissingPlayerID(t *testing.T) {
	var fetches int32
	provider := &testutil.StubProvider{
		FetchTeamsFn: func(ctx context.Context) ([]domain.Team, error) {
			return []domain.Team{testutil.Team(testutil.Stub(t, 0, "Nameless", "C"))}, nil
		},
		FetchPlayerStatsFn: func(ctx context.Context, playerID int64, s domain.Season) (json.RawMessage, bool, error) {
			atomic.AddInt32(&fetches, 1)
			return nil, false, nil
		},
	}

	records := newService(provider, 4).PlayerStats(context.Background())

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Err != "Player id missing" {
		t.Fatalf("expected missing-id error record, got %+v", records[0])
	}
	if atomic.LoadInt32(&fetches) != 0 {
		t.Fatal("expected no upstream fetch for identity-less stub")
	}
}

func TestPlayerStatsBoundedConcurrency(t *testing.T) {
	const workers = 3

	stubs := make([]domain.PlayerStub, 0, 24)
	for i := int64(1); i <= 24; i++ {
		stubs = append(stubs, testutil.Stub(t, i, "P", "C"))
	}

	var inFlight, peak int32
	var mu sync.Mutex
	provider := &testutil.StubProvider{
		FetchTeamsFn: func(ctx context.Context) ([]domain.Team, error) {
			return []domain.Team{testutil.Team(stubs...)}, nil
		},
		FetchPlayerStatsFn: func(ctx context.Context, playerID int64, s domain.Season) (json.RawMessage, bool, error) {
			cur := atomic.AddInt32(&inFlight, 1)
			mu.Lock()
			if cur > peak {
				peak = cur
			}
			mu.Unlock()
			defer atomic.AddInt32(&inFlight, -1)
			return json.RawMessage(`{"goals":0}`), true, nil
		},
	}

	records := newService(provider, workers).PlayerStats(context.Background())

	if len(records) != 24 {
		t.Fatalf("expected 24 records, got %d", len(records))
	}
	mu.Lock()
	defer mu.Unlock()
	if peak > workers {
		t.Fatalf("expected at most %d in-flight fetches, observed %d", workers, peak)
	}
}

func TestNewDefaultsWorkerCount(t *testing.T) {
	svc := New(&testutil.StubProvider{}, season.New(nil, nil), nil, 0)
	if svc.workers != defaultWorkerCount {
		t.Fatalf("expected default worker count, got %d", svc.workers)
	}
}
