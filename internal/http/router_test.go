package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"nhl-stats-service/internal/domain"
	"nhl-stats-service/internal/http/handlers"
	"nhl-stats-service/internal/testutil"
)

type emptySource struct{}

func (emptySource) PlayerStats(ctx context.Context) []domain.PlayerRecord {
	return []domain.PlayerRecord{}
}

func newTestRouter(t *testing.T, cfg RouterConfig) nethttp.Handler {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = testutil.NewTestLogger()
	}
	h := handlers.NewHandler(emptySource{}, nil, cfg.Logger, nil)
	return NewRouter(h, cfg)
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	for _, path := range []string{"/health", "/ready", "/players"} {
		rr := testutil.Serve(router, nethttp.MethodGet, path, nil)
		if rr.Code != nethttp.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, rr.Code)
		}
	}
}

func TestRouterUnknownPath(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})
	rr := testutil.Serve(router, nethttp.MethodGet, "/nope", nil)
	if rr.Code != nethttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})
	rr := testutil.Serve(router, nethttp.MethodPost, "/players", nil)
	if rr.Code != nethttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})
	rr := testutil.Serve(router, nethttp.MethodGet, "/players", nil)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a request id header")
	}
}

func TestRouterRateLimit(t *testing.T) {
	router := newTestRouter(t, RouterConfig{RateLimitRequests: 2, RateLimitWindow: 0})

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(nethttp.MethodGet, "/players", nil)
		req.RemoteAddr = "10.0.0.7:1234"
		rr := testutil.ServeRequest(router, req)
		last = rr.Code
	}
	if last != nethttp.StatusTooManyRequests {
		t.Fatalf("expected 429 after exceeding limit, got %d", last)
	}
}
