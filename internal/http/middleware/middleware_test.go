package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nhl-stats-service/internal/metrics"
	"nhl-stats-service/internal/testutil"
)

func TestLoggingPropagatesRequestID(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	h := Logging(testutil.NewTestLogger(), nil)(inner)

	req := httptest.NewRequest(http.MethodGet, "/players", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := testutil.ServeRequest(h, req)

	if seen != "abc-123" {
		t.Fatalf("expected request id to flow through, got %q", seen)
	}
	if got := rr.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected request id echoed in header, got %q", got)
	}
}

func TestLoggingRejectsMalformedRequestID(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := Logging(testutil.NewTestLogger(), nil)(inner)

	req := httptest.NewRequest(http.MethodGet, "/players", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces")
	rr := testutil.ServeRequest(h, req)

	got := rr.Header().Get("X-Request-ID")
	if got == "" || strings.Contains(got, " ") {
		t.Fatalf("expected a generated request id, got %q", got)
	}
}

func TestLoggingRecordsMetrics(t *testing.T) {
	recorder := metrics.NewRecorder()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := Logging(testutil.NewTestLogger(), recorder)(inner)

	testutil.Serve(h, http.MethodGet, "/players?x=1", nil)

	if got := recorder.HTTPRequestCount(); got != 1 {
		t.Fatalf("expected one recorded request, got %d", got)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/players":    "/players",
		"/health":     "/health",
		"/ready":      "/ready",
		"/players?x":  "/players",
		"/anything":   "other",
		"/players/42": "other",
		"":            "",
	}
	for in, want := range cases {
		if got := normalizePath(in); got != want {
			t.Errorf("normalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}
