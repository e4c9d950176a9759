package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("expected default port 4000, got %s", cfg.Port)
	}
	if cfg.Provider != "nhl" {
		t.Fatalf("expected default provider nhl, got %s", cfg.Provider)
	}
	if cfg.WorkerCount != 60 {
		t.Fatalf("expected default worker count 60, got %d", cfg.WorkerCount)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Fatalf("expected default cache ttl 10m, got %s", cfg.CacheTTL)
	}
	if cfg.RefreshInterval != 0 {
		t.Fatalf("expected refresh disabled by default, got %s", cfg.RefreshInterval)
	}
	if cfg.NHL.BaseURL != "https://statsapi.web.nhl.com" {
		t.Fatalf("unexpected default base url %s", cfg.NHL.BaseURL)
	}
	if cfg.NHL.Timeout != 10*time.Second {
		t.Fatalf("expected default upstream timeout 10s, got %s", cfg.NHL.Timeout)
	}
	if cfg.RateLimit.Requests != 120 || cfg.RateLimit.Window != time.Minute {
		t.Fatalf("unexpected default rate limit %+v", cfg.RateLimit)
	}
}

func TestLoadRateLimitFromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "10s")

	cfg := Load()
	if cfg.RateLimit.Requests != 10 {
		t.Fatalf("expected 10 requests, got %d", cfg.RateLimit.Requests)
	}
	if cfg.RateLimit.Window != 10*time.Second {
		t.Fatalf("expected 10s window, got %s", cfg.RateLimit.Window)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("PLAYERS_CACHE_TTL", "30s")
	t.Setenv("REFRESH_INTERVAL", "5m")
	t.Setenv("NHL_BASE_URL", "http://localhost:9999")

	cfg := Load()

	if cfg.Port != "8081" {
		t.Fatalf("expected port 8081, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.WorkerCount != 8 {
		t.Fatalf("expected worker count 8, got %d", cfg.WorkerCount)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("expected cache ttl 30s, got %s", cfg.CacheTTL)
	}
	if cfg.RefreshInterval != 5*time.Minute {
		t.Fatalf("expected refresh interval 5m, got %s", cfg.RefreshInterval)
	}
	if cfg.NHL.BaseURL != "http://localhost:9999" {
		t.Fatalf("unexpected base url %s", cfg.NHL.BaseURL)
	}
}
