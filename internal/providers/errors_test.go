package providers

import (
	"fmt"
	"testing"
	"time"
)

func TestUpstreamStatusError(t *testing.T) {
	base := &UpstreamStatusError{Provider: "nhl", Endpoint: "/api/v1/teams", StatusCode: 502}
	wrapped := fmt.Errorf("fetch: %w", base)

	statusErr, ok := AsUpstreamStatusError(wrapped)
	if !ok {
		t.Fatal("expected unwrap to succeed")
	}
	if statusErr.StatusCode != 502 {
		t.Fatalf("expected 502, got %d", statusErr.StatusCode)
	}
	if msg := base.Error(); msg == "" {
		t.Fatal("expected non-empty message")
	}
}

func TestRateLimitError(t *testing.T) {
	base := &RateLimitError{Provider: "nhl", StatusCode: 429, RetryAfter: time.Minute}
	wrapped := fmt.Errorf("fetch: %w", base)

	rlErr, ok := AsRateLimitError(wrapped)
	if !ok {
		t.Fatal("expected unwrap to succeed")
	}
	if rlErr.RetryAfter != time.Minute {
		t.Fatalf("expected retry-after preserved, got %s", rlErr.RetryAfter)
	}

	if _, ok := AsRateLimitError(fmt.Errorf("plain")); ok {
		t.Fatal("expected plain error to not unwrap")
	}
}
