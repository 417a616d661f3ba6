package ratelimit

import (
	"context"
	"testing"

	"github.com/reliefdesk/reliefdesk/internal/config"
)

func TestReportLimiterDisabledWithoutRedis(t *testing.T) {
	limiter := NewReportLimiter(config.Config{}, nil)
	if limiter != nil {
		t.Fatal("expected nil limiter without a redis address")
	}
	if limiter.Enabled() {
		t.Fatal("nil limiter must report disabled")
	}

	// Disabled limiter allows everything.
	result, err := limiter.AllowCompany(context.Background(), "company")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !result.Allowed {
		t.Fatal("expected disabled limiter to allow")
	}

	token, locked, err := limiter.TryLockClaim(context.Background(), "claim")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	if !locked || token != "" {
		t.Fatalf("expected vacuous lock, got locked=%v token=%q", locked, token)
	}
	if err := limiter.ReleaseClaim(context.Background(), "claim", token); err != nil {
		t.Fatalf("release: %v", err)
	}
}
