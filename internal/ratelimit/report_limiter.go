package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/reliefdesk/reliefdesk/internal/config"
)

const (
	keyReportCompany = "claims:report:company:%s"
	keyReportLock    = "claims:report:lock:%s"

	reportLockTTL = 30 * time.Second
)

// ReportLimiter throttles claim report rendering per company. Disabled
// (nil) when no redis address is configured; every check then allows.
type ReportLimiter struct {
	bucket *TokenBucket
	locker *Locker
	claims *config.ClaimsConfigHolder
}

func NewReportLimiter(cfg config.Config, claims *config.ClaimsConfigHolder) *ReportLimiter {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(cfg.RedisPassword),
	})

	return &ReportLimiter{
		bucket: NewTokenBucket(client),
		locker: NewLocker(client),
		claims: claims,
	}
}

func (l *ReportLimiter) Enabled() bool {
	return l != nil && l.bucket != nil
}

// AllowCompany consumes one report token for the company.
func (l *ReportLimiter) AllowCompany(ctx context.Context, companyID string) (*Result, error) {
	if !l.Enabled() {
		return &Result{Allowed: true}, nil
	}
	rateCfg := l.claims.Current().ReportRate
	key := fmt.Sprintf(keyReportCompany, strings.TrimSpace(companyID))
	return l.bucket.Allow(ctx, key, rateCfg.PerMinute/60.0, rateCfg.Burst)
}

// TryLockClaim guards a single claim's render. Returns the release token.
func (l *ReportLimiter) TryLockClaim(ctx context.Context, claimID string) (string, bool, error) {
	if !l.Enabled() {
		return "", true, nil
	}
	return l.locker.TryLock(ctx, fmt.Sprintf(keyReportLock, strings.TrimSpace(claimID)), reportLockTTL)
}

func (l *ReportLimiter) ReleaseClaim(ctx context.Context, claimID, token string) error {
	if !l.Enabled() {
		return nil
	}
	return l.locker.Release(ctx, fmt.Sprintf(keyReportLock, strings.TrimSpace(claimID)), token)
}
