package service

import (
	"context"
	"log/slog"

	"linktrack/internal/ratelimit"
)

// ThrottledResolver limits password submissions per short code and client.
// Plain resolution passes straight through.
type ThrottledResolver struct {
	Resolver
	limiter ratelimit.Limiter
}

func NewThrottledResolver(inner Resolver, limiter ratelimit.Limiter) *ThrottledResolver {
	return &ThrottledResolver{Resolver: inner, limiter: limiter}
}

func (t *ThrottledResolver) ResolveWithPassword(ctx context.Context, l Lookup, plaintext string) (Result, error) {
	ok, err := t.limiter.Allow(ctx, "pw:"+l.ShortCode+":"+l.ClientIP)
	if err != nil {
		// fail open: the limiter is not part of correctness
		slog.Warn("password throttle unavailable", "short_code", l.ShortCode, "error", err)
	} else if !ok {
		slog.Info("password attempts throttled", "short_code", l.ShortCode, "client_ip", l.ClientIP)
		return Result{Outcome: OutcomeRateLimited, ShortCode: l.ShortCode}, nil
	}
	return t.Resolver.ResolveWithPassword(ctx, l, plaintext)
}
