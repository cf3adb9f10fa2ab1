package crawl

import (
	"context"

	"golang.org/x/time/rate"
)

// HostLimiter throttles requests to the registry host using a token
// bucket with a burst of 1 (no bursting allowed). The registry is a
// single origin, so one bucket covers every call site.
type HostLimiter struct {
	limiter *rate.Limiter
}

// NewHostLimiter creates a HostLimiter with the given requests-per-second
// limit.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Wait blocks until the rate limit allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (l *HostLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
