package ratelimiter

import (
	"golang.org/x/time/rate"
)

// Limiter is a token bucket shared by every request to the HTTP surface.
// Burst is set equal to the rate so no extra burst capacity is allowed
// beyond the configured per-second maximum.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a Limiter allowing ratePerSec requests per second.
// A non-positive rate disables limiting.
func New(ratePerSec int) *Limiter {
	if ratePerSec <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)}
}

// Allow reports whether a request may proceed now. It never blocks:
// HTTP callers are rejected rather than queued.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
