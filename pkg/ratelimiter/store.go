package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state.
type Store interface {
	// ConsumeTokens refills the bucket for the elapsed time, takes tokens
	// and returns what is left and when the next refill happens. A negative
	// remainder means the tokens were not taken. Zero tokens only refreshes
	// the state.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)
}

// refill applies the elapsed intervals to a bucket. Intervals are capped so
// a long-idle bucket cannot overflow.
func refill(tokens int, lastRefill, now time.Time, config Config) (int, time.Time) {
	elapsed := now.Sub(lastRefill)
	maxIntervals := int64(config.Capacity/config.RefillRate + 1)
	intervals := int(min(int64(elapsed/config.RefillInterval), maxIntervals))

	if intervals > 0 {
		tokens = min(tokens+intervals*config.RefillRate, config.Capacity)
		lastRefill = now
	}
	return tokens, lastRefill
}
