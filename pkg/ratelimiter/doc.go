// Package ratelimiter implements a token bucket limiter with in-memory and
// Redis storage.
//
// A bucket starts full at Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each Allow call takes one token; a negative Remaining means
// the call was denied.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: 6 * time.Second,
//	})
//
//	res, err := limiter.Allow(ctx, "login:"+ip)
//	if err == nil && !res.Allowed() {
//		// wait res.RetryAfter()
//	}
//
// RedisStore shares buckets between processes. Its state lives in a hash
// per key and is updated atomically by a Lua script.
package ratelimiter
