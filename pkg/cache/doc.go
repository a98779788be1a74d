// Package cache provides a size-bounded, thread-safe LRU with per-entry
// expiry. The account module uses it as the in-process lookup cache when no
// Redis URL is configured.
//
//	c := cache.NewLRU[string, session.Account](1024, 5*time.Minute)
//	c.Put("alice", acc)
//	acc, ok := c.Get("alice")
//
// Expired entries are dropped lazily on Get; capacity pressure evicts the
// least recently used entry.
package cache
