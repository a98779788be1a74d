// Package redis connects the optional account cache to Redis through
// go-redis. An empty REDIS_URL disables the cache; Enabled reports that.
package redis
