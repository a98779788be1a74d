// Package account owns the account resource: its storage, password digests
// and the route nodes that expose it.
//
// The tree returned by Module.Root is:
//
//	/                 404
//	/account          POST create (form: id, password)
//	/account/*        GET public view, DELETE by the owner
//	/login            POST with HTTP Basic credentials, issues the session pair
//	/logout           POST, clears the session cookies
//	/session          GET, reports the cookie session (rotating it if stale)
//
// The account node provisions the schema from its Up hook by running the
// embedded goose migrations and, when ResetOnShutdown is set, rolls them back
// from Down.
//
// With WithLoginLimiter, /login is throttled per client IP and answers 429
// with Retry-After once the bucket is empty.
//
// Store implementations: PGStore (pgx) and CachedStore, which puts a Cache
// (RedisCache or MemoryCache) in front of another Store. Every Store is also
// a session.AccountLookup.
package account
