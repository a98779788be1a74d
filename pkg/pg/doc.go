// Package pg wires PostgreSQL into the service through a pgx connection pool.
//
// Connect parses PG_CONN_URL, applies the pool limits from Config and pings
// the server, retrying with exponential backoff (sethvargo/go-retry) so the
// service survives a database that comes up after it. Migrate and Reset run
// goose migrations from an embedded filesystem; the account node calls them
// from its Up and Down hooks.
//
// The Is*Error helpers classify pgx errors so stores can map them to domain
// errors without importing pgconn.
package pg
