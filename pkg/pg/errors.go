package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToParseDBConfig    = errors.New("pg: failed to parse config")
	ErrFailedToOpenDBConnection = errors.New("pg: failed to open connection")
	ErrHealthcheckFailed        = errors.New("pg: healthcheck failed")
	ErrFailedToApplyMigrations  = errors.New("pg: failed to apply migrations")
	ErrFailedToResetMigrations  = errors.New("pg: failed to roll back migrations")
)

// SQLSTATE codes the stores care about.
const (
	codeUniqueViolation = "23505"
	codeUndefinedTable  = "42P01"
)

// IsNotFoundError reports whether err is pgx.ErrNoRows.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports a unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// IsUndefinedTableError reports a query against a table that does not
// exist, e.g. after Reset.
func IsUndefinedTableError(err error) bool {
	return hasCode(err, codeUndefinedTable)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
