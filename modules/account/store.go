package account

import (
	"context"
	"embed"

	"github.com/dmitrymomot/wordchain/pkg/pg"
	"github.com/dmitrymomot/wordchain/pkg/session"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrations returns the embedded account schema migrations.
func Migrations() pg.Migrations {
	return pg.Migrations{FS: migrationsFS, Dir: "migrations"}
}

// Store persists accounts. Lookup reports a miss with
// session.ErrAccountNotFound; Delete of a missing account succeeds.
type Store interface {
	session.AccountLookup
	Create(ctx context.Context, acc session.Account) error
	Delete(ctx context.Context, id string) error
}

// Schema provisions and removes the storage the Store needs.
type Schema interface {
	Migrate(ctx context.Context) error
	Reset(ctx context.Context) error
}
