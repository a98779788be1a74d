package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/wordchain/pkg/pg"
	"github.com/dmitrymomot/wordchain/pkg/session"
)

// PGStore keeps accounts in PostgreSQL. It also implements Schema.
type PGStore struct {
	pool *pgxpool.Pool
	cfg  pg.Config
	log  *slog.Logger
}

func NewPGStore(pool *pgxpool.Pool, cfg pg.Config, log *slog.Logger) *PGStore {
	return &PGStore{pool: pool, cfg: cfg, log: log}
}

func (s *PGStore) Create(ctx context.Context, acc session.Account) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO accounts (id, salt, password) VALUES ($1, $2, $3)`,
		acc.ID, acc.PasswordSalt, acc.PasswordHash,
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrDuplicateID
	}
	if err != nil {
		return fmt.Errorf("account: insert: %w", err)
	}
	return nil
}

func (s *PGStore) Lookup(ctx context.Context, id string) (session.Account, error) {
	var acc session.Account
	err := s.pool.QueryRow(ctx,
		`SELECT id, salt, password FROM accounts WHERE id = $1`, id,
	).Scan(&acc.ID, &acc.PasswordSalt, &acc.PasswordHash)
	if pg.IsNotFoundError(err) {
		return session.Account{}, session.ErrAccountNotFound
	}
	if err != nil {
		return session.Account{}, fmt.Errorf("account: select: %w", err)
	}
	return acc, nil
}

// Delete removes the row. A row or table that is already gone counts as
// success.
func (s *PGStore) Delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil && !pg.IsUndefinedTableError(err) {
		return fmt.Errorf("account: delete: %w", err)
	}
	return nil
}

func (s *PGStore) Migrate(ctx context.Context) error {
	return pg.Migrate(ctx, s.pool, s.cfg, Migrations(), s.log)
}

func (s *PGStore) Reset(ctx context.Context) error {
	return pg.Reset(ctx, s.pool, s.cfg, Migrations(), s.log)
}
