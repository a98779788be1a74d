package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrations is a set of goose SQL files, usually embedded with go:embed.
type Migrations struct {
	FS  fs.FS
	Dir string
}

// goose keeps its settings in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, m Migrations, log *slog.Logger) error {
	err := withGoose(pool, cfg, m, log, func(db *sql.DB, dir string) error {
		return goose.UpContext(ctx, db, dir)
	})
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

// Reset rolls every migration back to version 0.
func Reset(ctx context.Context, pool *pgxpool.Pool, cfg Config, m Migrations, log *slog.Logger) error {
	err := withGoose(pool, cfg, m, log, func(db *sql.DB, dir string) error {
		return goose.DownToContext(ctx, db, dir, 0)
	})
	if err != nil {
		return errors.Join(ErrFailedToResetMigrations, err)
	}
	return nil
}

func withGoose(pool *pgxpool.Pool, cfg Config, m Migrations, log *slog.Logger, fn func(db *sql.DB, dir string) error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	// goose needs database/sql; this shares the pool's connections.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(m.FS)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{log})
	if cfg.MigrationsTable != "" {
		goose.SetTableName(cfg.MigrationsTable)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	dir := m.Dir
	if dir == "" {
		dir = "."
	}
	return fn(db, dir)
}

// gooseLogger routes goose output through slog.
type gooseLogger struct {
	log *slog.Logger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	if l.log != nil {
		l.log.Error(fmt.Sprintf(format, v...), "component", "goose")
	}
}

func (l gooseLogger) Printf(format string, v ...any) {
	if l.log != nil {
		l.log.Info(fmt.Sprintf(format, v...), "component", "goose")
	}
}
