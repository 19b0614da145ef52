// Package database provides database connection management.
package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/lifeos/internal/config"
)

// Open opens a MySQL connection using the provided config.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}
	if len(cfg.Params) > 0 {
		mysqlCfg.Params = cfg.Params
	}

	db, err := sqlx.Open("mysql", mysqlCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// Connect opens the database and waits until it answers.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := WaitReady(ctx, db, cfg.ConnectAttempts, time.Second); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Opener returns a function that connects to cfg and applies migrations before handing out the connection.
func Opener(ctx context.Context, migrations fs.FS) func(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	return func(cfg config.DatabaseConfig) (*sqlx.DB, error) {
		db, err := Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := Migrate(ctx, db, migrations); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}
}

// Migrate executes every .sql file of migrations in name order.
// The statements are expected to be idempotent.
func Migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS) error {
	var names []string
	err := fs.WalkDir(migrations, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".sql" {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("fs.WalkDir() > %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := fs.ReadFile(migrations, name)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
		}
		statement := strings.TrimSpace(string(content))
		if statement == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("db.ExecContext(%s) > %w", name, err)
		}
		slog.Debug("applied migration", "name", name)
	}
	return nil
}

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// WaitReady pings db until it answers, backing off between attempts.
func WaitReady(ctx context.Context, db Pinger, attempts uint, delay time.Duration) error {
	if attempts == 0 {
		attempts = 1
	}
	err := retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("database is not ready", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("db.PingContext() > %w", err)
	}
	return nil
}

// RunInTx runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back; otherwise, it is committed.
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx.Rollback() > %w (original error: %v)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
