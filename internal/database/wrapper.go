// Package database holds the generated queries and the connection
// wrapper the repositories share.
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matt-dz/recipecenter/internal/sql"
)

var ErrNoPool = errors.New("database has no connection pool")

type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Database struct {
	Querier

	Pool Pool

	// TxQuerier binds a Querier to an open transaction. Defaults to New(tx).
	TxQuerier func(tx pgx.Tx) Querier

	close func()
}

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{
		Querier: New(pool),
		Pool:    pool,
		close:   pool.Close,
	}
}

// InTx runs fn inside a single transaction. The transaction is committed
// when fn returns nil and rolled back otherwise.
func (db *Database) InTx(ctx context.Context, fn func(q Querier) error) (err error) {
	if db.Pool == nil {
		return ErrNoPool
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// Rollback after a successful commit returns ErrTxClosed.
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = errors.Join(err, fmt.Errorf("rolling back transaction: %w", rbErr))
		}
	}()

	bind := db.TxQuerier
	if bind == nil {
		bind = func(tx pgx.Tx) Querier { return New(tx) }
	}

	if err := fn(bind(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// EnsureSchema ensures the database schema is applied to the
// Postgres database. The schema is applied to the database
// if the schema is not detected.
func (db *Database) EnsureSchema(ctx context.Context) error {
	exists, err := db.CheckUsersTableExists(ctx)
	if err != nil {
		return fmt.Errorf("ensuring schema exists: %w", err)
	}

	if exists {
		return nil
	}

	if db.Pool == nil {
		return ErrNoPool
	}

	if _, err := db.Pool.Exec(ctx, sql.Schema()); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}

	return nil
}

func (db *Database) Close() {
	if db.close != nil {
		db.close()
	}
}
