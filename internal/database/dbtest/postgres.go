//go:build integration

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/matt-dz/recipecenter/internal/database"
)

// PostgresContainer is a throwaway Postgres with the schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *database.Database
	Pool      *pgxpool.Pool
}

// NewPostgres starts a container and applies the schema. The container is
// terminated when t finishes.
func NewPostgres(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:17-alpine",
		tcpostgres.WithDatabase("recipecenter"),
		tcpostgres.WithUsername("recipecenter"),
		tcpostgres.WithPassword("recipecenter"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &PostgresContainer{
		Container: container,
		DB:        db,
		Pool:      pool,
	}
}

// TruncateTables empties tables and resets their id sequences.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	_, err := p.Pool.Exec(ctx, fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", ")))
	return err
}

// Reset empties every table.
func (p *PostgresContainer) Reset(ctx context.Context) error {
	return p.TruncateTables(ctx,
		"user_ingredients", "shopping", "user_recipe", "recipe_ingredients",
		"ingredients", "recipe", "users")
}

// Count returns the number of rows in table matching where.
func (p *PostgresContainer) Count(ctx context.Context, table, where string, args ...any) (int64, error) {
	var n int64
	err := p.Pool.QueryRow(ctx, fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", table, where), args...).Scan(&n)
	return n, err
}
