package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/GlebRadaev/gigpay/migrations"
)

func RunMigrations(pool *pgxpool.Pool) error {
	return RunMigrationCommand(context.Background(), pool, "up")
}

// RunMigrationCommand runs a goose command (up, down, status, version, ...)
// against the embedded migrations.
func RunMigrationCommand(ctx context.Context, pool *pgxpool.Pool, command string, args ...string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to run migrations %s: %w", command, err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}
