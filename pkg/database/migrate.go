package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"ecommerce-store/pkg/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate runs the embedded goose migrations against the configured database.
// Uses a short-lived database/sql handle; the pgx pool stays untouched.
func Migrate(ctx context.Context, config utils.DatabaseConfig) error {
	db, err := sql.Open("pgx", ConnString(config))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
