// Package migrations embeds the SQL schema of the service and applies it
// with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate brings the schema of db up to the latest embedded version.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
