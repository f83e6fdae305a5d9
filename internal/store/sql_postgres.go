package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/migrations"
)

const (
	maxOpenConns = 10
	maxIdleConns = 4
)

// DB wraps the connection pool together with the error classifier used to
// annotate failures in logs.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a pgx-backed pool for cfg.DSN and pings it.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, log), nil
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// logError starts an error entry annotated with the failing function and
// whether the failure looks transient.
func (db *DB) logError(log *logger.Logger, err error, fn string) *zerolog.Event {
	event := log.Err(err).Str("func", fn)
	if db.errorClassificator != nil {
		event = event.Bool("retryable", db.errorClassificator.Classify(err) == Retryable)
	}
	return event
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
