package store

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation is worth
// reporting as transient. Nothing in the service retries on its own; the
// classification only enriches error logs.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks connection losses, serialization failures, deadlocks
	// and timeouts.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Retryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable codes:
//   - Class 08: connection exceptions
//   - Class 40: transaction rollback, serialization failure, deadlock
//   - Class 57: cannot connect now
//
// Everything else, including unique and foreign key violations, is
// [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
