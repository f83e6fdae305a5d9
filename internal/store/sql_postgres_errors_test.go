package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "wrapped unique violation", err: fmt.Errorf("x: %w", pgError(pgerrcode.UniqueViolation)), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(fmt.Errorf("wrapped: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Empty(t, postgresError(errors.New("not a pg error")))
}
