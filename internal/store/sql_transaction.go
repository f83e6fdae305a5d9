// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sparxrahulpawar/tsxChat/internal/logger"
)

// executor is the subset of *sql.DB and *sql.Tx the repositories use.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txCtxKey struct{}

// WithinTransaction runs fn in a single transaction. Repository calls made
// with the ctx passed to fn join it. The transaction commits when fn returns
// nil and rolls back otherwise; fn's error is returned unchanged.
//
// Nested calls reuse the outer transaction.
func (db *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		db.logError(log, err, "*DB.WithinTransaction").Msg("error starting transaction")
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if err = fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			db.logError(log, rbErr, "*DB.WithinTransaction").Msg("error rolling back transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		db.logError(log, err, "*DB.WithinTransaction").Msg("error committing transaction")
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// executor returns the transaction carried by ctx, or the pool.
func (db *DB) executor(ctx context.Context) executor {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}
