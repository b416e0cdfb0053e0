// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const defaultTxTimeout = time.Second * 60

type lazyTxContextKey struct{}

// lazyTx begins the transaction on the first statement, a body that never
// touches the database never opens one.
type lazyTx struct {
	db        *sql.DB
	isolation sql.IsolationLevel
	tx        TxInterface
	committed bool
	cancel    context.CancelFunc

	// beginErr sticks once BeginTx fails, later statements see the same error
	beginErr error
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	if lt.beginErr != nil {
		return nil, lt.beginErr
	}

	// detached from the request so a cancelled client cannot abort a commit
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: lt.isolation})
	if err != nil {
		cancel()
		lt.beginErr = err
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

func (lt *lazyTx) started() bool {
	return lt.tx != nil
}

func (lt *lazyTx) finish() error {
	if lt.cancel != nil {
		defer lt.cancel()
	}

	if !lt.started() {
		return nil
	}

	if err := lt.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	lt.committed = true

	return nil
}

func (lt *lazyTx) abort() error {
	if lt.cancel != nil {
		defer lt.cancel()
	}

	if !lt.started() || lt.committed {
		return nil
	}

	if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	if lt, ok := ctx.Value(lazyTxContextKey{}).(*lazyTx); ok {
		return lt
	}
	return nil
}

func inTx(ctx context.Context) bool {
	return lazyTxFromContext(ctx) != nil
}

// WithTx runs fn in one transaction, committing when fn succeeds and rolling
// back otherwise. Nested calls join the transaction already carried by ctx.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	ctx, span := d.tracer.Start(ctx, "db.DBClient.WithTx")
	defer span.End()

	lt := &lazyTx{db: d.db, isolation: d.isolation}

	err := fn(context.WithValue(ctx, lazyTxContextKey{}, lt))

	// a body that swallowed the statement error must not commit a half run
	if lt.beginErr != nil {
		return fmt.Errorf("failed to begin transaction: %w", lt.beginErr)
	}

	if err != nil {
		if rbErr := lt.abort(); rbErr != nil {
			d.logger.Errorf("failed to rollback transaction: %v", rbErr)
		}
		return err
	}

	if err := lt.finish(); err != nil {
		_ = lt.abort()
		return err
	}

	return nil
}

// failedTxRunner stands in for a transaction that could not begin, every
// statement built on it returns the begin error.
type failedTxRunner struct {
	err error
}

type failedRow struct {
	err error
}

func (r failedRow) Scan(...interface{}) error {
	return r.err
}

var _ sq.RunnerContext = failedTxRunner{}

func (r failedTxRunner) Exec(string, ...interface{}) (sql.Result, error) {
	return nil, r.err
}

func (r failedTxRunner) Query(string, ...interface{}) (*sql.Rows, error) {
	return nil, r.err
}

func (r failedTxRunner) QueryRow(string, ...interface{}) sq.RowScanner {
	return failedRow(r)
}

func (r failedTxRunner) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, r.err
}

func (r failedTxRunner) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, r.err
}

func (r failedTxRunner) QueryRowContext(context.Context, string, ...interface{}) sq.RowScanner {
	return failedRow(r)
}
