// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/tracing"
)

func newTestClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	logger := logging.NewNoopLogger()
	c := NewDBClientFromDB(
		conn,
		RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)

	return c, mock
}

func insertTenant(ctx context.Context, c *DBClient) error {
	_, err := c.Statement(ctx).
		Insert("tenants").
		Columns("trade_name").
		Values("acme").
		ExecContext(ctx)

	return err
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expected: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, expected: true},
		{name: "connection exception", err: &pgconn.PgError{Code: "08006"}, expected: true},
		{name: "wrapped serialization failure", err: fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40001"}), expected: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: false},
		{name: "bad conn", err: driver.ErrBadConn, expected: true},
		{name: "domain error", err: errors.New("tenant exists"), expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if r := IsTransient(test.err); r != test.expected {
				t.Fatalf("expected %v got %v", test.expected, r)
			}
		})
	}
}

func TestWithRetryTxRetriesTransientFailure(t *testing.T) {
	c, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tenants").WillReturnError(&pgconn.PgError{Code: "40001"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tenants").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	calls := 0
	err := c.WithRetryTx(context.Background(), func(ctx context.Context) error {
		calls++
		return insertTenant(ctx, c)
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 2 {
		t.Fatalf("expected 2 attempts got %d", calls)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithRetryTxDoesNotRetryDomainErrors(t *testing.T) {
	c, mock := newTestClient(t)

	domainErr := errors.New("tenant already exists")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tenants").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectRollback()

	calls := 0
	err := c.WithRetryTx(context.Background(), func(ctx context.Context) error {
		calls++
		if err := insertTenant(ctx, c); err != nil {
			return err
		}

		return domainErr
	})

	if !errors.Is(err, domainErr) {
		t.Fatalf("expected domain error got %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected a single attempt got %d", calls)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithRetryTxGivesUp(t *testing.T) {
	c, mock := newTestClient(t)

	for i := 0; i < 4; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO tenants").WillReturnError(&pgconn.PgError{Code: "40P01"})
		mock.ExpectRollback()
	}

	calls := 0
	err := c.WithRetryTx(context.Background(), func(ctx context.Context) error {
		calls++
		return insertTenant(ctx, c)
	})

	if !IsTransient(err) {
		t.Fatalf("expected transient error got %v", err)
	}

	if calls != 4 {
		t.Fatalf("expected 4 attempts got %d", calls)
	}
}

func TestWithTxWithoutStatementsDoesNotBegin(t *testing.T) {
	c, mock := newTestClient(t)

	if err := c.WithTx(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNestedWithTxJoinsOuterTransaction(t *testing.T) {
	c, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tenants").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO tenants").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := c.WithRetryTx(context.Background(), func(ctx context.Context) error {
		if err := insertTenant(ctx, c); err != nil {
			return err
		}

		return c.WithRetryTx(ctx, func(ctx context.Context) error {
			return insertTenant(ctx, c)
		})
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithRetryTxBeginFailureNeverRunsOnPool(t *testing.T) {
	c, mock := newTestClient(t)

	// an INSERT reaching the pool would not match the second Begin
	mock.ExpectBegin().WillReturnError(&pgconn.PgError{Code: "08006"})
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tenants").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	calls := 0
	err := c.WithRetryTx(context.Background(), func(ctx context.Context) error {
		calls++
		return insertTenant(ctx, c)
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 2 {
		t.Fatalf("expected 2 attempts got %d", calls)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTxReturnsBeginErrorWhenBodySwallowsIt(t *testing.T) {
	c, mock := newTestClient(t)

	beginErr := errors.New("connection refused")

	mock.ExpectBegin().WillReturnError(beginErr)

	statements := 0
	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		for i := 0; i < 2; i++ {
			if insertTenant(ctx, c) != nil {
				statements++
			}
		}

		return nil
	})

	if !errors.Is(err, beginErr) {
		t.Fatalf("expected begin error got %v", err)
	}

	if statements != 2 {
		t.Fatalf("expected both statements to fail got %d", statements)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
