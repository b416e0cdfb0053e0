// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	defaultMaxRetries uint64 = 3
	defaultBaseDelay         = 50 * time.Millisecond
	defaultMaxDelay          = time.Second
)

type RetryConfig struct {
	MaxRetries uint64
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxRetries == 0 {
		c.MaxRetries = defaultMaxRetries
	}

	if c.BaseDelay <= 0 {
		c.BaseDelay = defaultBaseDelay
	}

	if c.MaxDelay <= 0 {
		c.MaxDelay = defaultMaxDelay
	}

	return c
}

func (c RetryConfig) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.BaseDelay
	b.MaxInterval = c.MaxDelay
	b.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(b, c.MaxRetries), ctx)
}

// IsTransient reports whether err is an infrastructure failure after which
// the whole transaction body can be safely re-run.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "40001", pgErr.Code == "40P01":
			return true
		case strings.HasPrefix(pgErr.Code, "08"):
			return true
		}

		return false
	}

	return pgconn.SafeToRetry(err)
}

// WithRetryTx runs fn inside WithTx and re-runs the whole body on transient
// failures with capped exponential backoff. Any other error is returned as is.
func (d *DBClient) WithRetryTx(ctx context.Context, fn func(context.Context) error) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.WithRetryTx")
	defer span.End()

	// the outer transaction owns retries
	if inTx(ctx) {
		return fn(ctx)
	}

	attempt := 0
	op := func() error {
		attempt++

		err := d.WithTx(ctx, fn)
		if err == nil {
			return nil
		}

		if !IsTransient(err) {
			return backoff.Permanent(err)
		}

		d.logger.Warnf("transient database error on attempt %d: %v", attempt, err)

		return err
	}

	return backoff.Retry(op, d.retry.backOff(ctx))
}
