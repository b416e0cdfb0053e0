// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/tracing"
)

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool

	// Isolation of saga transactions, read committed when unset
	Isolation sql.IsolationLevel
	Retry     RetryConfig
}

type DBClient struct {
	// pool is the native PGX pool we hold to allow closing
	pool *pgxpool.Pool
	db   *sql.DB

	isolation sql.IsolationLevel
	retry     RetryConfig

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ DBClientInterface = (*DBClient)(nil)

// Statement returns a dollar placeholder builder bound to the transaction in
// ctx, started on first use, or to the pool outside of one. Inside a
// transaction that failed to begin it never falls back to the pool.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	lt := lazyTxFromContext(ctx)
	if lt == nil {
		return builder.RunWith(d.db)
	}

	tx, err := lt.get()
	if err != nil {
		d.logger.Errorf("failed to begin transaction: %v", err)
		return builder.RunWith(failedTxRunner{err: err})
	}

	return builder.RunWith(tx)
}

// Ping checks connectivity and reports it as a dependency metric.
func (d *DBClient) Ping(ctx context.Context) error {
	err := d.db.PingContext(ctx)

	value := 1.0
	if err != nil {
		value = 0
	}

	if mErr := d.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, value); mErr != nil {
		d.logger.Debugf("failed to set dependency metric: %v", mErr)
	}

	return err
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient opens a pgx pool from cfg and exposes it through database/sql.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	if cfg.TracingEnabled {
		// otelpgx.NewTracer uses the global TracerProvider set up by internal/tracing
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to start metrics collection for database: %w", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		pool.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	d := NewDBClientFromDB(db, cfg.Retry, tracer, monitor, logger)
	d.pool = pool

	if cfg.Isolation != sql.LevelDefault {
		d.isolation = cfg.Isolation
	}

	return d, nil
}

// NewDBClientFromDB wraps an already opened *sql.DB, the pool is not owned.
func NewDBClientFromDB(db *sql.DB, retry RetryConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	d := new(DBClient)
	d.db = db
	d.retry = retry.withDefaults()
	d.isolation = sql.LevelReadCommitted

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
