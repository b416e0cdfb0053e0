// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/tenant-identity-service/internal/db"
	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var tenantColumns = []string{"t.id", "t.trade_name", "t.legal_name", "t.document", "t.status", "t.enabled", "t.created_at", "t.updated_at"}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}

	return id.String(), nil
}

type rowScanner interface {
	Scan(...interface{}) error
}

func scanTenant(row rowScanner) (*types.Tenant, error) {
	var t types.Tenant
	if err := row.Scan(&t.ID, &t.TradeName, &t.LegalName, &t.Document, &t.Status, &t.Enabled, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "trade_name", "legal_name", "document", "status", "enabled").
		Values(id, strings.TrimSpace(t.TradeName), t.LegalName, t.Document, string(t.Status), true).
		Suffix("RETURNING id, trade_name, legal_name, document, status, enabled, created_at, updated_at").
		QueryRowContext(ctx)

	tenant, err := scanTenant(row)
	if err != nil {
		return nil, storageError("insert tenant", err)
	}

	return tenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, scope Scope, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	row := scope.Select(s.db.Statement(ctx), Tenants, "t", tenantColumns...).
		Where(sq.Eq{"t.id": id}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		return nil, storageError("get tenant", err)
	}

	return t, nil
}

// TenantNameExists compares trade names case-insensitively.
func (s *Storage) TenantNameExists(ctx context.Context, scope Scope, name string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TenantNameExists")
	defer span.End()

	var exists bool
	err := scope.Select(s.db.Statement(ctx), Tenants, "t", "1").
		Where(sq.Expr("upper(t.trade_name) = upper(?)", strings.TrimSpace(name))).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		QueryRowContext(ctx).
		Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check tenant name: %w", err)
	}

	return exists, nil
}

func (s *Storage) ListTenants(ctx context.Context, scope Scope, page, size int64) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := scope.Select(s.db.Statement(ctx), Tenants, "t", tenantColumns...).
		OrderBy("t.created_at").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	tenants := make([]*types.Tenant, 0)
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

func (s *Storage) UpdateTenantStatus(ctx context.Context, id string, status types.TenantStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenantStatus")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Update("tenants").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "enabled": true}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant status: %w", err)
	}

	return expectAffected(result)
}

type affected interface {
	RowsAffected() (int64, error)
}

func expectAffected(r affected) error {
	n, err := r.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
