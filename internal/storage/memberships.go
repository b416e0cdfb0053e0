// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/tenant-identity-service/internal/db"
	"github.com/canonical/tenant-identity-service/internal/types"
)

var membershipColumns = []string{"m.id", "m.user_id", "m.tenant_id", "m.role_id", "r.name", "m.enabled", "m.created_at"}

func scanMembership(row rowScanner) (*types.Membership, error) {
	var m types.Membership
	if err := row.Scan(&m.ID, &m.UserID, &m.TenantID, &m.RoleID, &m.Role, &m.Enabled, &m.CreatedAt); err != nil {
		return nil, err
	}

	return &m, nil
}

func (s *Storage) CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created := &types.Membership{Role: m.Role}
	err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "user_id", "tenant_id", "role_id", "enabled").
		Values(id, m.UserID, m.TenantID, m.RoleID, true).
		Suffix("RETURNING id, user_id, tenant_id, role_id, enabled, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.UserID, &created.TenantID, &created.RoleID, &created.Enabled, &created.CreatedAt)

	if err != nil {
		return nil, storageError("insert membership", err)
	}

	return created, nil
}

func (s *Storage) selectMemberships(ctx context.Context, scope Scope) sq.SelectBuilder {
	return scope.Select(s.db.Statement(ctx), Memberships, "m", membershipColumns...).
		Join("roles r ON r.id = m.role_id")
}

// GetMembership returns the membership of userID in the scope tenant.
func (s *Storage) GetMembership(ctx context.Context, scope Scope, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	m, err := scanMembership(
		s.selectMemberships(ctx, scope).
			Where(sq.Eq{"m.user_id": userID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, storageError("get membership", err)
	}

	return m, nil
}

func (s *Storage) ListMembershipsByUser(ctx context.Context, scope Scope, userID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipsByUser")
	defer span.End()

	return s.listMemberships(
		ctx,
		s.selectMemberships(ctx, scope).
			Where(sq.Eq{"m.user_id": userID}).
			OrderBy("m.created_at"),
	)
}

func (s *Storage) ListMembersByTenant(ctx context.Context, scope Scope, page, size int64) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenant")
	defer span.End()

	pageSize := db.PageSize(size)

	return s.listMemberships(
		ctx,
		s.selectMemberships(ctx, scope).
			OrderBy("m.created_at").
			Limit(pageSize).
			Offset(db.Offset(page, pageSize)),
	)
}

// TenantHasMembers reports whether the scope tenant has any membership.
func (s *Storage) TenantHasMembers(ctx context.Context, scope Scope) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TenantHasMembers")
	defer span.End()

	var exists bool
	err := scope.Select(s.db.Statement(ctx), Memberships, "m", "1").
		Prefix("SELECT EXISTS (").
		Suffix(")").
		QueryRowContext(ctx).
		Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check tenant members: %w", err)
	}

	return exists, nil
}

func (s *Storage) listMemberships(ctx context.Context, q sq.SelectBuilder) ([]*types.Membership, error) {
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	memberships := make([]*types.Membership, 0)
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}
