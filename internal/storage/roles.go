// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/tenant-identity-service/internal/types"
)

func (s *Storage) GetRoleByName(ctx context.Context, name types.Role) (*types.RoleRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRoleByName")
	defer span.End()

	var r types.RoleRecord
	err := s.db.Statement(ctx).
		Select("id", "name").
		From(Roles.Table).
		Where(sq.Eq{"name": string(name)}).
		QueryRowContext(ctx).
		Scan(&r.ID, &r.Name)

	if err != nil {
		return nil, storageError("get role", err)
	}

	return &r, nil
}

// ListUserRoles returns the global role assignments of a user.
func (s *Storage) ListUserRoles(ctx context.Context, userID string) ([]*types.RoleRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUserRoles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("r.id", "r.name").
		From("roles r").
		Join("user_roles ur ON ur.role_id = r.id").
		Where(sq.Eq{"ur.user_id": userID}).
		OrderBy("r.name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user roles: %w", err)
	}
	defer rows.Close()

	roles := make([]*types.RoleRecord, 0)
	for rows.Next() {
		var r types.RoleRecord
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

func (s *Storage) ListPermissionsByRoles(ctx context.Context, roleIDs []string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissionsByRoles")
	defer span.End()

	permissions := make([]string, 0)
	if len(roleIDs) == 0 {
		return permissions, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("permission").
		Distinct().
		From(RolePerms.Table).
		Where(sq.Eq{"role_id": roleIDs}).
		OrderBy("permission").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return permissions, nil
}

// AssignUserRole is idempotent.
func (s *Storage) AssignUserRole(ctx context.Context, userID, roleID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AssignUserRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert(UserRoles.Table).
		Columns("user_id", "role_id").
		Values(userID, roleID).
		Suffix("ON CONFLICT (user_id, role_id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return storageError("assign role", err)
	}

	return nil
}
