// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/tenant-identity-service/internal/types"
)

func (s *Storage) CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created := new(types.Invitation)
	err = s.db.Statement(ctx).
		Insert(Invitations.Table).
		Columns("id", "tenant_id", "user_id", "role_id", "enabled").
		Values(id, i.TenantID, i.UserID, i.RoleID, true).
		Suffix("RETURNING id, tenant_id, user_id, role_id, enabled, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.UserID, &created.RoleID, &created.Enabled, &created.CreatedAt)

	if err != nil {
		return nil, storageError("insert invitation", err)
	}

	return created, nil
}

// GetPendingInvitation returns the unaccepted invitation of userID in the scope tenant.
func (s *Storage) GetPendingInvitation(ctx context.Context, scope Scope, userID string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPendingInvitation")
	defer span.End()

	var (
		i        types.Invitation
		accepted sql.NullTime
	)

	err := scope.Select(s.db.Statement(ctx), Invitations, "i", "i.id", "i.tenant_id", "i.user_id", "i.role_id", "r.name", "i.enabled", "i.accepted_at", "i.created_at").
		Join("roles r ON r.id = i.role_id").
		Where(sq.Eq{"i.user_id": userID, "i.accepted_at": nil}).
		OrderBy("i.created_at DESC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&i.ID, &i.TenantID, &i.UserID, &i.RoleID, &i.Role, &i.Enabled, &accepted, &i.CreatedAt)

	if err != nil {
		return nil, storageError("get invitation", err)
	}

	if accepted.Valid {
		i.AcceptedAt = &accepted.Time
	}

	return &i, nil
}

func (s *Storage) AcceptInvitation(ctx context.Context, id string, now time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.AcceptInvitation")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Update(Invitations.Table).
		Set("accepted_at", now).
		Where(sq.Eq{"id": id, "accepted_at": nil}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to accept invitation: %w", err)
	}

	return expectAffected(result)
}
