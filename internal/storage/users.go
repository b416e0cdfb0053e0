// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/tenant-identity-service/internal/types"
)

var userColumns = []string{
	"u.id", "u.email_encrypted", "u.email_hash", "u.first_name", "u.last_name", "u.full_name",
	"u.normalized_full_name", "u.password_hash", "u.security_stamp", "u.enabled", "u.email_confirmed",
	"u.created_at", "u.updated_at",
}

func userDest(u *types.User) []interface{} {
	return []interface{}{
		&u.ID, &u.EmailEncrypted, &u.EmailHash, &u.FirstName, &u.LastName, &u.FullName,
		&u.NormalizedFullName, &u.PasswordHash, &u.SecurityStamp, &u.Enabled, &u.EmailConfirmed,
		&u.CreatedAt, &u.UpdatedAt,
	}
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created := new(types.User)
	err = s.db.Statement(ctx).
		Insert("users").
		Columns(
			"id", "email_encrypted", "email_hash", "first_name", "last_name", "full_name",
			"normalized_full_name", "password_hash", "security_stamp", "enabled", "email_confirmed",
		).
		Values(
			id, u.EmailEncrypted, u.EmailHash, u.FirstName, u.LastName, u.FullName,
			u.NormalizedFullName, u.PasswordHash, u.SecurityStamp, true, u.EmailConfirmed,
		).
		Suffix("RETURNING id, email_encrypted, email_hash, first_name, last_name, full_name, normalized_full_name, password_hash, security_stamp, enabled, email_confirmed, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(userDest(created)...)

	if err != nil {
		return nil, storageError("insert user", err)
	}

	return created, nil
}

func (s *Storage) getUser(ctx context.Context, scope Scope, where sq.Sqlizer) (*types.User, error) {
	u := new(types.User)
	err := scope.Select(s.db.Statement(ctx), Users, "u", userColumns...).
		Where(where).
		QueryRowContext(ctx).
		Scan(userDest(u)...)

	if err != nil {
		return nil, storageError("get user", err)
	}

	return u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, scope Scope, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, scope, sq.Eq{"u.id": id})
}

func (s *Storage) GetUserByEmailHash(ctx context.Context, scope Scope, emailHash string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmailHash")
	defer span.End()

	return s.getUser(ctx, scope, sq.Eq{"u.email_hash": emailHash})
}

// GetUserWithMemberships eager loads the memberships visible under scope
// together with their role names.
func (s *Storage) GetUserWithMemberships(ctx context.Context, scope Scope, emailHash string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserWithMemberships")
	defer span.End()

	columns := append(append([]string{}, userColumns...), "m.id", "m.tenant_id", "m.role_id", "r.name", "m.enabled", "m.created_at")

	q, err := scope.Join(
		scope.Select(s.db.Statement(ctx), Users, "u", columns...),
		Memberships, "m", "m.user_id = u.id",
	)
	if err != nil {
		return nil, err
	}

	rows, err := q.
		LeftJoin("roles r ON r.id = m.role_id").
		Where(sq.Eq{"u.email_hash": emailHash}).
		OrderBy("m.created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user with memberships: %w", err)
	}
	defer rows.Close()

	var u *types.User
	for rows.Next() {
		var (
			current                        types.User
			mID, mTenantID, mRoleID, mRole sql.NullString
			mEnabled                       sql.NullBool
			mCreatedAt                     sql.NullTime
		)

		dest := append(userDest(&current), &mID, &mTenantID, &mRoleID, &mRole, &mEnabled, &mCreatedAt)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}

		if u == nil {
			u = &current
			u.Memberships = make([]*types.Membership, 0)
		}

		if mID.Valid {
			u.Memberships = append(u.Memberships, &types.Membership{
				ID:        mID.String,
				UserID:    u.ID,
				TenantID:  mTenantID.String,
				RoleID:    mRoleID.String,
				Role:      types.Role(mRole.String),
				Enabled:   mEnabled.Bool,
				CreatedAt: mCreatedAt.Time,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	if u == nil {
		return nil, ErrNotFound
	}

	return u, nil
}

// ConfirmUserEmail only succeeds while the stored stamp still equals
// expectedStamp, a second confirmation with the same token finds no row.
func (s *Storage) ConfirmUserEmail(ctx context.Context, id, expectedStamp, newStamp string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ConfirmUserEmail")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Update("users").
		Set("email_confirmed", true).
		Set("security_stamp", newStamp).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "security_stamp": expectedStamp, "enabled": true}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to confirm user email: %w", err)
	}

	return expectAffected(result)
}

func (s *Storage) UpdateUserPassword(ctx context.Context, id, passwordHash, newStamp string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserPassword")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Update("users").
		Set("password_hash", passwordHash).
		Set("security_stamp", newStamp).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "enabled": true}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}

	return expectAffected(result)
}
