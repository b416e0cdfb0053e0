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

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *Storage) CreateRefreshToken(ctx context.Context, r *types.RefreshToken) (*types.RefreshToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRefreshToken")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created := &types.RefreshToken{
		UserID:    r.UserID,
		TenantID:  r.TenantID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
	}

	err = s.db.Statement(ctx).
		Insert(RefreshTokens.Table).
		Columns("id", "user_id", "tenant_id", "token_hash", "expires_at").
		Values(id, r.UserID, nullString(r.TenantID), r.TokenHash, r.ExpiresAt).
		Suffix("RETURNING id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		return nil, storageError("insert refresh token", err)
	}

	return created, nil
}

func (s *Storage) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*types.RefreshToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRefreshTokenByHash")
	defer span.End()

	var (
		r        types.RefreshToken
		tenantID sql.NullString
		revoked  sql.NullTime
	)

	err := s.db.Statement(ctx).
		Select("id", "user_id", "tenant_id", "token_hash", "expires_at", "revoked_at", "created_at").
		From(RefreshTokens.Table).
		Where(sq.Eq{"token_hash": tokenHash}).
		QueryRowContext(ctx).
		Scan(&r.ID, &r.UserID, &tenantID, &r.TokenHash, &r.ExpiresAt, &revoked, &r.CreatedAt)

	if err != nil {
		return nil, storageError("get refresh token", err)
	}

	r.TenantID = tenantID.String
	if revoked.Valid {
		r.RevokedAt = &revoked.Time
	}

	return &r, nil
}

// RevokeRefreshTokenIfActive revokes in a single conditional update, the
// boolean is false when another caller revoked it first or it expired.
func (s *Storage) RevokeRefreshTokenIfActive(ctx context.Context, id string, now time.Time) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeRefreshTokenIfActive")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Update(RefreshTokens.Table).
		Set("revoked_at", now).
		Where(sq.Eq{"id": id, "revoked_at": nil}).
		Where(sq.Gt{"expires_at": now}).
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return n == 1, nil
}

func (s *Storage) RevokeRefreshTokensByUser(ctx context.Context, userID string, now time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeRefreshTokensByUser")
	defer span.End()

	result, err := s.db.Statement(ctx).
		Update(RefreshTokens.Table).
		Set("revoked_at", now).
		Where(sq.Eq{"user_id": userID, "revoked_at": nil}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	return result.RowsAffected()
}
