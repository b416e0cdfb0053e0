// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokens

import (
	"context"
	"time"

	"github.com/canonical/tenant-identity-service/internal/types"
)

type IssuerInterface interface {
	Issue(user *types.User, tenantID string, roles, permissions []string) (string, time.Time, error)
	Parse(raw string) (*AccessClaims, error)
}

type EmailDecrypterInterface interface {
	DecryptEmail(user *types.User) (string, error)
}

type IdentityInterface interface {
	FindByID(ctx context.Context, id string) (*types.User, error)
	RolesAndPermissions(ctx context.Context, userID, tenantID string) ([]string, []string, error)
}

type StorageInterface interface {
	CreateRefreshToken(ctx context.Context, r *types.RefreshToken) (*types.RefreshToken, error)
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*types.RefreshToken, error)
	RevokeRefreshTokenIfActive(ctx context.Context, id string, now time.Time) (bool, error)
	RevokeRefreshTokensByUser(ctx context.Context, userID string, now time.Time) (int64, error)
}

type TxRunnerInterface interface {
	WithRetryTx(ctx context.Context, fn func(context.Context) error) error
}

type RefreshManagerInterface interface {
	Issue(ctx context.Context, userID, tenantID string) (string, time.Time, error)
	Grant(ctx context.Context, userID, tenantID string) (*types.SessionGrant, error)
	IssuePair(ctx context.Context, user *types.User, tenantID string) (*types.TokenPair, error)
	IssueGrantedPair(ctx context.Context, user *types.User, grant *types.SessionGrant) (*types.TokenPair, error)
	Refresh(ctx context.Context, plaintext string) (*types.TokenPair, error)
	Revoke(ctx context.Context, plaintext string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
