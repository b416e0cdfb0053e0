// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/security"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/internal/types"
)

const (
	refreshTokenBytes      = 64
	DefaultRefreshLifetime = 30 * 24 * time.Hour
)

// RefreshManager issues opaque refresh tokens and rotates them. Only the
// hash of a token is stored.
type RefreshManager struct {
	storage  StorageInterface
	identity IdentityInterface
	issuer   IssuerInterface
	tx       TxRunnerInterface
	lifetime time.Duration
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ RefreshManagerInterface = (*RefreshManager)(nil)

func (m *RefreshManager) Issue(ctx context.Context, userID, tenantID string) (string, time.Time, error) {
	ctx, span := m.tracer.Start(ctx, "tokens.RefreshManager.Issue")
	defer span.End()

	plaintext, err := security.RandomToken(refreshTokenBytes)
	if err != nil {
		return "", time.Time{}, err
	}

	expiresAt := m.now().Add(m.lifetime)

	_, err = m.storage.CreateRefreshToken(ctx, &types.RefreshToken{
		UserID:    userID,
		TenantID:  tenantID,
		TokenHash: security.Hash(plaintext),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return plaintext, expiresAt, nil
}

// Grant resolves the user's effective roles and permissions in tenantID.
func (m *RefreshManager) Grant(ctx context.Context, userID, tenantID string) (*types.SessionGrant, error) {
	ctx, span := m.tracer.Start(ctx, "tokens.RefreshManager.Grant")
	defer span.End()

	roles, permissions, err := m.identity.RolesAndPermissions(ctx, userID, tenantID)
	if err != nil {
		return nil, err
	}

	return &types.SessionGrant{TenantID: tenantID, Roles: roles, Permissions: permissions}, nil
}

// IssuePair mints an access token with the user's effective roles in
// tenantID together with a fresh refresh token.
func (m *RefreshManager) IssuePair(ctx context.Context, user *types.User, tenantID string) (*types.TokenPair, error) {
	ctx, span := m.tracer.Start(ctx, "tokens.RefreshManager.IssuePair")
	defer span.End()

	grant, err := m.Grant(ctx, user.ID, tenantID)
	if err != nil {
		return nil, err
	}

	return m.IssueGrantedPair(ctx, user, grant)
}

// IssueGrantedPair mints the pair from a grant resolved earlier, roles are
// not looked up again.
func (m *RefreshManager) IssueGrantedPair(ctx context.Context, user *types.User, grant *types.SessionGrant) (*types.TokenPair, error) {
	ctx, span := m.tracer.Start(ctx, "tokens.RefreshManager.IssueGrantedPair")
	defer span.End()

	access, accessExpiresAt, err := m.issuer.Issue(user, grant.TenantID, grant.Roles, grant.Permissions)
	if err != nil {
		return nil, err
	}

	refresh, refreshExpiresAt, err := m.Issue(ctx, user.ID, grant.TenantID)
	if err != nil {
		return nil, err
	}

	m.logger.Security().TokenIssued(user.ID, grant.TenantID)

	return &types.TokenPair{
		AccessToken:           access,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refresh,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}

// Refresh rotates plaintext. The old token is revoked with a conditional
// update, so of two concurrent refreshes only one gets a new pair.
func (m *RefreshManager) Refresh(ctx context.Context, plaintext string) (*types.TokenPair, error) {
	ctx, span := m.tracer.Start(ctx, "tokens.RefreshManager.Refresh")
	defer span.End()

	if plaintext == "" {
		return nil, apperrors.Unauthorized("invalid refresh token")
	}

	var pair *types.TokenPair

	err := m.tx.WithRetryTx(ctx, func(ctx context.Context) error {
		now := m.now()

		current, err := m.storage.GetRefreshTokenByHash(ctx, security.Hash(plaintext))
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.Unauthorized("invalid refresh token")
		}

		if err != nil {
			return err
		}

		if !current.IsActive(now) {
			m.logger.Security().AuthnFailure(current.UserID, "refresh token inactive")
			return apperrors.Unauthorized("invalid refresh token")
		}

		revoked, err := m.storage.RevokeRefreshTokenIfActive(ctx, current.ID, now)
		if err != nil {
			return err
		}

		if !revoked {
			m.logger.Security().AuthnFailure(current.UserID, "refresh token already rotated")
			return apperrors.Unauthorized("invalid refresh token")
		}

		user, err := m.identity.FindByID(ctx, current.UserID)
		if apperrors.Is(err, apperrors.KindNotFound) || (err == nil && !user.Enabled) {
			return apperrors.Unauthorized("invalid refresh token")
		}

		if err != nil {
			return err
		}

		pair, err = m.IssuePair(ctx, user, current.TenantID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return pair, nil
}

// Revoke is idempotent, unknown or already revoked tokens are ignored.
func (m *RefreshManager) Revoke(ctx context.Context, plaintext string) error {
	ctx, span := m.tracer.Start(ctx, "tokens.RefreshManager.Revoke")
	defer span.End()

	if plaintext == "" {
		return nil
	}

	current, err := m.storage.GetRefreshTokenByHash(ctx, security.Hash(plaintext))
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}

	if err != nil {
		return err
	}

	revoked, err := m.storage.RevokeRefreshTokenIfActive(ctx, current.ID, m.now())
	if err != nil {
		return err
	}

	if revoked {
		m.logger.Security().TokenRevoked(current.UserID, current.TenantID)
	}

	return nil
}

func (m *RefreshManager) RevokeAllForUser(ctx context.Context, userID string) error {
	ctx, span := m.tracer.Start(ctx, "tokens.RefreshManager.RevokeAllForUser")
	defer span.End()

	n, err := m.storage.RevokeRefreshTokensByUser(ctx, userID, m.now())
	if err != nil {
		return err
	}

	if n > 0 {
		m.logger.Security().TokenRevoked(userID, "")
	}

	m.logger.Debugf("revoked %d refresh tokens of user %s", n, userID)

	return nil
}

func NewRefreshManager(s StorageInterface, identity IdentityInterface, issuer IssuerInterface, tx TxRunnerInterface, lifetime time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RefreshManager {
	m := new(RefreshManager)

	m.storage = s
	m.identity = identity
	m.issuer = issuer
	m.tx = tx
	m.lifetime = lifetime
	if m.lifetime <= 0 {
		m.lifetime = DefaultRefreshLifetime
	}
	m.now = time.Now

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
