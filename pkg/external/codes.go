// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"context"
	"time"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/security"
	"github.com/canonical/tenant-identity-service/internal/types"
)

const (
	codeKeyPrefix  = "ext_code:"
	codeBytes      = 32
	DefaultCodeTTL = 60 * time.Second
)

// LoginCode is the cached value behind a one-time code. The grant is
// resolved at callback time and the exchange mints from it as is.
type LoginCode struct {
	UserID      string    `json:"userId"`
	TenantID    string    `json:"tenantId,omitempty"`
	Roles       []string  `json:"roles"`
	Permissions []string  `json:"permissions"`
	Provider    string    `json:"provider"`
	IssuedAt    time.Time `json:"issuedAt"`
}

func (c *LoginCode) Grant() *types.SessionGrant {
	return &types.SessionGrant{TenantID: c.TenantID, Roles: c.Roles, Permissions: c.Permissions}
}

// CodeBridge hands a finished external login over to the client through a
// short lived code. Only the hash of a code is used as cache key and a code
// can be redeemed once.
type CodeBridge struct {
	cache CacheInterface
	ttl   time.Duration
	now   func() time.Time
}

func codeKey(code string) string {
	return codeKeyPrefix + security.Hash(code)
}

func (b *CodeBridge) Issue(ctx context.Context, payload LoginCode) (string, error) {
	code, err := security.RandomToken(codeBytes)
	if err != nil {
		return "", err
	}

	payload.IssuedAt = b.now().UTC()
	if err := b.cache.SetJSON(ctx, codeKey(code), payload, b.ttl); err != nil {
		return "", apperrors.ServiceUnavailable(err, "login code store unavailable")
	}

	return code, nil
}

func (b *CodeBridge) Redeem(ctx context.Context, code string) (*LoginCode, error) {
	if code == "" {
		return nil, apperrors.Unauthorized("invalid or expired code")
	}

	payload := new(LoginCode)

	found, err := b.cache.GetDelJSON(ctx, codeKey(code), payload)
	if err != nil {
		return nil, apperrors.ServiceUnavailable(err, "login code store unavailable")
	}

	if !found {
		return nil, apperrors.Unauthorized("invalid or expired code")
	}

	return payload, nil
}

func NewCodeBridge(cache CacheInterface, ttl time.Duration) *CodeBridge {
	if ttl <= 0 {
		ttl = DefaultCodeTTL
	}

	return &CodeBridge{cache: cache, ttl: ttl, now: time.Now}
}
