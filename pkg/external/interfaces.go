// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"context"
	"time"

	"github.com/canonical/tenant-identity-service/internal/identity"
	"github.com/canonical/tenant-identity-service/internal/types"
)

type ServiceInterface interface {
	Begin(ctx context.Context, provider, tenantID string) (string, error)
	Callback(ctx context.Context, provider, state, code string) (string, error)
	Exchange(ctx context.Context, code string) (*types.TokenPair, error)
}

type ProviderInterface interface {
	Name() string
	AuthCodeURL(state, nonce, verifier string) string
	Exchange(ctx context.Context, code, nonce, verifier string) (*Identity, error)
}

type CacheInterface interface {
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	GetDelJSON(ctx context.Context, key string, v interface{}) (bool, error)
}

type IdentityInterface interface {
	CreateUser(ctx context.Context, in identity.NewUser) (*types.User, error)
	FindByID(ctx context.Context, id string) (*types.User, error)
	FindByEmail(ctx context.Context, email string) (*types.User, error)
}

type SessionInterface interface {
	Grant(ctx context.Context, user *types.User, tenantID string) (*types.SessionGrant, error)
	SignInWithGrant(ctx context.Context, user *types.User, grant *types.SessionGrant) (*types.TokenPair, error)
}
