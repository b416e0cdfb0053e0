// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"

	"github.com/canonical/tenant-identity-service/internal/identity"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/types"
	"github.com/canonical/tenant-identity-service/pkg/notifications"
)

type ServiceInterface interface {
	Login(ctx context.Context, req *LoginRequest) (*types.TokenPair, error)
	SignIn(ctx context.Context, user *types.User, tenantID string) (*types.TokenPair, error)
	Grant(ctx context.Context, user *types.User, tenantID string) (*types.SessionGrant, error)
	SignInWithGrant(ctx context.Context, user *types.User, grant *types.SessionGrant) (*types.TokenPair, error)
	RegisterUser(ctx context.Context, req *RegisterUserRequest) (*RegisterUserResult, error)
	ConfirmEmail(ctx context.Context, userID, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type IdentityInterface interface {
	CreateUser(ctx context.Context, in identity.NewUser) (*types.User, error)
	FindByEmail(ctx context.Context, email string) (*types.User, error)
	CheckPassword(ctx context.Context, user *types.User, password string) bool
	GenerateEmailConfirmationToken(ctx context.Context, user *types.User) (string, error)
	ConfirmEmail(ctx context.Context, userID, token string) (*types.User, error)
	GeneratePasswordResetToken(ctx context.Context, user *types.User) (string, error)
	ResetPassword(ctx context.Context, userID, token, password string) error
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, scope storage.Scope, id string) (*types.Tenant, error)
	GetMembership(ctx context.Context, scope storage.Scope, userID string) (*types.Membership, error)
	ListMembershipsByUser(ctx context.Context, scope storage.Scope, userID string) ([]*types.Membership, error)
}

type NotifierInterface interface {
	EmailConfirmation(ctx context.Context, r notifications.Recipient, token string) error
	PasswordReset(ctx context.Context, r notifications.Recipient, token string) error
}

type TokensInterface interface {
	Grant(ctx context.Context, userID, tenantID string) (*types.SessionGrant, error)
	IssuePair(ctx context.Context, user *types.User, tenantID string) (*types.TokenPair, error)
	IssueGrantedPair(ctx context.Context, user *types.User, grant *types.SessionGrant) (*types.TokenPair, error)
	Refresh(ctx context.Context, plaintext string) (*types.TokenPair, error)
	Revoke(ctx context.Context, plaintext string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

type TxRunnerInterface interface {
	WithRetryTx(ctx context.Context, fn func(context.Context) error) error
}
