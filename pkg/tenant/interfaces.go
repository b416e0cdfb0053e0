// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"time"

	"github.com/canonical/tenant-identity-service/internal/identity"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/types"
	"github.com/canonical/tenant-identity-service/pkg/notifications"
)

type ServiceInterface interface {
	Signup(ctx context.Context, req *SignupRequest) (*SignupResult, error)
	Activate(ctx context.Context, userID, tenantID, token string) (*types.Tenant, error)
	Register(ctx context.Context, req *RegisterRequest) (*types.Tenant, error)
	AssignUser(ctx context.Context, tenantID, userID string, role types.Role) (*types.Membership, error)
	UpdateStatus(ctx context.Context, id string, status types.TenantStatus) (*types.Tenant, error)
	ListTenants(ctx context.Context, page, size int64) ([]*types.Tenant, error)
	ListMembers(ctx context.Context, tenantID string, page, size int64) ([]*types.Membership, error)
	Invite(ctx context.Context, req *InviteRequest) (*InviteResult, error)
	ValidateInvite(ctx context.Context, userID, tenantID, token string) (*ValidateInviteResult, error)
	CompleteInvite(ctx context.Context, req *CompleteInviteRequest) (*types.TokenPair, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, scope storage.Scope, id string) (*types.Tenant, error)
	TenantNameExists(ctx context.Context, scope storage.Scope, name string) (bool, error)
	ListTenants(ctx context.Context, scope storage.Scope, page, size int64) ([]*types.Tenant, error)
	UpdateTenantStatus(ctx context.Context, id string, status types.TenantStatus) error
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetMembership(ctx context.Context, scope storage.Scope, userID string) (*types.Membership, error)
	ListMembersByTenant(ctx context.Context, scope storage.Scope, page, size int64) ([]*types.Membership, error)
	TenantHasMembers(ctx context.Context, scope storage.Scope) (bool, error)
	GetUserWithMemberships(ctx context.Context, scope storage.Scope, emailHash string) (*types.User, error)
	CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error)
	GetPendingInvitation(ctx context.Context, scope storage.Scope, userID string) (*types.Invitation, error)
	AcceptInvitation(ctx context.Context, id string, now time.Time) error
}

type IdentityInterface interface {
	CreateUser(ctx context.Context, in identity.NewUser) (*types.User, error)
	FindByID(ctx context.Context, id string) (*types.User, error)
	GenerateEmailConfirmationToken(ctx context.Context, user *types.User) (string, error)
	ConfirmEmail(ctx context.Context, userID, token string) (*types.User, error)
	GenerateSignupToken(ctx context.Context, user *types.User, tenantID string) (string, error)
	ConfirmSignup(ctx context.Context, userID, tenantID, token string) (*types.User, error)
	GeneratePasswordResetToken(ctx context.Context, user *types.User) (string, error)
	ResetPassword(ctx context.Context, userID, token, password string) error
	FindRoleByName(ctx context.Context, role types.Role) (*types.RoleRecord, error)
	AssignRole(ctx context.Context, userID string, role types.Role) error
	DecryptEmail(user *types.User) (string, error)
}

type NotifierInterface interface {
	SignupConfirmation(ctx context.Context, r notifications.Recipient, tenantName, tenantID, token string) error
	Invitation(ctx context.Context, r notifications.Recipient, tenantName, tenantID, token string) error
	MemberAdded(ctx context.Context, r notifications.Recipient, tenantName, tenantID string) error
}

type TokenPairIssuerInterface interface {
	IssuePair(ctx context.Context, user *types.User, tenantID string) (*types.TokenPair, error)
}

type TxRunnerInterface interface {
	WithRetryTx(ctx context.Context, fn func(context.Context) error) error
}
