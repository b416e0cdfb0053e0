// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/tenant-identity-service/internal/types"
)

// Every read takes a Scope, writes address rows by id.

type TenantStorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, scope Scope, id string) (*types.Tenant, error)
	TenantNameExists(ctx context.Context, scope Scope, name string) (bool, error)
	ListTenants(ctx context.Context, scope Scope, page, size int64) ([]*types.Tenant, error)
	UpdateTenantStatus(ctx context.Context, id string, status types.TenantStatus) error
}

type UserStorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, scope Scope, id string) (*types.User, error)
	GetUserByEmailHash(ctx context.Context, scope Scope, emailHash string) (*types.User, error)
	GetUserWithMemberships(ctx context.Context, scope Scope, emailHash string) (*types.User, error)
	ConfirmUserEmail(ctx context.Context, id, expectedStamp, newStamp string) error
	UpdateUserPassword(ctx context.Context, id, passwordHash, newStamp string) error
}

type MembershipStorageInterface interface {
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetMembership(ctx context.Context, scope Scope, userID string) (*types.Membership, error)
	ListMembershipsByUser(ctx context.Context, scope Scope, userID string) ([]*types.Membership, error)
	ListMembersByTenant(ctx context.Context, scope Scope, page, size int64) ([]*types.Membership, error)
	TenantHasMembers(ctx context.Context, scope Scope) (bool, error)
}

type RoleStorageInterface interface {
	GetRoleByName(ctx context.Context, name types.Role) (*types.RoleRecord, error)
	ListUserRoles(ctx context.Context, userID string) ([]*types.RoleRecord, error)
	ListPermissionsByRoles(ctx context.Context, roleIDs []string) ([]string, error)
	AssignUserRole(ctx context.Context, userID, roleID string) error
}

type RefreshTokenStorageInterface interface {
	CreateRefreshToken(ctx context.Context, r *types.RefreshToken) (*types.RefreshToken, error)
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*types.RefreshToken, error)
	RevokeRefreshTokenIfActive(ctx context.Context, id string, now time.Time) (bool, error)
	RevokeRefreshTokensByUser(ctx context.Context, userID string, now time.Time) (int64, error)
}

type InvitationStorageInterface interface {
	CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error)
	GetPendingInvitation(ctx context.Context, scope Scope, userID string) (*types.Invitation, error)
	AcceptInvitation(ctx context.Context, id string, now time.Time) error
}

type OutboxStorageInterface interface {
	EnqueueOutboxMessage(ctx context.Context, m *types.OutboxMessage) error
	LeaseOutboxMessages(ctx context.Context, owner string, now time.Time, leaseTTL time.Duration, limit uint64) ([]*types.OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, id, owner string, now time.Time) error
	MarkOutboxRetry(ctx context.Context, id, owner string, nextAttemptAt time.Time, lastError string) error
	MarkOutboxDead(ctx context.Context, id, owner string, now time.Time, lastError string) error
}

type StorageInterface interface {
	TenantStorageInterface
	UserStorageInterface
	MembershipStorageInterface
	RoleStorageInterface
	RefreshTokenStorageInterface
	InvitationStorageInterface
	OutboxStorageInterface
}
