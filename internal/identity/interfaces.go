// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/types"
)

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, scope storage.Scope, id string) (*types.User, error)
	GetUserByEmailHash(ctx context.Context, scope storage.Scope, emailHash string) (*types.User, error)
	ConfirmUserEmail(ctx context.Context, id, expectedStamp, newStamp string) error
	UpdateUserPassword(ctx context.Context, id, passwordHash, newStamp string) error
	GetRoleByName(ctx context.Context, name types.Role) (*types.RoleRecord, error)
	AssignUserRole(ctx context.Context, userID, roleID string) error
	ListUserRoles(ctx context.Context, userID string) ([]*types.RoleRecord, error)
	ListPermissionsByRoles(ctx context.Context, roleIDs []string) ([]string, error)
	GetMembership(ctx context.Context, scope storage.Scope, userID string) (*types.Membership, error)
}

type CipherInterface interface {
	Encrypt(string) (string, error)
	Decrypt(string) (string, error)
}
