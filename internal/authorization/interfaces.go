// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/tenant-identity-service/internal/types"
)

type AuthorizerInterface interface {
	HasPermission(ctx context.Context, roles []string, permissions []string, required string) bool
	HasRole(ctx context.Context, roles []string, allowed ...types.Role) bool
}
