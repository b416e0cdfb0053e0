// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/tenant-identity-service/internal/types"
	"github.com/canonical/tenant-identity-service/pkg/tokens"
)

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw access token and returns its principal
	VerifyToken(ctx context.Context, rawToken string) (*Principal, error)
}

type TokenParserInterface interface {
	Parse(raw string) (*tokens.AccessClaims, error)
}

type AuthorizerInterface interface {
	HasPermission(ctx context.Context, roles []string, permissions []string, required string) bool
	HasRole(ctx context.Context, roles []string, allowed ...types.Role) bool
}
