// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"slices"

	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer evaluates the roles and permissions carried by an access token.
type Authorizer struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HasPermission is true for super roles, the wildcard permission or an
// exact match of required.
func (a *Authorizer) HasPermission(ctx context.Context, roles []string, permissions []string, required string) bool {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.HasPermission")
	defer span.End()

	for _, r := range roles {
		if role, ok := types.ParseRole(r); ok && role.IsSuper() {
			return true
		}
	}

	return slices.Contains(permissions, Wildcard) || slices.Contains(permissions, required)
}

func (a *Authorizer) HasRole(ctx context.Context, roles []string, allowed ...types.Role) bool {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.HasRole")
	defer span.End()

	for _, r := range roles {
		role, ok := types.ParseRole(r)
		if ok && slices.Contains(allowed, role) {
			return true
		}
	}

	return false
}

func NewAuthorizer(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
