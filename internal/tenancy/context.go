// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import "context"

type contextKey struct{}

var tenantContextKey = contextKey{}

// WithTenantID returns a copy of ctx carrying the resolved tenant id.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantContextKey, tenantID)
}

// TenantID returns the tenant id resolved for the current request, empty
// when none was resolved.
func TenantID(ctx context.Context) string {
	id, _ := ctx.Value(tenantContextKey).(string)
	return id
}
