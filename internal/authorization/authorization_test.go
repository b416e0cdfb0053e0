// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-identity-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestAuthorizer_HasPermission(t *testing.T) {
	testCases := []struct {
		name        string
		roles       []string
		permissions []string
		required    string
		expected    bool
	}{
		{
			name:        "explicit permission",
			roles:       []string{"User"},
			permissions: []string{TenantsRead, TenantsManage},
			required:    TenantsManage,
			expected:    true,
		},
		{
			name:        "missing permission",
			roles:       []string{"User"},
			permissions: []string{TenantsRead},
			required:    TenantsManage,
			expected:    false,
		},
		{
			name:        "wildcard",
			roles:       []string{"Admin"},
			permissions: []string{Wildcard},
			required:    RolesDelete,
			expected:    true,
		},
		{
			name:     "owner bypasses checks",
			roles:    []string{"Owner"},
			required: TenantsManage,
			expected: true,
		},
		{
			name:     "developer bypasses checks",
			roles:    []string{"User", "Developer"},
			required: RolesCreate,
			expected: true,
		},
		{
			name:     "unknown role",
			roles:    []string{"root"},
			required: TenantsRead,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.HasPermission").Return(context.Background(), trace.SpanFromContext(context.Background()))

			a := NewAuthorizer(mockTracer, mockMonitor, mockLogger)

			if r := a.HasPermission(context.Background(), tc.roles, tc.permissions, tc.required); r != tc.expected {
				t.Fatalf("expected %v got %v", tc.expected, r)
			}
		})
	}
}

func TestAuthorizer_HasRole(t *testing.T) {
	testCases := []struct {
		name     string
		roles    []string
		allowed  []types.Role
		expected bool
	}{
		{name: "matching role", roles: []string{"SuperAdmin"}, allowed: []types.Role{types.RoleSuperAdmin}, expected: true},
		{name: "case insensitive", roles: []string{"developer"}, allowed: []types.Role{types.RoleDeveloper}, expected: true},
		{name: "owner is not superadmin", roles: []string{"Owner"}, allowed: []types.Role{types.RoleSuperAdmin}, expected: false},
		{name: "no roles", roles: nil, allowed: []types.Role{types.RoleUser}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.HasRole").Return(context.Background(), trace.SpanFromContext(context.Background()))

			a := NewAuthorizer(mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

			if r := a.HasRole(context.Background(), tc.roles, tc.allowed...); r != tc.expected {
				t.Fatalf("expected %v got %v", tc.expected, r)
			}
		})
	}
}

func TestIsKnownPermission(t *testing.T) {
	for _, p := range AllPermissions {
		if !IsKnownPermission(p) {
			t.Fatalf("expected %s to be known", p)
		}
	}

	if !IsKnownPermission(Wildcard) {
		t.Fatalf("wildcard should be known")
	}

	if IsKnownPermission("Permissions.Unknown") {
		t.Fatalf("unexpected known permission")
	}
}
