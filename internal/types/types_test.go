// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
	"time"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
		ok       bool
	}{
		{input: "Owner", expected: RoleOwner, ok: true},
		{input: " superadmin ", expected: RoleSuperAdmin, ok: true},
		{input: "USER", expected: RoleUser, ok: true},
		{input: "root", ok: false},
		{input: "", ok: false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			r, ok := ParseRole(test.input)
			if ok != test.ok || r != test.expected {
				t.Fatalf("expected %q/%v got %q/%v", test.expected, test.ok, r, ok)
			}
		})
	}
}

func TestSuperRoles(t *testing.T) {
	for _, r := range []Role{RoleOwner, RoleSuperAdmin, RoleDeveloper} {
		if !r.IsSuper() {
			t.Fatalf("expected %s to be super", r)
		}
	}

	for _, r := range []Role{RoleAdmin, RoleUser} {
		if r.IsSuper() {
			t.Fatalf("expected %s not to be super", r)
		}
	}
}

func TestRefreshTokenIsActive(t *testing.T) {
	now := time.Now()
	revoked := now.Add(-time.Minute)

	active := &RefreshToken{ExpiresAt: now.Add(time.Hour)}
	expired := &RefreshToken{ExpiresAt: now.Add(-time.Second)}
	revokedToken := &RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}

	if !active.IsActive(now) {
		t.Fatalf("expected active token")
	}

	if expired.IsActive(now) {
		t.Fatalf("expected expired token to be inactive")
	}

	if revokedToken.IsActive(now) {
		t.Fatalf("expected revoked token to be inactive")
	}
}

func TestUserMemberOf(t *testing.T) {
	u := &User{
		Memberships: []*Membership{
			{TenantID: "t1", Enabled: false},
			{TenantID: "t2", Enabled: true},
		},
	}

	if u.MemberOf("t1") != nil {
		t.Fatalf("disabled membership should not count")
	}

	if u.MemberOf("t2") == nil {
		t.Fatalf("expected membership in t2")
	}

	if u.MemberOf("t3") != nil {
		t.Fatalf("unexpected membership in t3")
	}
}
