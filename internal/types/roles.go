// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strings"
)

// Role is the closed set of roles known to the service.
type Role string

const (
	RoleDeveloper  Role = "Developer"
	RoleSuperAdmin Role = "SuperAdmin"
	RoleOwner      Role = "Owner"
	RoleAdmin      Role = "Admin"
	RoleUser       Role = "User"

	DefaultInviteRole = RoleUser
)

var AllRoles = []Role{RoleDeveloper, RoleSuperAdmin, RoleOwner, RoleAdmin, RoleUser}

// IsSuper reports roles that bypass explicit permission checks.
func (r Role) IsSuper() bool {
	switch r {
	case RoleOwner, RoleSuperAdmin, RoleDeveloper:
		return true
	}

	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole matches case-insensitively against AllRoles.
func ParseRole(s string) (Role, bool) {
	for _, r := range AllRoles {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, true
		}
	}

	return "", false
}
