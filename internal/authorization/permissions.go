// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	// Wildcard grants every permission
	Wildcard = "*"

	TenantsRead   = "Permissions.Tenants.Read"
	TenantsCreate = "Permissions.Tenants.Create"
	TenantsUpdate = "Permissions.Tenants.Update"
	TenantsDelete = "Permissions.Tenants.Delete"
	TenantsManage = "Permissions.Tenants.Manage"

	RolesRead   = "Permissions.Roles.Read"
	RolesCreate = "Permissions.Roles.Create"
	RolesUpdate = "Permissions.Roles.Update"
	RolesDelete = "Permissions.Roles.Delete"
)

// AllPermissions is the static registry of permissions known to the service.
var AllPermissions = []string{
	TenantsRead,
	TenantsCreate,
	TenantsUpdate,
	TenantsDelete,
	TenantsManage,
	RolesRead,
	RolesCreate,
	RolesUpdate,
	RolesDelete,
}

func IsKnownPermission(p string) bool {
	if p == Wildcard {
		return true
	}

	for _, known := range AllPermissions {
		if known == p {
			return true
		}
	}

	return false
}
