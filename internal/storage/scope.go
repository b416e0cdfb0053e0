// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

type Capability uint8

const (
	// TenantScoped rows carry a tenant_id and are only visible inside that tenant.
	TenantScoped Capability = 1 << iota
	// SoftDeletable rows carry an enabled flag, disabled rows are never read.
	SoftDeletable
)

// Entity describes a table and the isolation rules that apply to its reads.
type Entity struct {
	Table        string
	Capabilities Capability
}

func (e Entity) Has(c Capability) bool {
	return e.Capabilities&c == c
}

var (
	Tenants        = Entity{Table: "tenants", Capabilities: SoftDeletable}
	Users          = Entity{Table: "users", Capabilities: SoftDeletable}
	Memberships    = Entity{Table: "memberships", Capabilities: TenantScoped | SoftDeletable}
	Invitations    = Entity{Table: "invitations", Capabilities: TenantScoped | SoftDeletable}
	Roles          = Entity{Table: "roles"}
	UserRoles      = Entity{Table: "user_roles"}
	RolePerms      = Entity{Table: "role_permissions"}
	RefreshTokens  = Entity{Table: "refresh_tokens"}
	OutboxMessages = Entity{Table: "outbox_messages"}
)

// Scope is the isolation context every read runs under. The zero value is
// a tenant scope without a tenant and matches no tenant scoped row.
type Scope struct {
	tenantID string
	admin    bool
}

// ForTenant restricts tenant scoped reads to tenantID.
func ForTenant(tenantID string) Scope {
	return Scope{tenantID: tenantID}
}

// AdminLookup lifts the tenant predicate for cross tenant lookups, the
// soft delete predicate still applies.
func AdminLookup() Scope {
	return Scope{admin: true}
}

func (s Scope) TenantID() string {
	return s.tenantID
}

func (s Scope) IsAdminLookup() bool {
	return s.admin
}

func (s Scope) String() string {
	if s.admin {
		return "admin-lookup"
	}

	return fmt.Sprintf("tenant:%s", s.tenantID)
}

func column(alias, name string) string {
	if alias == "" {
		return name
	}

	return alias + "." + name
}

// Predicate returns the isolation filter for e under this scope.
func (s Scope) Predicate(e Entity, alias string) sq.Sqlizer {
	preds := sq.And{}

	if e.Has(TenantScoped) && e != Tenants && !s.admin {
		if s.tenantID == "" {
			preds = append(preds, sq.Expr("1=0"))
		} else {
			preds = append(preds, sq.Eq{column(alias, "tenant_id"): s.tenantID})
		}
	}

	if e.Has(SoftDeletable) {
		preds = append(preds, sq.Eq{column(alias, "enabled"): true})
	}

	return preds
}

// Select starts a read of e with the isolation predicate already applied.
func (s Scope) Select(b sq.StatementBuilderType, e Entity, alias string, columns ...string) sq.SelectBuilder {
	from := e.Table
	if alias != "" {
		from = fmt.Sprintf("%s %s", e.Table, alias)
	}

	return b.Select(columns...).From(from).Where(s.Predicate(e, alias))
}

// Join left joins e with the isolation predicate inside the ON clause, so
// included rows are filtered the same way as root rows.
func (s Scope) Join(q sq.SelectBuilder, e Entity, alias, on string, args ...interface{}) (sq.SelectBuilder, error) {
	pred, predArgs, err := s.Predicate(e, alias).ToSql()
	if err != nil {
		return q, fmt.Errorf("failed to build join predicate: %w", err)
	}

	return q.LeftJoin(
		fmt.Sprintf("%s %s ON %s AND %s", e.Table, alias, on, pred),
		append(args, predArgs...)...,
	), nil
}
