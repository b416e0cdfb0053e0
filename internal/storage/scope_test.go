// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"reflect"
	"testing"

	sq "github.com/Masterminds/squirrel"
)

func TestScopePredicate(t *testing.T) {
	tests := []struct {
		name         string
		scope        Scope
		entity       Entity
		alias        string
		expectedSQL  string
		expectedArgs []interface{}
	}{
		{
			name:         "tenant scoped soft deletable",
			scope:        ForTenant("t1"),
			entity:       Memberships,
			alias:        "m",
			expectedSQL:  "(m.tenant_id = ? AND m.enabled = ?)",
			expectedArgs: []interface{}{"t1", true},
		},
		{
			name:         "admin lookup keeps soft delete",
			scope:        AdminLookup(),
			entity:       Memberships,
			alias:        "m",
			expectedSQL:  "(m.enabled = ?)",
			expectedArgs: []interface{}{true},
		},
		{
			name:         "missing tenant matches nothing",
			scope:        Scope{},
			entity:       Invitations,
			alias:        "",
			expectedSQL:  "(1=0 AND enabled = ?)",
			expectedArgs: []interface{}{true},
		},
		{
			name:         "tenants are exempt from the tenant predicate",
			scope:        ForTenant("t1"),
			entity:       Tenants,
			alias:        "t",
			expectedSQL:  "(t.enabled = ?)",
			expectedArgs: []interface{}{true},
		},
		{
			name:         "users are global",
			scope:        ForTenant("t1"),
			entity:       Users,
			alias:        "u",
			expectedSQL:  "(u.enabled = ?)",
			expectedArgs: []interface{}{true},
		},
		{
			name:         "no capabilities",
			scope:        ForTenant("t1"),
			entity:       RefreshTokens,
			alias:        "",
			expectedSQL:  "(1=1)",
			expectedArgs: []interface{}{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sql, args, err := test.scope.Predicate(test.entity, test.alias).ToSql()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if sql != test.expectedSQL {
				t.Fatalf("expected sql %q got %q", test.expectedSQL, sql)
			}

			if !reflect.DeepEqual(args, test.expectedArgs) {
				t.Fatalf("expected args %v got %v", test.expectedArgs, args)
			}
		})
	}
}

func TestScopeSelectAndJoin(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	scope := ForTenant("t1")

	q := scope.Select(b, Users, "u", "u.id", "m.tenant_id").Where(sq.Eq{"u.email_hash": "h"})

	q, err := scope.Join(q, Memberships, "m", "m.user_id = u.id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedSQL := "SELECT u.id, m.tenant_id FROM users u " +
		"LEFT JOIN memberships m ON m.user_id = u.id AND (m.tenant_id = $1 AND m.enabled = $2) " +
		"WHERE (u.enabled = $3) AND u.email_hash = $4"

	if sql != expectedSQL {
		t.Fatalf("expected sql\n%q\ngot\n%q", expectedSQL, sql)
	}

	expectedArgs := []interface{}{"t1", true, true, "h"}
	if !reflect.DeepEqual(args, expectedArgs) {
		t.Fatalf("expected args %v got %v", expectedArgs, args)
	}
}

func TestScopeString(t *testing.T) {
	if AdminLookup().String() != "admin-lookup" || !AdminLookup().IsAdminLookup() {
		t.Fatalf("unexpected admin scope")
	}

	if ForTenant("t1").String() != "tenant:t1" || ForTenant("t1").TenantID() != "t1" {
		t.Fatalf("unexpected tenant scope")
	}
}
