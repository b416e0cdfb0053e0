// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/canonical/tenant-identity-service/internal/db"
	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/internal/types"
)

func newTestStorage(t *testing.T, exact bool) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	matcher := sqlmock.QueryMatcherRegexp
	if exact {
		matcher = sqlmock.QueryMatcherEqual
	}

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	client := db.NewDBClientFromDB(conn, db.RetryConfig{}, tracer, monitor, logger)

	return NewStorage(client, tracer, monitor, logger), mock
}

func checkExpectations(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

var tenantRowColumns = []string{"id", "trade_name", "legal_name", "document", "status", "enabled", "created_at", "updated_at"}

func TestStorage_GetTenantByID(t *testing.T) {
	now := time.Now()
	query := "SELECT t.id, t.trade_name, t.legal_name, t.document, t.status, t.enabled, t.created_at, t.updated_at " +
		"FROM tenants t WHERE (t.enabled = $1) AND t.id = $2"

	tests := []struct {
		name        string
		setup       func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs(true, "t1").
					WillReturnRows(sqlmock.NewRows(tenantRowColumns).AddRow("t1", "Acme", "", "", "PENDING", true, now, now))
			},
		},
		{
			name: "disabled or missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs(true, "t1").
					WillReturnRows(sqlmock.NewRows(tenantRowColumns))
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, mock := newTestStorage(t, true)
			test.setup(mock)

			tenant, err := s.GetTenantByID(context.Background(), ForTenant("other"), "t1")

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v got %v", test.expectedErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if tenant.Status != types.TenantPending || tenant.TradeName != "Acme" {
					t.Fatalf("unexpected tenant %+v", tenant)
				}
			}

			checkExpectations(t, mock)
		})
	}
}

func TestStorage_CreateTenantDuplicateName(t *testing.T) {
	s, mock := newTestStorage(t, false)

	mock.ExpectQuery("INSERT INTO tenants").
		WithArgs(sqlmock.AnyArg(), "Acme", "", "", "PENDING", true).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := s.CreateTenant(context.Background(), &types.Tenant{TradeName: " Acme ", Status: types.TenantPending})

	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected duplicate key error got %v", err)
	}

	checkExpectations(t, mock)
}

func TestStorage_TenantNameExists(t *testing.T) {
	s, mock := newTestStorage(t, true)

	mock.ExpectQuery("SELECT EXISTS ( SELECT 1 FROM tenants t WHERE (t.enabled = $1) AND upper(t.trade_name) = upper($2) )").
		WithArgs(true, "acme").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.TenantNameExists(context.Background(), AdminLookup(), "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !exists {
		t.Fatalf("expected name to exist")
	}

	checkExpectations(t, mock)
}

func TestStorage_UpdateTenantStatusNotFound(t *testing.T) {
	s, mock := newTestStorage(t, false)

	mock.ExpectExec("UPDATE tenants SET status").
		WithArgs("ACTIVE", true, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdateTenantStatus(context.Background(), "missing", types.TenantActive)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found got %v", err)
	}

	checkExpectations(t, mock)
}

var membershipRowColumns = []string{"id", "user_id", "tenant_id", "role_id", "name", "enabled", "created_at"}

func TestStorage_GetMembershipIsolation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		scope Scope
		query string
		args  []interface{}
	}{
		{
			name:  "tenant scope",
			scope: ForTenant("t1"),
			query: "SELECT m.id, m.user_id, m.tenant_id, m.role_id, r.name, m.enabled, m.created_at " +
				"FROM memberships m JOIN roles r ON r.id = m.role_id " +
				"WHERE (m.tenant_id = $1 AND m.enabled = $2) AND m.user_id = $3",
			args: []interface{}{"t1", true, "u1"},
		},
		{
			name:  "admin lookup",
			scope: AdminLookup(),
			query: "SELECT m.id, m.user_id, m.tenant_id, m.role_id, r.name, m.enabled, m.created_at " +
				"FROM memberships m JOIN roles r ON r.id = m.role_id " +
				"WHERE (m.enabled = $1) AND m.user_id = $2",
			args: []interface{}{true, "u1"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, mock := newTestStorage(t, true)

			args := make([]driver.Value, 0, len(test.args))
			for _, a := range test.args {
				args = append(args, a)
			}

			mock.ExpectQuery(test.query).
				WithArgs(args...).
				WillReturnRows(sqlmock.NewRows(membershipRowColumns).AddRow("m1", "u1", "t1", "r1", "Owner", true, now))

			m, err := s.GetMembership(context.Background(), test.scope, "u1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if m.Role != types.RoleOwner {
				t.Fatalf("unexpected role %s", m.Role)
			}

			checkExpectations(t, mock)
		})
	}
}

func TestStorage_TenantHasMembers(t *testing.T) {
	s, mock := newTestStorage(t, true)

	mock.ExpectQuery("SELECT EXISTS ( SELECT 1 FROM memberships m WHERE (m.tenant_id = $1 AND m.enabled = $2) )").
		WithArgs("t1", true).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := s.TenantHasMembers(context.Background(), ForTenant("t1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if exists {
		t.Fatalf("expected no members")
	}

	checkExpectations(t, mock)
}

func TestStorage_GetUserWithMemberships(t *testing.T) {
	s, mock := newTestStorage(t, false)
	now := time.Now()

	columns := []string{
		"id", "email_encrypted", "email_hash", "first_name", "last_name", "full_name",
		"normalized_full_name", "password_hash", "security_stamp", "enabled", "email_confirmed",
		"created_at", "updated_at",
		"m_id", "m_tenant_id", "m_role_id", "r_name", "m_enabled", "m_created_at",
	}

	mock.ExpectQuery(`LEFT JOIN memberships m ON m.user_id = u.id AND \(m.enabled = \$1\) LEFT JOIN roles r`).
		WithArgs(true, true, "hash").
		WillReturnRows(
			sqlmock.NewRows(columns).
				AddRow("u1", "enc", "hash", "Ada", "L", "Ada L", "ADA L", "pw", "stamp", true, true, now, now, "m1", "t1", "r1", "Owner", true, now).
				AddRow("u1", "enc", "hash", "Ada", "L", "Ada L", "ADA L", "pw", "stamp", true, true, now, now, "m2", "t2", "r2", "User", true, now),
		)

	u, err := s.GetUserWithMemberships(context.Background(), AdminLookup(), "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(u.Memberships) != 2 {
		t.Fatalf("expected 2 memberships got %d", len(u.Memberships))
	}

	if u.MemberOf("t2") == nil || u.MemberOf("t2").Role != types.RoleUser {
		t.Fatalf("expected User membership in t2")
	}

	checkExpectations(t, mock)
}

func TestStorage_GetUserWithMembershipsWithoutMemberships(t *testing.T) {
	s, mock := newTestStorage(t, false)
	now := time.Now()

	columns := []string{
		"id", "email_encrypted", "email_hash", "first_name", "last_name", "full_name",
		"normalized_full_name", "password_hash", "security_stamp", "enabled", "email_confirmed",
		"created_at", "updated_at",
		"m_id", "m_tenant_id", "m_role_id", "r_name", "m_enabled", "m_created_at",
	}

	mock.ExpectQuery("FROM users u").
		WillReturnRows(
			sqlmock.NewRows(columns).
				AddRow("u1", "enc", "hash", "Ada", "L", "Ada L", "ADA L", "pw", "stamp", true, false, now, now, nil, nil, nil, nil, nil, nil),
		)

	u, err := s.GetUserWithMemberships(context.Background(), AdminLookup(), "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(u.Memberships) != 0 {
		t.Fatalf("expected no memberships got %d", len(u.Memberships))
	}

	checkExpectations(t, mock)
}

func TestStorage_GetUserWithMembershipsNotFound(t *testing.T) {
	s, mock := newTestStorage(t, false)

	mock.ExpectQuery("FROM users u").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetUserWithMemberships(context.Background(), AdminLookup(), "hash")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found got %v", err)
	}

	checkExpectations(t, mock)
}

func TestStorage_ConfirmUserEmailConsumedStamp(t *testing.T) {
	s, mock := newTestStorage(t, false)

	mock.ExpectExec("UPDATE users SET email_confirmed").
		WithArgs(true, "new-stamp", true, "u1", "old-stamp").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.ConfirmUserEmail(context.Background(), "u1", "old-stamp", "new-stamp")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found got %v", err)
	}

	checkExpectations(t, mock)
}

func TestStorage_RevokeRefreshTokenIfActive(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "winner", affected: 1, expected: true},
		{name: "already revoked", affected: 0, expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, mock := newTestStorage(t, true)

			mock.ExpectExec("UPDATE refresh_tokens SET revoked_at = $1 WHERE id = $2 AND revoked_at IS NULL AND expires_at > $3").
				WithArgs(now, "rt1", now).
				WillReturnResult(sqlmock.NewResult(0, test.affected))

			ok, err := s.RevokeRefreshTokenIfActive(context.Background(), "rt1", now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if ok != test.expected {
				t.Fatalf("expected %v got %v", test.expected, ok)
			}

			checkExpectations(t, mock)
		})
	}
}

func TestStorage_GetRefreshTokenByHash(t *testing.T) {
	s, mock := newTestStorage(t, false)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM refresh_tokens WHERE token_hash").
		WithArgs("hash").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "user_id", "tenant_id", "token_hash", "expires_at", "revoked_at", "created_at"}).
				AddRow("rt1", "u1", nil, "hash", now.Add(time.Hour), nil, now),
		)

	r, err := s.GetRefreshTokenByHash(context.Background(), "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.TenantID != "" || r.RevokedAt != nil || !r.IsActive(now) {
		t.Fatalf("unexpected token %+v", r)
	}

	checkExpectations(t, mock)
}

func TestStorage_ListPermissionsByRolesEmpty(t *testing.T) {
	s, mock := newTestStorage(t, false)

	permissions, err := s.ListPermissionsByRoles(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(permissions) != 0 {
		t.Fatalf("expected no permissions")
	}

	checkExpectations(t, mock)
}

func TestStorage_GetPendingInvitationIsolation(t *testing.T) {
	s, mock := newTestStorage(t, true)
	now := time.Now()

	mock.ExpectQuery("SELECT i.id, i.tenant_id, i.user_id, i.role_id, r.name, i.enabled, i.accepted_at, i.created_at "+
		"FROM invitations i JOIN roles r ON r.id = i.role_id WHERE (i.tenant_id = $1 AND i.enabled = $2) AND i.accepted_at IS NULL AND i.user_id = $3 "+
		"ORDER BY i.created_at DESC LIMIT 1").
		WithArgs("t1", true, "u1").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "tenant_id", "user_id", "role_id", "name", "enabled", "accepted_at", "created_at"}).
				AddRow("i1", "t1", "u1", "r1", "Admin", true, nil, now),
		)

	i, err := s.GetPendingInvitation(context.Background(), ForTenant("t1"), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if i.RoleID != "r1" || i.Role != types.RoleAdmin || i.AcceptedAt != nil {
		t.Fatalf("unexpected invitation %+v", i)
	}

	checkExpectations(t, mock)
}

func TestStorage_EnqueueOutboxMessage(t *testing.T) {
	s, mock := newTestStorage(t, false)

	mock.ExpectExec("INSERT INTO outbox_messages (.+) ON CONFLICT \\(dedupe_key\\) DO NOTHING").
		WithArgs(sqlmock.AnyArg(), "signup_confirmation", "a@b.com", "Confirm", []byte("{}"), "key", "PENDING", 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.EnqueueOutboxMessage(context.Background(), &types.OutboxMessage{
		Kind:      "signup_confirmation",
		Recipient: "a@b.com",
		Subject:   "Confirm",
		Payload:   []byte("{}"),
		DedupeKey: "key",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkExpectations(t, mock)
}

func TestStorage_LeaseOutboxMessages(t *testing.T) {
	s, mock := newTestStorage(t, false)
	now := time.Now()

	mock.ExpectQuery(`UPDATE outbox_messages SET status = \$1, attempt_count = attempt_count \+ 1, lease_owner = \$2, lease_expires_at = \$3 WHERE id IN \(SELECT id FROM outbox_messages WHERE (.+) FOR UPDATE SKIP LOCKED\) RETURNING`).
		WithArgs("LEASED", "worker-1", now.Add(time.Minute), "PENDING", now, "LEASED", now).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "kind", "recipient", "subject", "payload", "dedupe_key", "status", "attempt_count", "next_attempt_at", "lease_owner", "lease_expires_at", "created_at"}).
				AddRow("o1", "signup_confirmation", "a@b.com", "Confirm", []byte("{}"), "key", "LEASED", 1, now, "worker-1", now.Add(time.Minute), now),
		)

	messages, err := s.LeaseOutboxMessages(context.Background(), "worker-1", now, time.Minute, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(messages) != 1 || messages[0].LeaseOwner != "worker-1" || messages[0].Status != types.OutboxLeased || messages[0].AttemptCount != 1 {
		t.Fatalf("unexpected messages %+v", messages)
	}

	checkExpectations(t, mock)
}

func TestStorage_MarkOutboxSentRequiresLease(t *testing.T) {
	s, mock := newTestStorage(t, false)

	mock.ExpectExec("UPDATE outbox_messages SET lease_expires_at = \\$1, lease_owner = \\$2, processed_at = \\$3, status = \\$4 WHERE").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.MarkOutboxSent(context.Background(), "o1", "worker-2", time.Now())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found got %v", err)
	}

	checkExpectations(t, mock)
}
