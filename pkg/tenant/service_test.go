// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/identity"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/types"
	"github.com/canonical/tenant-identity-service/pkg/authentication"
	"github.com/canonical/tenant-identity-service/pkg/notifications"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_interfaces.go -source=interfaces.go

const (
	tenantID = "0195f1a2-0000-7000-8000-0000000000aa"
	userID   = "0195f1a2-0000-7000-8000-000000000001"
	email    = "jane@example.com"
)

type fixture struct {
	storage  *MockStorageInterface
	identity *MockIdentityInterface
	notifier *MockNotifierInterface
	tokens   *MockTokenPairIssuerInterface
	tx       *MockTxRunnerInterface
	security *MockSecurityLoggerInterface
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	mockLogger := NewMockLoggerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	f := &fixture{
		storage:  NewMockStorageInterface(ctrl),
		identity: NewMockIdentityInterface(ctrl),
		notifier: NewMockNotifierInterface(ctrl),
		tokens:   NewMockTokenPairIssuerInterface(ctrl),
		tx:       NewMockTxRunnerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Security().Return(f.security).AnyTimes()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)
	f.tx.EXPECT().WithRetryTx(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)

	f.service = NewService(f.storage, f.identity, f.notifier, f.tokens, f.tx, mockTracer, mockMonitor, mockLogger)

	return f
}

func assertKind(t *testing.T, err error, kind apperrors.Kind) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}

	if got := apperrors.KindOf(err); got != kind {
		t.Fatalf("expected %s error, got %s: %v", kind, got, err)
	}
}

func roleRecord(role types.Role) *types.RoleRecord {
	return &types.RoleRecord{ID: "role-" + string(role), Name: role}
}

func signupRequest() *SignupRequest {
	return &SignupRequest{
		TenantName:      "Acme",
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           email,
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestSignupSagaTransitions(t *testing.T) {
	saga := &signupSaga{state: signupStart}

	if err := saga.advance(signupUserCreated); err == nil {
		t.Fatal("expected skipping TENANT_CREATED to fail")
	}

	for _, next := range []signupState{signupTenantCreated, signupUserCreated, signupConfirmationSent, signupCommitted} {
		if err := saga.advance(next); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := saga.advance(signupRolledBack); err == nil {
		t.Fatal("expected COMMITTED to be final")
	}

	if saga.state.String() != "COMMITTED" {
		t.Fatalf("unexpected state %s", saga.state)
	}
}

func TestServiceSignup(t *testing.T) {
	tests := []struct {
		name     string
		req      func() *SignupRequest
		setup    func(f *fixture)
		expected apperrors.Kind
	}{
		{
			name: "passwords do not match",
			req: func() *SignupRequest {
				r := signupRequest()
				r.ConfirmPassword = "other"
				return r
			},
			setup:    func(*fixture) {},
			expected: apperrors.KindValidation,
		},
		{
			name: "tenant name taken",
			req:  signupRequest,
			setup: func(f *fixture) {
				f.storage.EXPECT().TenantNameExists(gomock.Any(), storage.AdminLookup(), "Acme").Return(true, nil)
			},
			expected: apperrors.KindValidation,
		},
		{
			name: "email already registered",
			req:  signupRequest,
			setup: func(f *fixture) {
				f.storage.EXPECT().TenantNameExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(&types.Tenant{ID: tenantID, TradeName: "Acme"}, nil)
				f.identity.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, apperrors.Validation("email is already registered"))
			},
			expected: apperrors.KindValidation,
		},
		{
			name: "notification fails",
			req:  signupRequest,
			setup: func(f *fixture) {
				f.storage.EXPECT().TenantNameExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(&types.Tenant{ID: tenantID, TradeName: "Acme"}, nil)
				f.identity.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&types.User{ID: userID}, nil)
				f.identity.EXPECT().GenerateSignupToken(gomock.Any(), gomock.Any(), tenantID).Return("token", nil)
				f.notifier.EXPECT().SignupConfirmation(gomock.Any(), gomock.Any(), "Acme", tenantID, "token").Return(errors.New("outbox down"))
			},
			expected: apperrors.KindInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			test.setup(f)

			result, err := f.service.Signup(context.Background(), test.req())

			assertKind(t, err, test.expected)
			if result != nil {
				t.Fatalf("expected no result, got %+v", result)
			}
		})
	}
}

func TestServiceSignupSuccess(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().TenantNameExists(gomock.Any(), storage.AdminLookup(), "Acme").Return(false, nil)
	f.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
			if tenant.Status != types.TenantPending {
				t.Fatalf("expected a PENDING tenant, got %s", tenant.Status)
			}
			tenant.ID = tenantID
			return tenant, nil
		},
	)
	f.identity.EXPECT().CreateUser(gomock.Any(), identity.NewUser{
		Email:     email,
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "secret1",
	}).Return(&types.User{ID: userID, FirstName: "Jane"}, nil)
	f.identity.EXPECT().GenerateSignupToken(gomock.Any(), gomock.Any(), tenantID).Return("token", nil)
	f.notifier.EXPECT().SignupConfirmation(
		gomock.Any(),
		notifications.Recipient{UserID: userID, Email: email, Name: "Jane"},
		"Acme",
		tenantID,
		"token",
	).Return(nil)

	result, err := f.service.Signup(context.Background(), signupRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TenantID != tenantID || result.UserID != userID {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestServiceActivate(t *testing.T) {
	pending := func() *types.Tenant { return &types.Tenant{ID: tenantID, Status: types.TenantPending} }

	tests := []struct {
		name     string
		setup    func(f *fixture)
		expected apperrors.Kind
	}{
		{
			name: "token already consumed",
			setup: func(f *fixture) {
				f.identity.EXPECT().ConfirmSignup(gomock.Any(), userID, tenantID, "token").Return(nil, apperrors.BadRequest("invalid token"))
			},
			expected: apperrors.KindBadRequest,
		},
		{
			name: "tenant already active",
			setup: func(f *fixture) {
				f.identity.EXPECT().ConfirmSignup(gomock.Any(), userID, tenantID, "token").Return(&types.User{ID: userID}, nil)
				f.storage.EXPECT().GetTenantByID(gomock.Any(), storage.ForTenant(tenantID), tenantID).Return(&types.Tenant{ID: tenantID, Status: types.TenantActive}, nil)
			},
			expected: apperrors.KindValidation,
		},
		{
			name: "tenant suspended",
			setup: func(f *fixture) {
				f.identity.EXPECT().ConfirmSignup(gomock.Any(), userID, tenantID, "token").Return(&types.User{ID: userID}, nil)
				f.storage.EXPECT().GetTenantByID(gomock.Any(), gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Status: types.TenantSuspended}, nil)
			},
			expected: apperrors.KindValidation,
		},
		{
			name: "pending tenant with members",
			setup: func(f *fixture) {
				f.identity.EXPECT().ConfirmSignup(gomock.Any(), userID, tenantID, "token").Return(&types.User{ID: userID}, nil)
				f.storage.EXPECT().GetTenantByID(gomock.Any(), gomock.Any(), tenantID).Return(pending(), nil)
				f.storage.EXPECT().TenantHasMembers(gomock.Any(), storage.ForTenant(tenantID)).Return(true, nil)
			},
			expected: apperrors.KindValidation,
		},
		{
			name: "tenant not found",
			setup: func(f *fixture) {
				f.identity.EXPECT().ConfirmSignup(gomock.Any(), userID, tenantID, "token").Return(&types.User{ID: userID}, nil)
				f.storage.EXPECT().GetTenantByID(gomock.Any(), gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)
			},
			expected: apperrors.KindNotFound,
		},
		{
			name: "tenant deleted in between",
			setup: func(f *fixture) {
				f.identity.EXPECT().ConfirmSignup(gomock.Any(), userID, tenantID, "token").Return(&types.User{ID: userID}, nil)
				f.storage.EXPECT().GetTenantByID(gomock.Any(), gomock.Any(), tenantID).Return(pending(), nil)
				f.storage.EXPECT().TenantHasMembers(gomock.Any(), gomock.Any()).Return(false, nil)
				f.identity.EXPECT().FindRoleByName(gomock.Any(), types.RoleOwner).Return(roleRecord(types.RoleOwner), nil)
				f.storage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)
			},
			expected: apperrors.KindNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			test.setup(f)

			tenant, err := f.service.Activate(context.Background(), userID, tenantID, "token")
			assertKind(t, err, test.expected)
			if tenant != nil {
				t.Fatalf("expected no tenant, got %+v", tenant)
			}
		})
	}
}

func TestServiceActivateSuccess(t *testing.T) {
	f := newFixture(t)

	f.identity.EXPECT().ConfirmSignup(gomock.Any(), userID, tenantID, "token").Return(&types.User{ID: userID}, nil)
	f.storage.EXPECT().GetTenantByID(gomock.Any(), storage.ForTenant(tenantID), tenantID).Return(&types.Tenant{ID: tenantID, Status: types.TenantPending}, nil)
	f.storage.EXPECT().TenantHasMembers(gomock.Any(), storage.ForTenant(tenantID)).Return(false, nil)
	f.identity.EXPECT().FindRoleByName(gomock.Any(), types.RoleOwner).Return(roleRecord(types.RoleOwner), nil)
	f.storage.EXPECT().CreateMembership(gomock.Any(), &types.Membership{
		UserID:   userID,
		TenantID: tenantID,
		RoleID:   "role-Owner",
		Role:     types.RoleOwner,
	}).Return(&types.Membership{ID: "m1"}, nil)
	f.identity.EXPECT().AssignRole(gomock.Any(), userID, types.RoleOwner).Return(nil)
	f.storage.EXPECT().UpdateTenantStatus(gomock.Any(), tenantID, types.TenantActive).Return(nil)

	tenant, err := f.service.Activate(context.Background(), userID, tenantID, "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tenant.Status != types.TenantActive {
		t.Fatalf("expected ACTIVE, got %s", tenant.Status)
	}
}

func TestServiceActivateMissingParameters(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Activate(context.Background(), userID, "", "token")
	assertKind(t, err, apperrors.KindBadRequest)
}

func TestServiceRegister(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().TenantNameExists(gomock.Any(), storage.AdminLookup(), "Globex").Return(false, nil)
	f.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
			tenant.ID = tenantID
			return tenant, nil
		},
	)
	f.security.EXPECT().AdminAction(gomock.Any(), "tenant.register", tenantID)

	tenant, err := f.service.Register(context.Background(), &RegisterRequest{TradeName: " Globex "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tenant.Status != types.TenantActive || tenant.TradeName != "Globex" {
		t.Fatalf("unexpected tenant %+v", tenant)
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   types.TenantStatus
		setup    func(f *fixture)
		expected apperrors.Kind
	}{
		{
			name:     "unknown status",
			status:   "ARCHIVED",
			setup:    func(*fixture) {},
			expected: apperrors.KindValidation,
		},
		{
			name:     "back to pending",
			status:   types.TenantPending,
			setup:    func(*fixture) {},
			expected: apperrors.KindValidation,
		},
		{
			name:   "missing tenant",
			status: types.TenantSuspended,
			setup: func(f *fixture) {
				f.storage.EXPECT().GetTenantByID(gomock.Any(), gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)
			},
			expected: apperrors.KindNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			test.setup(f)

			_, err := f.service.UpdateStatus(context.Background(), tenantID, test.status)
			assertKind(t, err, test.expected)
		})
	}
}

func TestServiceUpdateStatusSuccess(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().GetTenantByID(gomock.Any(), gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Status: types.TenantActive}, nil)
	f.storage.EXPECT().UpdateTenantStatus(gomock.Any(), tenantID, types.TenantSuspended).Return(nil)
	f.security.EXPECT().AdminAction(gomock.Any(), "tenant.status.suspended", tenantID)

	tenant, err := f.service.UpdateStatus(context.Background(), tenantID, "suspended")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tenant.Status != types.TenantSuspended {
		t.Fatalf("expected SUSPENDED, got %s", tenant.Status)
	}
}

func TestServiceAssignUser(t *testing.T) {
	tests := []struct {
		name     string
		role     types.Role
		setup    func(f *fixture)
		expected apperrors.Kind
	}{
		{
			name:     "platform role",
			role:     types.RoleSuperAdmin,
			setup:    func(*fixture) {},
			expected: apperrors.KindValidation,
		},
		{
			name:     "unknown role",
			role:     "Janitor",
			setup:    func(*fixture) {},
			expected: apperrors.KindValidation,
		},
		{
			name: "already a member",
			role: types.RoleAdmin,
			setup: func(f *fixture) {
				f.storage.EXPECT().GetTenantByID(gomock.Any(), gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID}, nil)
				f.identity.EXPECT().FindByID(gomock.Any(), userID).Return(&types.User{ID: userID}, nil)
				f.storage.EXPECT().GetMembership(gomock.Any(), storage.ForTenant(tenantID), userID).Return(&types.Membership{}, nil)
			},
			expected: apperrors.KindValidation,
		},
		{
			name: "unknown user",
			role: types.RoleAdmin,
			setup: func(f *fixture) {
				f.storage.EXPECT().GetTenantByID(gomock.Any(), gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID}, nil)
				f.identity.EXPECT().FindByID(gomock.Any(), userID).Return(nil, apperrors.NotFound("user not found"))
			},
			expected: apperrors.KindNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			test.setup(f)

			_, err := f.service.AssignUser(context.Background(), tenantID, userID, test.role)
			assertKind(t, err, test.expected)
		})
	}
}

func TestMemberRoleOwner(t *testing.T) {
	tests := []struct {
		name      string
		principal *authentication.Principal
		allowed   bool
	}{
		{
			name: "anonymous caller",
		},
		{
			name:      "admin of the tenant",
			principal: &authentication.Principal{UserID: "u2", TenantID: tenantID, Roles: []string{string(types.RoleAdmin)}},
		},
		{
			name:      "owner of another tenant",
			principal: &authentication.Principal{UserID: "u2", TenantID: "other-tenant", Roles: []string{string(types.RoleOwner)}},
		},
		{
			name:      "owner of the tenant",
			principal: &authentication.Principal{UserID: "u2", TenantID: tenantID, Roles: []string{string(types.RoleOwner)}},
			allowed:   true,
		},
		{
			name:      "platform operator",
			principal: &authentication.Principal{UserID: "u2", Roles: []string{string(types.RoleSuperAdmin)}},
			allowed:   true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()
			if test.principal != nil {
				ctx = authentication.WithPrincipal(ctx, test.principal)
			}

			role, err := memberRole(ctx, tenantID, string(types.RoleOwner))

			if test.allowed {
				if err != nil || role != types.RoleOwner {
					t.Fatalf("expected Owner, got %s %v", role, err)
				}
				return
			}

			assertKind(t, err, apperrors.KindForbidden)
		})
	}
}

func TestServiceAssignUserOwnerByAdmin(t *testing.T) {
	f := newFixture(t)

	ctx := authentication.WithPrincipal(context.Background(), &authentication.Principal{
		UserID:   "admin-1",
		TenantID: tenantID,
		Roles:    []string{string(types.RoleAdmin)},
	})

	m, err := f.service.AssignUser(ctx, tenantID, userID, types.RoleOwner)
	assertKind(t, err, apperrors.KindForbidden)
	if m != nil {
		t.Fatalf("expected no membership, got %+v", m)
	}
}

func TestServiceAssignUserDefaultRole(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().GetTenantByID(gomock.Any(), gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID}, nil)
	f.identity.EXPECT().FindByID(gomock.Any(), userID).Return(&types.User{ID: userID}, nil)
	f.storage.EXPECT().GetMembership(gomock.Any(), gomock.Any(), userID).Return(nil, storage.ErrNotFound)
	f.identity.EXPECT().FindRoleByName(gomock.Any(), types.RoleUser).Return(roleRecord(types.RoleUser), nil)
	f.storage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(&types.Membership{ID: "m1", Role: types.RoleUser}, nil)
	f.identity.EXPECT().AssignRole(gomock.Any(), userID, types.RoleUser).Return(nil)
	f.security.EXPECT().AdminAction(gomock.Any(), "tenant.assign_user", tenantID)

	m, err := f.service.AssignUser(context.Background(), tenantID, userID, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Role != types.RoleUser {
		t.Fatalf("expected default role, got %s", m.Role)
	}
}
