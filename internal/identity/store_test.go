// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/security"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_tracing.go -source=../tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_interfaces.go -source=interfaces.go

const (
	userID   = "0195f1a2-0000-7000-8000-000000000001"
	tenantID = "0195f1a2-0000-7000-8000-0000000000aa"
)

type fixture struct {
	storage *MockStorageInterface
	cipher  *MockCipherInterface
	store   *Store
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	mockLogger := NewMockLoggerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)

	f := &fixture{
		storage: NewMockStorageInterface(ctrl),
		cipher:  NewMockCipherInterface(ctrl),
	}

	f.store = NewStore(
		f.storage,
		f.cipher,
		Config{TokenSecret: []byte("identity-secret"), TokenTTL: time.Hour, BcryptCost: bcrypt.MinCost},
		mockTracer,
		mockMonitor,
		mockLogger,
	)

	return f
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		reasons  int
	}{
		{password: "secret1", reasons: 0},
		{password: "abcdef", reasons: 0},
		{password: "abc", reasons: 1},
		{password: "", reasons: 2},
		{password: "      ", reasons: 1},
	}

	for _, test := range tests {
		t.Run(test.password, func(t *testing.T) {
			if got := ValidatePassword(test.password); len(got) != test.reasons {
				t.Fatalf("expected %d reasons, got %v", test.reasons, got)
			}
		})
	}
}

func TestStoreCreateUser(t *testing.T) {
	const email = "Jane@Example.com"

	tests := []struct {
		name     string
		input    NewUser
		setup    func(f *fixture)
		expected apperrors.Kind
	}{
		{
			name:     "weak password",
			input:    NewUser{Email: email, Password: "123"},
			setup:    func(*fixture) {},
			expected: apperrors.KindValidation,
		},
		{
			name:     "missing email",
			input:    NewUser{Email: "  ", Password: "secret1"},
			setup:    func(*fixture) {},
			expected: apperrors.KindValidation,
		},
		{
			name:  "email already registered",
			input: NewUser{Email: email, Password: "secret1"},
			setup: func(f *fixture) {
				f.storage.EXPECT().GetUserByEmailHash(gomock.Any(), storage.AdminLookup(), security.Hash(email)).Return(&types.User{ID: userID}, nil)
			},
			expected: apperrors.KindValidation,
		},
		{
			name:  "concurrent insert of the same email",
			input: NewUser{Email: email, Password: "secret1"},
			setup: func(f *fixture) {
				f.storage.EXPECT().GetUserByEmailHash(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
				f.cipher.EXPECT().Encrypt(email).Return("cipher", nil)
				f.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expected: apperrors.KindValidation,
		},
		{
			name:  "storage failure",
			input: NewUser{Email: email, Password: "secret1"},
			setup: func(f *fixture) {
				f.storage.EXPECT().GetUserByEmailHash(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			expected: apperrors.KindInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			test.setup(f)

			_, err := f.store.CreateUser(context.Background(), test.input)
			if err == nil {
				t.Fatal("expected an error")
			}

			if kind := apperrors.KindOf(err); kind != test.expected {
				t.Fatalf("expected kind %v, got %v (%v)", test.expected, kind, err)
			}
		})
	}
}

func TestStoreCreateUserSuccess(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().GetUserByEmailHash(gomock.Any(), storage.AdminLookup(), security.Hash("jane@example.com")).Return(nil, storage.ErrNotFound)
	f.cipher.EXPECT().Encrypt("jane@example.com").Return("cipher", nil)
	f.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *types.User) (*types.User, error) {
			if u.EmailEncrypted != "cipher" {
				t.Errorf("expected encrypted email, got %q", u.EmailEncrypted)
			}
			if u.EmailHash != security.Hash("JANE@example.com") {
				t.Errorf("email hash is not normalized")
			}
			if u.FullName != "Jane Doe" || u.NormalizedFullName != "JANE DOE" {
				t.Errorf("unexpected names %q %q", u.FullName, u.NormalizedFullName)
			}
			if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) != nil {
				t.Errorf("password hash does not verify")
			}
			if u.SecurityStamp == "" {
				t.Errorf("expected a security stamp")
			}

			created := *u
			created.ID = userID
			return &created, nil
		},
	)

	user, err := f.store.CreateUser(context.Background(), NewUser{Email: " jane@example.com ", FirstName: "Jane", LastName: "Doe", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.store.CheckPassword(context.Background(), user, "secret1") {
		t.Fatal("expected password to match")
	}

	if f.store.CheckPassword(context.Background(), user, "secret2") {
		t.Fatal("expected wrong password to be rejected")
	}
}

func TestStoreConfirmEmail(t *testing.T) {
	user := &types.User{ID: userID, SecurityStamp: "stamp-1", Enabled: true}

	tests := []struct {
		name     string
		token    func(f *fixture) string
		setup    func(f *fixture)
		expected error
	}{
		{
			name: "valid token",
			token: func(f *fixture) string {
				tok, _ := f.store.GenerateEmailConfirmationToken(context.Background(), user)
				return tok
			},
			setup: func(f *fixture) {
				u := *user
				f.storage.EXPECT().GetUserByID(gomock.Any(), storage.AdminLookup(), userID).Return(&u, nil)
				f.storage.EXPECT().ConfirmUserEmail(gomock.Any(), userID, "stamp-1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "token already used",
			token: func(f *fixture) string {
				tok, _ := f.store.GenerateEmailConfirmationToken(context.Background(), user)
				return tok
			},
			setup: func(f *fixture) {
				u := *user
				u.SecurityStamp = "stamp-2"
				f.storage.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), userID).Return(&u, nil)
			},
			expected: apperrors.BadRequest("invalid token"),
		},
		{
			name: "lost the race on confirmation",
			token: func(f *fixture) string {
				tok, _ := f.store.GenerateEmailConfirmationToken(context.Background(), user)
				return tok
			},
			setup: func(f *fixture) {
				u := *user
				f.storage.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), userID).Return(&u, nil)
				f.storage.EXPECT().ConfirmUserEmail(gomock.Any(), userID, "stamp-1", gomock.Any()).Return(storage.ErrNotFound)
			},
			expected: apperrors.BadRequest("invalid token"),
		},
		{
			name: "reset token cannot confirm",
			token: func(f *fixture) string {
				tok, _ := f.store.GeneratePasswordResetToken(context.Background(), user)
				return tok
			},
			setup:    func(*fixture) {},
			expected: apperrors.BadRequest("invalid token"),
		},
		{
			name: "signup token cannot confirm",
			token: func(f *fixture) string {
				tok, _ := f.store.GenerateSignupToken(context.Background(), user, tenantID)
				return tok
			},
			setup:    func(*fixture) {},
			expected: apperrors.BadRequest("invalid token"),
		},
		{
			name: "expired token",
			token: func(f *fixture) string {
				f.store.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
				tok, _ := f.store.GenerateEmailConfirmationToken(context.Background(), user)
				f.store.now = time.Now
				return tok
			},
			setup:    func(*fixture) {},
			expected: apperrors.BadRequest("invalid token"),
		},
		{
			name:     "garbage",
			token:    func(*fixture) string { return "%%%" },
			setup:    func(*fixture) {},
			expected: apperrors.BadRequest("invalid token"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			token := test.token(f)
			test.setup(f)

			confirmed, err := f.store.ConfirmEmail(context.Background(), userID, token)

			if test.expected == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !confirmed.EmailConfirmed || confirmed.SecurityStamp == "stamp-1" {
					t.Fatalf("expected confirmed user with rotated stamp, got %+v", confirmed)
				}
				return
			}

			if err == nil || err.Error() != test.expected.Error() || apperrors.KindOf(err) != apperrors.KindOf(test.expected) {
				t.Fatalf("expected %v, got %v", test.expected, err)
			}
		})
	}
}

func TestStoreConfirmEmailOtherUser(t *testing.T) {
	f := newFixture(t)

	tok, err := f.store.GenerateEmailConfirmationToken(context.Background(), &types.User{ID: "someone-else", SecurityStamp: "s"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.store.ConfirmEmail(context.Background(), userID, tok); !apperrors.Is(err, apperrors.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestStoreConfirmSignup(t *testing.T) {
	user := &types.User{ID: userID, SecurityStamp: "stamp-1", Enabled: true}

	tests := []struct {
		name     string
		token    func(f *fixture) string
		tenantID string
		setup    func(f *fixture)
		ok       bool
	}{
		{
			name: "token issued for the tenant",
			token: func(f *fixture) string {
				tok, _ := f.store.GenerateSignupToken(context.Background(), user, tenantID)
				return tok
			},
			tenantID: tenantID,
			setup: func(f *fixture) {
				u := *user
				f.storage.EXPECT().GetUserByID(gomock.Any(), storage.AdminLookup(), userID).Return(&u, nil)
				f.storage.EXPECT().ConfirmUserEmail(gomock.Any(), userID, "stamp-1", gomock.Any()).Return(nil)
			},
			ok: true,
		},
		{
			name: "token issued for another tenant",
			token: func(f *fixture) string {
				tok, _ := f.store.GenerateSignupToken(context.Background(), user, "0195f1a2-0000-7000-8000-0000000000bb")
				return tok
			},
			tenantID: tenantID,
			setup:    func(*fixture) {},
		},
		{
			name: "email confirmation token",
			token: func(f *fixture) string {
				tok, _ := f.store.GenerateEmailConfirmationToken(context.Background(), user)
				return tok
			},
			tenantID: tenantID,
			setup:    func(*fixture) {},
		},
		{
			name: "missing tenant",
			token: func(f *fixture) string {
				tok, _ := f.store.GenerateEmailConfirmationToken(context.Background(), user)
				return tok
			},
			tenantID: "",
			setup:    func(*fixture) {},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			token := test.token(f)
			test.setup(f)

			confirmed, err := f.store.ConfirmSignup(context.Background(), userID, test.tenantID, token)

			if test.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !confirmed.EmailConfirmed || confirmed.SecurityStamp == "stamp-1" {
					t.Fatalf("expected confirmed user with rotated stamp, got %+v", confirmed)
				}
				return
			}

			if !apperrors.Is(err, apperrors.KindBadRequest) {
				t.Fatalf("expected bad request, got %v", err)
			}
		})
	}
}

func TestStoreGenerateSignupTokenRequiresTenant(t *testing.T) {
	f := newFixture(t)

	if _, err := f.store.GenerateSignupToken(context.Background(), &types.User{ID: userID, SecurityStamp: "s"}, ""); !apperrors.Is(err, apperrors.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestStoreResetPassword(t *testing.T) {
	user := &types.User{ID: userID, SecurityStamp: "stamp-1", Enabled: true}

	tests := []struct {
		name     string
		password string
		setup    func(f *fixture)
		expected apperrors.Kind
		ok       bool
	}{
		{
			name:     "success rotates stamp",
			password: "newpass1",
			setup: func(f *fixture) {
				u := *user
				f.storage.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), userID).Return(&u, nil)
				f.storage.EXPECT().UpdateUserPassword(gomock.Any(), userID, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _, hash, stamp string) error {
						if bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass1")) != nil {
							t.Errorf("new password hash does not verify")
						}
						if stamp == "stamp-1" {
							t.Errorf("expected a rotated stamp")
						}
						return nil
					},
				)
			},
			ok: true,
		},
		{
			name:     "weak password",
			password: "1",
			setup:    func(*fixture) {},
			expected: apperrors.KindValidation,
		},
		{
			name:     "stale stamp",
			password: "newpass1",
			setup: func(f *fixture) {
				u := *user
				u.SecurityStamp = "stamp-9"
				f.storage.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), userID).Return(&u, nil)
			},
			expected: apperrors.KindBadRequest,
		},
		{
			name:     "user disabled",
			password: "newpass1",
			setup: func(f *fixture) {
				f.storage.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), userID).Return(nil, storage.ErrNotFound)
			},
			expected: apperrors.KindNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			test.setup(f)

			token, err := f.store.GeneratePasswordResetToken(context.Background(), user)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			err = f.store.ResetPassword(context.Background(), userID, token, test.password)

			if test.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if kind := apperrors.KindOf(err); kind != test.expected {
				t.Fatalf("expected kind %v, got %v (%v)", test.expected, kind, err)
			}
		})
	}
}

func TestStoreRolesAndPermissions(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().ListUserRoles(gomock.Any(), userID).Return([]*types.RoleRecord{
		{ID: "r-owner", Name: types.RoleOwner},
		{ID: "r-super", Name: types.RoleSuperAdmin},
	}, nil)
	f.storage.EXPECT().GetMembership(gomock.Any(), storage.ForTenant(tenantID), userID).Return(
		&types.Membership{RoleID: "r-admin", Role: types.RoleAdmin}, nil,
	)
	f.storage.EXPECT().ListPermissionsByRoles(gomock.Any(), []string{"r-super", "r-admin"}).Return([]string{"*"}, nil)

	roles, perms, err := f.store.RolesAndPermissions(context.Background(), userID, tenantID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(roles) != 2 || roles[0] != string(types.RoleSuperAdmin) || roles[1] != string(types.RoleAdmin) {
		t.Fatalf("unexpected roles %v", roles)
	}

	if len(perms) != 1 || perms[0] != "*" {
		t.Fatalf("unexpected permissions %v", perms)
	}
}

func TestStoreRolesAndPermissionsWithoutMembership(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().ListUserRoles(gomock.Any(), userID).Return([]*types.RoleRecord{{ID: "r-owner", Name: types.RoleOwner}}, nil)
	f.storage.EXPECT().GetMembership(gomock.Any(), gomock.Any(), userID).Return(nil, storage.ErrNotFound)

	roles, perms, err := f.store.RolesAndPermissions(context.Background(), userID, "0195f1a2-0000-7000-8000-0000000000bb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(roles) != 0 || len(perms) != 0 {
		t.Fatalf("expected no roles outside the tenant, got %v %v", roles, perms)
	}
}

func TestStoreAssignRole(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().GetRoleByName(gomock.Any(), types.RoleOwner).Return(&types.RoleRecord{ID: "r-owner", Name: types.RoleOwner}, nil)
	f.storage.EXPECT().AssignUserRole(gomock.Any(), userID, "r-owner").Return(nil)

	if err := f.store.AssignRole(context.Background(), userID, types.RoleOwner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.storage.EXPECT().GetRoleByName(gomock.Any(), types.Role("Ghost")).Return(nil, storage.ErrNotFound)

	if err := f.store.AssignRole(context.Background(), userID, types.Role("Ghost")); !apperrors.Is(err, apperrors.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
