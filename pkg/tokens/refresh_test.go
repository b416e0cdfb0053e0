// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokens

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/security"
	"github.com/canonical/tenant-identity-service/internal/storage"
	"github.com/canonical/tenant-identity-service/internal/types"
)

type refreshFixture struct {
	storage  *MockStorageInterface
	identity *MockIdentityInterface
	issuer   *MockIssuerInterface
	manager  *RefreshManager
}

func newRefreshFixture(t *testing.T) *refreshFixture {
	ctrl := gomock.NewController(t)

	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockTx := NewMockTxRunnerInterface(ctrl)

	mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockSecurity.EXPECT().TokenIssued(gomock.Any(), gomock.Any()).AnyTimes()
	mockSecurity.EXPECT().TokenRevoked(gomock.Any(), gomock.Any()).AnyTimes()
	mockSecurity.EXPECT().AuthnFailure(gomock.Any(), gomock.Any()).AnyTimes()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)
	mockTx.EXPECT().WithRetryTx(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)

	f := &refreshFixture{
		storage:  NewMockStorageInterface(ctrl),
		identity: NewMockIdentityInterface(ctrl),
		issuer:   NewMockIssuerInterface(ctrl),
	}

	f.manager = NewRefreshManager(f.storage, f.identity, f.issuer, mockTx, time.Hour, mockTracer, mockMonitor, mockLogger)

	return f
}

func (f *refreshFixture) expectPair(user *types.User, tenantID string) {
	f.identity.EXPECT().RolesAndPermissions(gomock.Any(), user.ID, tenantID).Return([]string{"Owner"}, []string{"*"}, nil)
	f.issuer.EXPECT().Issue(user, tenantID, []string{"Owner"}, []string{"*"}).Return("access", time.Now().Add(time.Minute), nil)
	f.storage.EXPECT().CreateRefreshToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *types.RefreshToken) (*types.RefreshToken, error) {
			return r, nil
		},
	)
}

func TestRefreshManagerIssue(t *testing.T) {
	f := newRefreshFixture(t)

	var stored *types.RefreshToken
	f.storage.EXPECT().CreateRefreshToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *types.RefreshToken) (*types.RefreshToken, error) {
			stored = r
			return r, nil
		},
	)

	plaintext, expiresAt, err := f.manager.Issue(context.Background(), "user-1", "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plaintext) < 64 {
		t.Fatalf("refresh token too short: %d", len(plaintext))
	}

	if stored.TokenHash != security.Hash(plaintext) || stored.TokenHash == plaintext {
		t.Fatal("expected only the hash to be stored")
	}

	if stored.UserID != "user-1" || stored.TenantID != "tenant-1" || !stored.ExpiresAt.Equal(expiresAt) {
		t.Fatalf("unexpected stored token %+v", stored)
	}
}

func TestRefreshManagerIssueGrantedPairSkipsRoleLookup(t *testing.T) {
	f := newRefreshFixture(t)
	user := &types.User{ID: "user-1", Enabled: true}
	grant := &types.SessionGrant{TenantID: "tenant-1", Roles: []string{"Admin"}, Permissions: []string{"tenants:manage"}}

	f.issuer.EXPECT().Issue(user, "tenant-1", []string{"Admin"}, []string{"tenants:manage"}).Return("access", time.Now().Add(time.Minute), nil)
	f.storage.EXPECT().CreateRefreshToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *types.RefreshToken) (*types.RefreshToken, error) {
			if r.TenantID != "tenant-1" {
				t.Errorf("unexpected refresh token tenant %s", r.TenantID)
			}
			return r, nil
		},
	)

	pair, err := f.manager.IssueGrantedPair(context.Background(), user, grant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pair.AccessToken != "access" || pair.RefreshToken == "" {
		t.Fatalf("unexpected pair %+v", pair)
	}
}

func TestRefreshManagerGrant(t *testing.T) {
	f := newRefreshFixture(t)

	f.identity.EXPECT().RolesAndPermissions(gomock.Any(), "user-1", "tenant-1").Return([]string{"Owner"}, []string{"*"}, nil)

	grant, err := f.manager.Grant(context.Background(), "user-1", "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if grant.TenantID != "tenant-1" || len(grant.Roles) != 1 || grant.Permissions[0] != "*" {
		t.Fatalf("unexpected grant %+v", grant)
	}
}

func TestRefreshManagerRefresh(t *testing.T) {
	user := &types.User{ID: "user-1", Enabled: true}
	now := time.Now()
	revokedAt := now.Add(-time.Minute)

	active := &types.RefreshToken{ID: "rt-1", UserID: user.ID, TenantID: "tenant-1", ExpiresAt: now.Add(time.Hour)}

	tests := []struct {
		name  string
		setup func(f *refreshFixture)
		ok    bool
	}{
		{
			name: "rotates an active token",
			setup: func(f *refreshFixture) {
				f.storage.EXPECT().GetRefreshTokenByHash(gomock.Any(), security.Hash("plain")).Return(active, nil)
				f.storage.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), "rt-1", gomock.Any()).Return(true, nil)
				f.identity.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
				f.expectPair(user, "tenant-1")
			},
			ok: true,
		},
		{
			name: "unknown token",
			setup: func(f *refreshFixture) {
				f.storage.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "revoked token",
			setup: func(f *refreshFixture) {
				f.storage.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(
					&types.RefreshToken{ID: "rt-1", UserID: user.ID, ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt}, nil,
				)
			},
		},
		{
			name: "expired token",
			setup: func(f *refreshFixture) {
				f.storage.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(
					&types.RefreshToken{ID: "rt-1", UserID: user.ID, ExpiresAt: now.Add(-time.Second)}, nil,
				)
			},
		},
		{
			name: "lost the rotation race",
			setup: func(f *refreshFixture) {
				f.storage.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(active, nil)
				f.storage.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), "rt-1", gomock.Any()).Return(false, nil)
			},
		},
		{
			name: "user disabled",
			setup: func(f *refreshFixture) {
				f.storage.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(active, nil)
				f.storage.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), "rt-1", gomock.Any()).Return(true, nil)
				f.identity.EXPECT().FindByID(gomock.Any(), user.ID).Return(nil, apperrors.NotFound("user not found"))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newRefreshFixture(t)
			test.setup(f)

			pair, err := f.manager.Refresh(context.Background(), "plain")

			if test.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if pair.AccessToken != "access" || pair.RefreshToken == "" || pair.RefreshToken == "plain" {
					t.Fatalf("unexpected pair %+v", pair)
				}
				return
			}

			if !apperrors.Is(err, apperrors.KindUnauthorized) {
				t.Fatalf("expected unauthorized, got %v", err)
			}
		})
	}
}

func TestRefreshManagerRefreshInfrastructureError(t *testing.T) {
	f := newRefreshFixture(t)

	boom := errors.New("connection reset")
	f.storage.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(nil, boom)

	if _, err := f.manager.Refresh(context.Background(), "plain"); !errors.Is(err, boom) {
		t.Fatalf("expected the storage error, got %v", err)
	}
}

func TestRefreshManagerConcurrentRefresh(t *testing.T) {
	f := newRefreshFixture(t)

	user := &types.User{ID: "user-1", Enabled: true}
	active := &types.RefreshToken{ID: "rt-1", UserID: user.ID, TenantID: "tenant-1", ExpiresAt: time.Now().Add(time.Hour)}

	var revoked atomic.Bool

	f.storage.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(active, nil).Times(2)
	f.storage.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), "rt-1", gomock.Any()).Times(2).DoAndReturn(
		func(context.Context, string, time.Time) (bool, error) {
			return revoked.CompareAndSwap(false, true), nil
		},
	)
	f.identity.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil).Times(1)
	f.expectPair(user, "tenant-1")

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		rejected  atomic.Int32
	)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := f.manager.Refresh(context.Background(), "plain")
			switch {
			case err == nil:
				successes.Add(1)
			case apperrors.Is(err, apperrors.KindUnauthorized):
				rejected.Add(1)
			}
		}()
	}

	wg.Wait()

	if successes.Load() != 1 || rejected.Load() != 1 {
		t.Fatalf("expected one success and one rejection, got %d and %d", successes.Load(), rejected.Load())
	}
}

func TestRefreshManagerRevoke(t *testing.T) {
	f := newRefreshFixture(t)

	f.storage.EXPECT().GetRefreshTokenByHash(gomock.Any(), security.Hash("gone")).Return(nil, storage.ErrNotFound)

	if err := f.manager.Revoke(context.Background(), "gone"); err != nil {
		t.Fatalf("revoking an unknown token must be a no-op, got %v", err)
	}

	f.storage.EXPECT().GetRefreshTokenByHash(gomock.Any(), security.Hash("plain")).Return(&types.RefreshToken{ID: "rt-1", UserID: "user-1"}, nil).Times(2)
	f.storage.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), "rt-1", gomock.Any()).Return(true, nil)
	f.storage.EXPECT().RevokeRefreshTokenIfActive(gomock.Any(), "rt-1", gomock.Any()).Return(false, nil)

	for i := 0; i < 2; i++ {
		if err := f.manager.Revoke(context.Background(), "plain"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := f.manager.Revoke(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRefreshManagerRevokeAllForUser(t *testing.T) {
	f := newRefreshFixture(t)

	f.storage.EXPECT().RevokeRefreshTokensByUser(gomock.Any(), "user-1", gomock.Any()).Return(int64(3), nil)

	if err := f.manager.RevokeAllForUser(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
