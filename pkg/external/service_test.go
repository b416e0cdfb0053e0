// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	"github.com/canonical/tenant-identity-service/internal/identity"
	"github.com/canonical/tenant-identity-service/internal/security"
	"github.com/canonical/tenant-identity-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package external -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package external -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package external -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package external -destination ./mock_interfaces.go -source=interfaces.go

const userID = "0195f1a2-0000-7000-8000-000000000001"

type fixture struct {
	provider *MockProviderInterface
	cache    *MockCacheInterface
	identity *MockIdentityInterface
	sessions *MockSessionInterface
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	mockLogger := NewMockLoggerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
	mockSecurity.EXPECT().AuthnFailure(gomock.Any(), gomock.Any()).AnyTimes()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)

	f := &fixture{
		provider: NewMockProviderInterface(ctrl),
		cache:    NewMockCacheInterface(ctrl),
		identity: NewMockIdentityInterface(ctrl),
		sessions: NewMockSessionInterface(ctrl),
	}

	f.provider.EXPECT().Name().Return("google").AnyTimes()

	f.service = NewService(
		[]ProviderInterface{f.provider},
		f.cache,
		NewCodeBridge(f.cache, time.Minute),
		f.identity,
		f.sessions,
		mockTracer,
		mockMonitor,
		mockLogger,
	)

	return f
}

// expectState makes the cache hand back st for the state key of "state-1".
func (f *fixture) expectState(st *loginState) {
	f.cache.EXPECT().GetDelJSON(gomock.Any(), stateKeyPrefix+security.Hash("state-1"), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, v interface{}) (bool, error) {
			if st == nil {
				return false, nil
			}
			*(v.(*loginState)) = *st
			return true, nil
		},
	)
}

func TestServiceBegin(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Begin(context.Background(), "github", "")
		if !apperrors.Is(err, apperrors.KindNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("stores state and redirects", func(t *testing.T) {
		f := newFixture(t)

		var stored loginState
		f.cache.EXPECT().SetJSON(gomock.Any(), gomock.Any(), gomock.Any(), stateTTL).DoAndReturn(
			func(_ context.Context, key string, v interface{}, _ time.Duration) error {
				if !strings.HasPrefix(key, stateKeyPrefix) {
					t.Fatalf("unexpected key %s", key)
				}
				stored = v.(loginState)
				return nil
			},
		)
		f.provider.EXPECT().AuthCodeURL(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(state, nonce, verifier string) string {
				if nonce != stored.Nonce || verifier != stored.Verifier {
					t.Fatal("authorization URL does not use the stored nonce and verifier")
				}
				return "https://idp/auth?state=" + state
			},
		)

		redirect, err := f.service.Begin(context.Background(), "google", "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.HasPrefix(redirect, "https://idp/auth") || stored.Provider != "google" || stored.TenantID != "tenant-1" {
			t.Fatalf("unexpected redirect %s, state %+v", redirect, stored)
		}
	})
}

func TestServiceCallbackFailures(t *testing.T) {
	st := &loginState{Provider: "google", Nonce: "n", Verifier: "v"}

	tests := []struct {
		name     string
		setup    func(f *fixture)
		expected apperrors.Kind
	}{
		{
			name:     "unknown state",
			setup:    func(f *fixture) { f.expectState(nil) },
			expected: apperrors.KindUnauthorized,
		},
		{
			name: "state of another provider",
			setup: func(f *fixture) {
				f.expectState(&loginState{Provider: "github"})
			},
			expected: apperrors.KindUnauthorized,
		},
		{
			name: "provider rejects the code",
			setup: func(f *fixture) {
				f.expectState(st)
				f.provider.EXPECT().Exchange(gomock.Any(), "code-1", "n", "v").Return(nil, errors.New("invalid_grant"))
			},
			expected: apperrors.KindUnauthorized,
		},
		{
			name: "unverified email",
			setup: func(f *fixture) {
				f.expectState(st)
				f.provider.EXPECT().Exchange(gomock.Any(), "code-1", "n", "v").Return(&Identity{Email: "jane@example.com"}, nil)
			},
			expected: apperrors.KindUnauthorized,
		},
		{
			name: "disabled user",
			setup: func(f *fixture) {
				f.expectState(st)
				f.provider.EXPECT().Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&Identity{Email: "jane@example.com", EmailVerified: true}, nil)
				f.identity.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(&types.User{ID: userID, Enabled: false}, nil)
			},
			expected: apperrors.KindUnauthorized,
		},
		{
			name: "no access to the requested tenant",
			setup: func(f *fixture) {
				f.expectState(&loginState{Provider: "google", TenantID: "tenant-2", Nonce: "n", Verifier: "v"})
				f.provider.EXPECT().Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&Identity{Email: "jane@example.com", EmailVerified: true}, nil)
				user := &types.User{ID: userID, Enabled: true}
				f.identity.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(user, nil)
				f.sessions.EXPECT().Grant(gomock.Any(), user, "tenant-2").Return(nil, apperrors.Forbidden("user is not a member of this tenant"))
			},
			expected: apperrors.KindForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			test.setup(f)

			code, err := f.service.Callback(context.Background(), "google", "state-1", "code-1")
			if code != "" {
				t.Fatalf("expected no code, got %s", code)
			}

			if got := apperrors.KindOf(err); got != test.expected {
				t.Fatalf("expected %s, got %s: %v", test.expected, got, err)
			}
		})
	}
}

func TestServiceCallbackCreatesUser(t *testing.T) {
	f := newFixture(t)

	f.expectState(&loginState{Provider: "google", TenantID: "tenant-1", Nonce: "n", Verifier: "v"})
	f.provider.EXPECT().Exchange(gomock.Any(), "code-1", "n", "v").Return(&Identity{
		Subject:       "sub",
		Email:         "jane@example.com",
		EmailVerified: true,
		FirstName:     "Jane",
		LastName:      "Doe",
	}, nil)
	f.identity.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(nil, apperrors.NotFound("user not found"))
	f.identity.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in identity.NewUser) (*types.User, error) {
			if !in.EmailConfirmed || in.Password == "" || in.FirstName != "Jane" {
				t.Fatalf("unexpected new user %+v", in)
			}
			return &types.User{ID: userID, Enabled: true}, nil
		},
	)
	f.sessions.EXPECT().Grant(gomock.Any(), gomock.Any(), "tenant-1").Return(&types.SessionGrant{
		TenantID:    "tenant-1",
		Roles:       []string{"User"},
		Permissions: []string{"tenants:read"},
	}, nil)
	f.cache.EXPECT().SetJSON(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).DoAndReturn(
		func(_ context.Context, key string, v interface{}, _ time.Duration) error {
			c := v.(LoginCode)
			if !strings.HasPrefix(key, codeKeyPrefix) || c.UserID != userID || c.TenantID != "tenant-1" {
				t.Fatalf("unexpected code entry %s %+v", key, v)
			}
			if len(c.Roles) != 1 || c.Roles[0] != "User" || len(c.Permissions) != 1 {
				t.Fatalf("expected the grant in the code entry, got %+v", c)
			}
			return nil
		},
	)

	code, err := f.service.Callback(context.Background(), "google", "state-1", "code-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if code == "" {
		t.Fatal("expected a one-time code")
	}
}

func TestServiceExchange(t *testing.T) {
	t.Run("code already used", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().GetDelJSON(gomock.Any(), codeKeyPrefix+security.Hash("abc"), gomock.Any()).Return(false, nil)

		_, err := f.service.Exchange(context.Background(), "abc")
		if !apperrors.Is(err, apperrors.KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	redeem := func(f *fixture) {
		f.cache.EXPECT().GetDelJSON(gomock.Any(), codeKeyPrefix+security.Hash("abc"), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, v interface{}) (bool, error) {
				*(v.(*LoginCode)) = LoginCode{
					UserID:      userID,
					TenantID:    "tenant-1",
					Roles:       []string{"Admin"},
					Permissions: []string{"tenants:manage"},
					Provider:    "google",
				}
				return true, nil
			},
		)
	}

	t.Run("user disabled since the callback", func(t *testing.T) {
		f := newFixture(t)
		redeem(f)
		f.identity.EXPECT().FindByID(gomock.Any(), userID).Return(&types.User{ID: userID, Enabled: false}, nil)

		_, err := f.service.Exchange(context.Background(), "abc")
		if !apperrors.Is(err, apperrors.KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("mints from the grant in the code", func(t *testing.T) {
		f := newFixture(t)
		user := &types.User{ID: userID, Enabled: true}
		pair := &types.TokenPair{AccessToken: "a"}

		redeem(f)
		f.identity.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
		f.sessions.EXPECT().SignInWithGrant(gomock.Any(), user, &types.SessionGrant{
			TenantID:    "tenant-1",
			Roles:       []string{"Admin"},
			Permissions: []string{"tenants:manage"},
		}).Return(pair, nil)

		got, err := f.service.Exchange(context.Background(), "abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != pair {
			t.Fatalf("unexpected pair %+v", got)
		}
	})
}
