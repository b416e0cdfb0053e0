// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-identity-service/internal/tenancy"
	"github.com/canonical/tenant-identity-service/internal/types"
	"github.com/canonical/tenant-identity-service/pkg/tokens"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	tracer     *MockTracingInterface
	monitor    *MockMonitorInterface
	logger     *MockLoggerInterface
	security   *MockSecurityLoggerInterface
	verifier   *MockTokenVerifierInterface
	authorizer *MockAuthorizerInterface
}

func newMocks(ctrl *gomock.Controller) *mocks {
	m := &mocks{
		tracer:     NewMockTracingInterface(ctrl),
		monitor:    NewMockMonitorInterface(ctrl),
		logger:     NewMockLoggerInterface(ctrl),
		security:   NewMockSecurityLoggerInterface(ctrl),
		verifier:   NewMockTokenVerifierInterface(ctrl),
		authorizer: NewMockAuthorizerInterface(ctrl),
	}

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)
	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Security().Return(m.security).AnyTimes()

	return m
}

func (m *mocks) middleware() *Middleware {
	return NewMiddleware(m.verifier, m.authorizer, m.tracer, m.monitor, m.logger)
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("success"))
})

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		authHeader         string
		setupMocks         func(*mocks)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "Missing token - rejects request",
			authHeader:         "",
			setupMocks:         func(*mocks) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Invalid token format - rejects request",
			authHeader:         "InvalidToken",
			setupMocks:         func(*mocks) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Token verification fails - rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(m *mocks) {
				m.verifier.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return(nil, fmt.Errorf("invalid token"))
				m.security.EXPECT().AuthnFailure("", gomock.Any())
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(m *mocks) {
				m.verifier.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return(&Principal{UserID: "user-123"}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newMocks(ctrl)
			tt.setupMocks(m)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			m.middleware().Authenticate()(okHandler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedBody != "" && rr.Body.String() != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestMiddleware_Optional(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMocks(ctrl)

	var seen *Principal
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	m.middleware().Optional()(handler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK || seen != nil {
		t.Fatalf("anonymous request must pass without principal, got %d %v", rr.Code, seen)
	}

	m.verifier.EXPECT().VerifyToken(gomock.Any(), "tok").Return(&Principal{UserID: "u1", TenantID: "t1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rr = httptest.NewRecorder()
	m.middleware().Optional()(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || seen == nil || seen.UserID != "u1" {
		t.Fatalf("expected principal u1, got %d %v", rr.Code, seen)
	}

	m.verifier.EXPECT().VerifyToken(gomock.Any(), "bad").Return(nil, fmt.Errorf("expired"))
	m.security.EXPECT().AuthnFailure("", gomock.Any())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rr = httptest.NewRecorder()
	m.middleware().Optional()(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", rr.Code)
	}
}

func TestMiddleware_RequirePermission(t *testing.T) {
	const perm = "Permissions.Tenants.Manage"

	tests := []struct {
		name      string
		principal *Principal
		tenantID  string
		setup     func(*mocks)
		expected  int
	}{
		{
			name:     "anonymous",
			expected: http.StatusUnauthorized,
		},
		{
			name:      "permission granted",
			principal: &Principal{UserID: "u1", TenantID: "t1", Roles: []string{"Admin"}, Permissions: []string{perm}},
			tenantID:  "t1",
			setup: func(m *mocks) {
				m.authorizer.EXPECT().HasPermission(gomock.Any(), []string{"Admin"}, []string{perm}, perm).Return(true)
			},
			expected: http.StatusOK,
		},
		{
			name:      "permission missing",
			principal: &Principal{UserID: "u1", TenantID: "t1", Roles: []string{"User"}},
			tenantID:  "t1",
			setup: func(m *mocks) {
				m.authorizer.EXPECT().HasPermission(gomock.Any(), gomock.Any(), gomock.Any(), perm).Return(false)
				m.security.EXPECT().AuthzFailure("u1", perm)
			},
			expected: http.StatusForbidden,
		},
		{
			name:      "token of another tenant",
			principal: &Principal{UserID: "u1", TenantID: "t1", Roles: []string{"Owner"}},
			tenantID:  "t2",
			setup: func(m *mocks) {
				m.authorizer.EXPECT().HasRole(gomock.Any(), []string{"Owner"}, types.RoleSuperAdmin, types.RoleDeveloper).Return(false)
				m.security.EXPECT().AuthzFailure("u1", "t2")
			},
			expected: http.StatusForbidden,
		},
		{
			name:      "platform role crosses tenants",
			principal: &Principal{UserID: "u1", Roles: []string{"SuperAdmin"}},
			tenantID:  "t2",
			setup: func(m *mocks) {
				m.authorizer.EXPECT().HasRole(gomock.Any(), gomock.Any(), types.RoleSuperAdmin, types.RoleDeveloper).Return(true)
				m.authorizer.EXPECT().HasPermission(gomock.Any(), gomock.Any(), gomock.Any(), perm).Return(true)
			},
			expected: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newMocks(ctrl)
			if test.setup != nil {
				test.setup(m)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/tenant/invite", nil)
			ctx := tenancy.WithTenantID(req.Context(), test.tenantID)
			if test.principal != nil {
				ctx = WithPrincipal(ctx, test.principal)
			}

			rr := httptest.NewRecorder()
			m.middleware().RequirePermission(perm)(okHandler).ServeHTTP(rr, req.WithContext(ctx))

			if rr.Code != test.expected {
				t.Fatalf("expected status %d, got %d", test.expected, rr.Code)
			}
		})
	}
}

func TestMiddleware_RequireRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMocks(ctrl)

	principal := &Principal{UserID: "u1", Roles: []string{"Admin"}}

	m.authorizer.EXPECT().HasRole(gomock.Any(), []string{"Admin"}, types.RoleDeveloper).Return(false)
	m.security.EXPECT().AuthzFailure("u1", "/api/v1/tenant/register")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tenant/register", nil)
	rr := httptest.NewRecorder()
	m.middleware().RequireRole(types.RoleDeveloper)(okHandler).ServeHTTP(rr, req.WithContext(WithPrincipal(req.Context(), principal)))

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}

	m.authorizer.EXPECT().HasRole(gomock.Any(), []string{"Admin"}, types.RoleAdmin).Return(true)

	rr = httptest.NewRecorder()
	m.middleware().RequireRole(types.RoleAdmin)(okHandler).ServeHTTP(rr, req.WithContext(WithPrincipal(req.Context(), principal)))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{name: "No Authorization header", authHeader: "", expectedToken: "", expectedFound: false},
		{name: "Bearer token", authHeader: "Bearer my-token-123", expectedToken: "my-token-123", expectedFound: true},
		{name: "Empty bearer", authHeader: "Bearer  ", expectedToken: "", expectedFound: false},
		{name: "Raw token without Bearer prefix", authHeader: "my-token-123", expectedToken: "", expectedFound: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			middleware := newMocks(ctrl).middleware()

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := middleware.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMocks(ctrl)
	parser := NewMockTokenParserInterface(ctrl)

	claims := &tokens.AccessClaims{TenantID: "t1", Email: "jane@example.com", Roles: []string{"Owner"}, Permissions: []string{"*"}}
	claims.Subject = "u1"

	parser.EXPECT().Parse("raw").Return(claims, nil)
	parser.EXPECT().Parse("bad").Return(nil, tokens.ErrInvalidAccessToken)

	v := NewJWTVerifier(parser, m.tracer, m.monitor, m.logger)

	p, err := v.VerifyToken(context.Background(), "raw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.UserID != "u1" || p.TenantID != "t1" || p.Roles[0] != "Owner" {
		t.Fatalf("unexpected principal %+v", p)
	}

	if _, err := v.VerifyToken(context.Background(), "bad"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestTenantIDFromContext(t *testing.T) {
	if _, ok := TenantIDFromContext(context.Background()); ok {
		t.Fatal("expected no tenant on anonymous context")
	}

	ctx := WithPrincipal(context.Background(), &Principal{UserID: "u1"})
	if _, ok := TenantIDFromContext(ctx); ok {
		t.Fatal("expected no tenant for a token without tid")
	}

	ctx = WithPrincipal(context.Background(), &Principal{UserID: "u1", TenantID: "t1"})
	if tid, ok := TenantIDFromContext(ctx); !ok || tid != "t1" {
		t.Fatalf("expected t1, got %q", tid)
	}
}
