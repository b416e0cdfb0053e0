// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"github.com/canonical/tenant-identity-service/internal/apperrors"
	httptypes "github.com/canonical/tenant-identity-service/internal/http/types"
	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/tenancy"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/internal/types"
)

type Middleware struct {
	verifier   TokenVerifierInterface
	authorizer AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Optional attaches the principal when a bearer token is sent. Anonymous
// requests pass through, a token that fails verification is rejected.
func (m *Middleware) Optional() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Optional")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("JWT verification failed: %v", err)
				m.logger.Security().AuthnFailure("", "invalid access token")
				httptypes.WriteError(w, apperrors.Unauthorized("invalid token"), m.logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// Authenticate rejects requests without a valid bearer token.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				httptypes.WriteError(w, apperrors.Unauthorized("missing authorization header"), m.logger)
				return
			}

			principal, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("JWT verification failed: %v", err)
				m.logger.Security().AuthnFailure("", "invalid access token")
				httptypes.WriteError(w, apperrors.Unauthorized("invalid token"), m.logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequirePermission lets through callers holding perm, or a super role,
// in the tenant the request resolved to.
func (m *Middleware) RequirePermission(perm string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return m.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.RequirePermission")
			defer span.End()

			principal, _ := PrincipalFromContext(ctx)

			// a tenant token only grants rights in its own tenant
			tenantID := tenancy.TenantID(ctx)
			crossTenant := tenantID != "" && principal.TenantID != tenantID
			if crossTenant && !m.authorizer.HasRole(ctx, principal.Roles, types.RoleSuperAdmin, types.RoleDeveloper) {
				m.logger.Security().AuthzFailure(principal.UserID, tenantID)
				httptypes.WriteError(w, apperrors.Forbidden("token is not valid for this tenant"), m.logger)
				return
			}

			if !m.authorizer.HasPermission(ctx, principal.Roles, principal.Permissions, perm) {
				m.logger.Security().AuthzFailure(principal.UserID, perm)
				httptypes.WriteError(w, apperrors.Forbidden("missing permission %s", perm), m.logger)
				return
			}

			next.ServeHTTP(w, r)
		}))
	}
}

func (m *Middleware) RequireRole(allowed ...types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return m.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.RequireRole")
			defer span.End()

			principal, _ := PrincipalFromContext(ctx)

			if !m.authorizer.HasRole(ctx, principal.Roles, allowed...) {
				m.logger.Security().AuthzFailure(principal.UserID, r.URL.Path)
				httptypes.WriteError(w, apperrors.Forbidden("insufficient role"), m.logger)
				return
			}

			next.ServeHTTP(w, r)
		}))
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(bearer, "Bearer "))

	return token, token != ""
}

func NewMiddleware(verifier TokenVerifierInterface, authorizer AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier:   verifier,
		authorizer: authorizer,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
