// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	httptypes "github.com/canonical/tenant-identity-service/internal/http/types"
	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/tenancy"
	"github.com/canonical/tenant-identity-service/internal/tracing"
	"github.com/canonical/tenant-identity-service/pkg/account"
	"github.com/canonical/tenant-identity-service/pkg/authentication"
	"github.com/canonical/tenant-identity-service/pkg/external"
	"github.com/canonical/tenant-identity-service/pkg/metrics"
	"github.com/canonical/tenant-identity-service/pkg/tenant"
)

type Services struct {
	Tenants  tenant.ServiceInterface
	Accounts account.ServiceInterface
	External external.ServiceInterface

	// ExternalReturnURL receives the browser after an external login
	ExternalReturnURL string
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", tenancy.HeaderName},
			ExposedHeaders:   []string{middleware.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           300,
		},
	)
}

// NewRouter wires every API behind the shared middleware chain. The bearer
// token is read before the tenant is resolved so the tenant claim can act
// as fallback for the X-Tenant-Id header.
func NewRouter(
	services Services,
	auth *authentication.Middleware,
	defaultTenantID string,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	resolver := tenancy.NewResolver(defaultTenantID, authentication.TenantIDFromContext)

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
		auth.Optional(),
		tenancy.NewMiddleware(resolver, tracer, monitor, logger).Resolve,
	)

	router.Use(middlewares...)

	validate := httptypes.NewValidator()

	metrics.NewAPI(logger).RegisterEndpoints(router)
	tenant.NewAPI(services.Tenants, auth, validate, logger).RegisterEndpoints(router)
	account.NewAPI(services.Accounts, validate, logger).RegisterEndpoints(router)
	external.NewAPI(services.External, services.ExternalReturnURL, validate, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
