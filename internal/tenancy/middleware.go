// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"net/http"

	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/tracing"
)

type Middleware struct {
	resolver *Resolver

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Resolve runs the resolver once and stores the result in the request context.
func (m *Middleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "tenancy.Middleware.Resolve")
		defer span.End()

		tenantID := m.resolver.Resolve(r.WithContext(ctx))
		if tenantID == "" {
			m.logger.Debugf("no tenant resolved for %s", r.URL.Path)
		}

		next.ServeHTTP(w, r.WithContext(WithTenantID(ctx, tenantID)))
	})
}

func NewMiddleware(resolver *Resolver, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		resolver: resolver,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
