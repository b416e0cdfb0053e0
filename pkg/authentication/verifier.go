// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/tenant-identity-service/internal/logging"
	"github.com/canonical/tenant-identity-service/internal/monitoring"
	"github.com/canonical/tenant-identity-service/internal/tracing"
)

// JWTVerifier turns access tokens minted by this service into principals.
type JWTVerifier struct {
	parser TokenParserInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ TokenVerifierInterface = (*JWTVerifier)(nil)

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	_, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	claims, err := v.parser.Parse(rawToken)
	if err != nil {
		return nil, err
	}

	return &Principal{
		UserID:      claims.Subject,
		TenantID:    claims.TenantID,
		Email:       claims.Email,
		Roles:       claims.Roles,
		Permissions: claims.Permissions,
	}, nil
}

func NewJWTVerifier(parser TokenParserInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTVerifier {
	v := new(JWTVerifier)

	v.parser = parser

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
