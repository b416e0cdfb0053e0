// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const securityEventKey = "security_event"

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String(securityEventKey, "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String(securityEventKey, "sys_shutdown"))
}

func (s *SecurityLogger) AuthnSuccess(userID string) {
	s.l.Info("authentication succeeded",
		zap.String(securityEventKey, "authn_login_success"),
		zap.String("user_id", userID),
	)
}

func (s *SecurityLogger) AuthnFailure(userID, reason string) {
	s.l.Warn("authentication failed",
		zap.String(securityEventKey, "authn_login_fail"),
		zap.String("user_id", userID),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn("authorization failed",
		zap.String(securityEventKey, "authz_fail"),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) TokenIssued(userID, tenantID string) {
	s.l.Info("token issued",
		zap.String(securityEventKey, "authn_token_created"),
		zap.String("user_id", userID),
		zap.String("tenant_id", tenantID),
	)
}

func (s *SecurityLogger) TokenRevoked(userID, tenantID string) {
	s.l.Info("token revoked",
		zap.String(securityEventKey, "authn_token_revoked"),
		zap.String("user_id", userID),
		zap.String("tenant_id", tenantID),
	)
}

func (s *SecurityLogger) AdminAction(userID, action, resource string) {
	s.l.Info("admin action",
		zap.String(securityEventKey, "admin_action"),
		zap.String("user_id", userID),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.With(zap.String("log_type", "security"))}
}
