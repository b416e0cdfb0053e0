// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{level: "DEBUG", expected: zapcore.DebugLevel},
		{level: "info", expected: zapcore.InfoLevel},
		{level: "warn", expected: zapcore.WarnLevel},
		{level: "invalid", expected: zapcore.ErrorLevel},
	}

	for _, test := range tests {
		t.Run(test.level, func(t *testing.T) {
			l := NewLogger(test.level)

			if !l.Desugar().Core().Enabled(test.expected) {
				t.Fatalf("expected level %s to be enabled", test.expected)
			}

			if test.expected > zapcore.DebugLevel && l.Desugar().Core().Enabled(test.expected-1) {
				t.Fatalf("expected level %s to be disabled", test.expected-1)
			}
		})
	}
}

func TestSecurityEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := newSecurityLogger(zap.New(core))

	s.AuthnFailure("user-1", "invalid access token")
	s.AdminAction("admin-1", "tenant.status.suspended", "tenant-1")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries got %d", len(entries))
	}

	for i, expected := range []string{"authn_login_fail", "admin_action"} {
		fields := entries[i].ContextMap()

		if fields[securityEventKey] != expected {
			t.Fatalf("expected event %s got %v", expected, fields[securityEventKey])
		}

		if fields["log_type"] != "security" {
			t.Fatalf("expected security log type got %v", fields["log_type"])
		}
	}

	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("expected failures at warn level got %s", entries[0].Level)
	}
}
