// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/canonical/tenant-identity-service/internal/logging"
)

func TestMonitorRecordsMetrics(t *testing.T) {
	m := NewMonitor("test-service", logging.NewNoopLogger())

	if m.GetService() != "test-service" {
		t.Fatalf("unexpected service %s", m.GetService())
	}

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/status", "status": "200"}, 0.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.SetOutboxMetric(map[string]string{"kind": "signup_confirmation", "outcome": "sent"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMonitorRejectsUnknownLabels(t *testing.T) {
	m := NewMonitor("test-service", logging.NewNoopLogger())

	if err := m.SetResponseTimeMetric(map[string]string{"unknown": "x"}, 0.1); err == nil {
		t.Fatalf("expected error for unknown label set")
	}
}
